package arcview

import "math"

// FullCircle is the angular extent of a complete ring, in degrees.
const FullCircle = 360.0

// centerEpsilon is the radius below which a point is treated as the center
// itself and given bearing 0.
const centerEpsilon = 1e-8

// Normalize360 maps a to [0, 360) using a − 360·floor(a/360).
// Negative angles wrap to the positive range. NaN and ±Inf become 0.
func Normalize360(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	r := a - FullCircle*math.Floor(a/FullCircle)
	// Tiny negative inputs round to exactly 360.
	if r >= FullCircle {
		return 0
	}
	return r
}

// NormalizeSweep clamps a sweep angle into [0, 360].
//
// Values above 360 or at or below -360 become 360. Other negative values
// wrap by adding 360. NaN becomes DefaultSweepAngle. Everything else
// passes through.
func NormalizeSweep(a float64) float64 {
	switch {
	case math.IsNaN(a):
		return DefaultSweepAngle
	case a > FullCircle, a <= -FullCircle:
		return FullCircle
	case a < 0:
		return a + FullCircle
	default:
		return a
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Bearing returns the angle in degrees, in [0, 360), from center to p.
// 0 lies along +X and the angle grows toward +Y. A point at the center
// has bearing 0.
func Bearing(center, p Point) float64 {
	d := p.Sub(center)
	r := d.Length()
	if r < centerEpsilon {
		return 0
	}
	angle := Degrees(math.Acos(clampUnit(d.X / r)))
	if d.Y < 0 {
		angle = FullCircle - angle
	}
	return Normalize360(angle)
}

// InSpan reports whether angle (in [0, 360)) lies in the closed span
// [start, start+sweep]. Spans reaching or crossing the 0° seam also
// match angle+360, so a span ending at exactly 360 contains bearing 0.
func InSpan(angle, start, sweep float64) bool {
	end := start + sweep
	if angle >= start && angle <= end {
		return true
	}
	if end >= FullCircle {
		wrapped := angle + FullCircle
		return wrapped >= start && wrapped <= end
	}
	return false
}

// clampUnit keeps acos arguments inside [-1, 1] against rounding.
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
