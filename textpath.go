package arcview

import "math"

// TextPath is the circular baseline a sector label is laid along.
// Glyphs advance clockwise (increasing angle) from Start.
type TextPath struct {
	Center Point
	Radius float64

	// Start and Sweep are in degrees. Start is not normalized.
	Start float64
	Sweep float64

	// HalfAngle is the angular half-span of the label at Radius, in degrees.
	HalfAngle float64

	// BaselineOffset shifts glyphs toward the center by the font descent.
	BaselineOffset float64
}

// GlyphPlacement positions one glyph on a TextPath.
type GlyphPlacement struct {
	// Origin is the glyph origin on the arc, before the baseline offset.
	Origin Point
	// Rotation is the glyph rotation in radians. The glyph x axis follows
	// the arc tangent in the direction of travel.
	Rotation float64
}

// textHalfAngle converts a label width into the half-span, in degrees, it
// covers on a circle of radius r: width·90/π/r.
func textHalfAngle(width, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return width * 90 / math.Pi / r
}

// buildTextPath centers the label on the sector. A full ring centers it
// opposite the start angle and sizes the path to the label; a partial
// sector centers it on the sector bisector and sweeps the sector's sweep.
func buildTextPath(center Point, r, start, sweep float64, label TextExtent) TextPath {
	half := textHalfAngle(label.Width, r)
	p := TextPath{
		Center:         center,
		Radius:         r,
		HalfAngle:      half,
		BaselineOffset: label.Descent,
	}
	if sweep >= FullCircle {
		p.Start = start + 180 - half
		p.Sweep = 2 * half
	} else {
		p.Start = start + sweep/2 - half
		p.Sweep = sweep
	}
	return p
}

// Length returns the arc length of the path.
func (p TextPath) Length() float64 {
	return Radians(p.Sweep) * p.Radius
}

// Angle returns the angle in degrees reached after travelling distance
// along the path.
func (p TextPath) Angle(distance float64) float64 {
	if p.Radius <= 0 {
		return p.Start
	}
	return p.Start + Degrees(distance/p.Radius)
}

// PointAt returns the point at the given distance along the path and the
// tangent rotation at that point in radians.
func (p TextPath) PointAt(distance float64) (Point, float64) {
	angle := p.Angle(distance)
	return p.Center.Polar(p.Radius, angle), Radians(angle) + math.Pi/2
}

// Place lays out glyphs with the given advances along the path. Glyphs
// whose origin falls past the end of the path are dropped.
func (p TextPath) Place(advances []float64) []GlyphPlacement {
	length := p.Length()
	out := make([]GlyphPlacement, 0, len(advances))
	var d float64
	for _, adv := range advances {
		if d > length {
			break
		}
		origin, rot := p.PointAt(d)
		out = append(out, GlyphPlacement{Origin: origin, Rotation: rot})
		d += adv
	}
	return out
}
