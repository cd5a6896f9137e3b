package arcview

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// Sector is one annular ring segment carrying a curved label.
//
// Setters store sanitized values and mark the derived geometry stale;
// Geometry recomputes it before returning, so readers always observe the
// latest inputs. The center is only ever assigned by a layout pass.
type Sector struct {
	text     string
	style    Style
	measurer TextMeasurer
	onTap    func(*Sector)

	maxRadius  float64
	innerRatio float64
	start      float64
	sweep      float64

	center      Point
	outerRadius float64
	innerRadius float64

	state PressState

	dirty bool
	geom  Geometry
}

// Geometry is the derived drawable state of a sector.
type Geometry struct {
	Center      Point
	StartAngle  float64
	SweepAngle  float64
	OuterRadius float64
	InnerRadius float64
	TextRadius  float64

	// OuterBounds, InnerBounds and TextBounds are the squares circumscribing
	// the outer circle, the inner circle and the text circle.
	OuterBounds Rect
	InnerBounds Rect
	TextBounds  Rect

	// RingWidth is the stroke width that paints the ring as a thick arc
	// along TextRadius.
	RingWidth float64

	// StartLine and EndLine run from the inner to the outer radius at the
	// start and end angles.
	StartLine Segment
	EndLine   Segment

	// Label is the measured label and Text the arc it is laid along.
	Label TextExtent
	Text  TextPath
}

// NewSector creates a sector with the given label and default attributes:
// max radius 100, inner radius ratio 0.618, start 0°, sweep 90°.
func NewSector(text string, opts ...SectorOption) *Sector {
	s := &Sector{
		text:       norm.NFC.String(text),
		style:      DefaultStyle(),
		measurer:   EstimateMeasurer{},
		maxRadius:  DefaultMaxRadius,
		innerRatio: DefaultInnerRadiusRatio,
		start:      DefaultStartAngle,
		sweep:      DefaultSweepAngle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.outerRadius = nonNegative(s.maxRadius)
	s.innerRadius = s.outerRadius * s.innerRatio
	s.dirty = true
	return s
}

// Text returns the label.
func (s *Sector) Text() string { return s.text }

// SetText sets the label. The text is normalized to NFC.
func (s *Sector) SetText(text string) {
	s.text = norm.NFC.String(text)
	s.dirty = true
}

// Style returns the sector style.
func (s *Sector) Style() Style { return s.style }

// SetStyle replaces the style. Unset fields fall back to defaults.
func (s *Sector) SetStyle(st Style) {
	s.style = st.withDefaults()
	s.dirty = true
}

// SetTextMeasurer replaces the label measurer. nil restores EstimateMeasurer.
func (s *Sector) SetTextMeasurer(m TextMeasurer) {
	if m == nil {
		m = EstimateMeasurer{}
	}
	s.measurer = m
	s.dirty = true
}

// MaxRadius returns the upper bound applied to the outer radius by Layout.
func (s *Sector) MaxRadius() float64 { return s.maxRadius }

// SetMaxRadius sets the upper bound applied to the outer radius by Layout.
// +Inf leaves the outer radius uncapped.
func (s *Sector) SetMaxRadius(r float64) {
	s.maxRadius = sanitizeMaxRadius(r)
}

// OuterRadius returns the outer ring radius.
func (s *Sector) OuterRadius() float64 { return s.outerRadius }

// SetOuterRadius sets the outer radius and recomputes the inner radius.
// Negative and non-finite radii become 0.
func (s *Sector) SetOuterRadius(r float64) {
	s.outerRadius = nonNegative(r)
	s.innerRadius = s.outerRadius * s.innerRatio
	s.dirty = true
}

// InnerRadius returns the inner ring radius.
func (s *Sector) InnerRadius() float64 { return s.innerRadius }

// InnerRadiusRatio returns the inner/outer radius ratio.
func (s *Sector) InnerRadiusRatio() float64 { return s.innerRatio }

// SetInnerRadiusRatio sets the inner/outer radius ratio and recomputes the
// inner radius. The absolute value is taken; ratios of 1 or more fall back
// to DefaultInnerRadiusRatio. A ratio of 0 makes the sector a full disc
// wedge with no hole.
func (s *Sector) SetInnerRadiusRatio(ratio float64) {
	s.innerRatio = sanitizeRatio(ratio)
	s.innerRadius = s.outerRadius * s.innerRatio
	s.dirty = true
}

// TextRadius returns the radius of the label baseline, midway between the
// inner and outer radius.
func (s *Sector) TextRadius() float64 {
	return (s.outerRadius + s.innerRadius) / 2
}

// StartAngle returns the start angle in degrees, in [0, 360).
func (s *Sector) StartAngle() float64 { return s.start }

// SetStartAngle stores a modulo 360.
func (s *Sector) SetStartAngle(a float64) {
	s.start = Normalize360(a)
	s.dirty = true
}

// SweepAngle returns the sweep angle in degrees, in [0, 360].
func (s *Sector) SweepAngle() float64 { return s.sweep }

// SetSweepAngle stores NormalizeSweep(a).
func (s *Sector) SetSweepAngle(a float64) {
	s.sweep = NormalizeSweep(a)
	s.dirty = true
}

// Center returns the center assigned by the last layout pass.
func (s *Sector) Center() Point { return s.center }

// FullRing reports whether the sector covers the whole circle.
func (s *Sector) FullRing() bool { return s.sweep >= FullCircle }

// Layout places the sector at center inside a content box of the given
// size. The outer radius becomes half the smaller side, capped at MaxRadius.
func (s *Sector) Layout(center Point, contentWidth, contentHeight float64) {
	s.center = center
	s.outerRadius = nonNegative(math.Min(contentWidth, contentHeight) / 2)
	if s.outerRadius > s.maxRadius {
		s.outerRadius = s.maxRadius
	}
	s.innerRadius = s.outerRadius * s.innerRatio
	s.dirty = true
	s.recompute()

	Logger().Debug("sector layout",
		"text", s.text,
		"start", s.start,
		"sweep", s.sweep,
		"outer", s.outerRadius,
		"inner", s.innerRadius)
}

// LayoutBox lays the sector out inside bounds, centered, with padding
// removed from the content box.
func (s *Sector) LayoutBox(bounds Rect, padding Insets) {
	content := bounds.Inset(padding)
	s.Layout(bounds.Center(), content.Width(), content.Height())
}

// Geometry returns the derived geometry, recomputing it if any input
// changed since the last call.
func (s *Sector) Geometry() Geometry {
	if s.dirty {
		s.recompute()
	}
	return s.geom
}

func (s *Sector) recompute() {
	textRadius := s.TextRadius()
	end := s.start + s.sweep
	label := s.measurer.MeasureText(s.text, s.style.TextSize)

	s.geom = Geometry{
		Center:      s.center,
		StartAngle:  s.start,
		SweepAngle:  s.sweep,
		OuterRadius: s.outerRadius,
		InnerRadius: s.innerRadius,
		TextRadius:  textRadius,
		OuterBounds: SquareAround(s.center, s.outerRadius),
		InnerBounds: SquareAround(s.center, s.innerRadius),
		TextBounds:  SquareAround(s.center, textRadius),
		RingWidth:   s.outerRadius - s.innerRadius,
		StartLine: Segment{
			From: s.center.Polar(s.innerRadius, s.start),
			To:   s.center.Polar(s.outerRadius, s.start),
		},
		EndLine: Segment{
			From: s.center.Polar(s.innerRadius, end),
			To:   s.center.Polar(s.outerRadius, end),
		},
		Label: label,
		Text:  buildTextPath(s.center, textRadius, s.start, s.sweep, label),
	}
	s.dirty = false
}

// sanitizeRatio takes |ratio| and replaces values of 1 or more (and NaN)
// with DefaultInnerRadiusRatio.
func sanitizeRatio(ratio float64) float64 {
	ratio = math.Abs(ratio)
	if ratio >= 1 || math.IsNaN(ratio) {
		return DefaultInnerRadiusRatio
	}
	return ratio
}

// nonNegative maps negative, NaN and infinite values to 0.
func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func sanitizeMaxRadius(r float64) float64 {
	if math.IsInf(r, 1) {
		return r
	}
	return nonNegative(r)
}
