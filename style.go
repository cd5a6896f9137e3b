package arcview

import "image/color"

// Default sector attributes.
const (
	DefaultTextSize         = 24.0
	DefaultMaxRadius        = 100.0
	DefaultStrokeWidth      = 2.0
	DefaultSweepAngle       = 90.0
	DefaultStartAngle       = 0.0
	DefaultInnerRadiusRatio = 0.618
)

// Default sector colors.
var (
	DefaultTextColor    = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	DefaultArcColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultPressedColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	DefaultInnerColor   = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	DefaultStrokeColor  = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// Style holds the visual attributes a back end needs to draw a sector.
// The core only reads TextSize (for measuring) and selects between
// ArcColor and PressedColor.
type Style struct {
	TextColor    color.Color
	TextSize     float64
	ArcColor     color.Color
	PressedColor color.Color
	InnerColor   color.Color
	StrokeColor  color.Color
	StrokeWidth  float64
}

// DefaultStyle returns the default sector style.
func DefaultStyle() Style {
	return Style{
		TextColor:    DefaultTextColor,
		TextSize:     DefaultTextSize,
		ArcColor:     DefaultArcColor,
		PressedColor: DefaultPressedColor,
		InnerColor:   DefaultInnerColor,
		StrokeColor:  DefaultStrokeColor,
		StrokeWidth:  DefaultStrokeWidth,
	}
}

// withDefaults fills unset fields from DefaultStyle.
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.TextColor == nil {
		s.TextColor = d.TextColor
	}
	if s.TextSize <= 0 {
		s.TextSize = d.TextSize
	}
	if s.ArcColor == nil {
		s.ArcColor = d.ArcColor
	}
	if s.PressedColor == nil {
		s.PressedColor = d.PressedColor
	}
	if s.InnerColor == nil {
		s.InnerColor = d.InnerColor
	}
	if s.StrokeColor == nil {
		s.StrokeColor = d.StrokeColor
	}
	if s.StrokeWidth < 0 {
		s.StrokeWidth = d.StrokeWidth
	}
	return s
}
