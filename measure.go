package arcview

import "unicode/utf8"

// TextExtent is the size of a label as laid out on a straight baseline.
type TextExtent struct {
	// Width is the total advance of the label.
	Width float64
	// Descent is the distance below the baseline (positive). The label is
	// shifted by this amount toward the ring center so it sits inside the ring.
	Descent float64
}

// TextMeasurer measures labels at a given font size.
type TextMeasurer interface {
	MeasureText(text string, size float64) TextExtent
}

// Proportions used by EstimateMeasurer, relative to the font size.
const (
	estimateAdvance = 0.55
	estimateDescent = 0.21
)

// EstimateMeasurer sizes labels without a font: every rune advances by a
// fixed fraction of the font size. It is the default measurer so that
// geometry can be computed before a back end is attached.
type EstimateMeasurer struct{}

// MeasureText implements TextMeasurer.
func (EstimateMeasurer) MeasureText(text string, size float64) TextExtent {
	return TextExtent{
		Width:   float64(utf8.RuneCountInString(text)) * size * estimateAdvance,
		Descent: size * estimateDescent,
	}
}
