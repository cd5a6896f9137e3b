package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/arcview"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFont is returned when font data is empty.
var ErrEmptyFont = errors.New("canvas: empty font data")

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.FontSource
	defaultSourceErr  error
)

// DefaultFontSource returns the shared Go Regular font source.
func DefaultFontSource() (*text.FontSource, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewFontSource(goregular.TTF)
		if defaultSourceErr != nil {
			defaultSourceErr = fmt.Errorf("canvas: load default font: %w", defaultSourceErr)
		}
	})
	return defaultSource, defaultSourceErr
}

// FaceMeasurer measures labels with gg font faces.
type FaceMeasurer struct {
	source *text.FontSource
}

// NewFaceMeasurer creates a measurer backed by source.
func NewFaceMeasurer(source *text.FontSource) *FaceMeasurer {
	return &FaceMeasurer{source: source}
}

// MeasureText implements arcview.TextMeasurer.
func (m *FaceMeasurer) MeasureText(s string, size float64) arcview.TextExtent {
	face := m.source.Face(size)
	return arcview.TextExtent{
		Width:   face.Advance(s),
		Descent: face.Metrics().Descent,
	}
}

// ShapingMeasurer measures labels with HarfBuzz shaping from
// go-text/typesetting, so kerning and ligatures are reflected in the
// width. It is not safe for concurrent use.
type ShapingMeasurer struct {
	font   *font.Font
	shaper shaping.HarfbuzzShaper
}

// NewShapingMeasurer parses TrueType/OpenType data for shaping.
func NewShapingMeasurer(data []byte) (*ShapingMeasurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("canvas: parse font: %w", err)
	}
	return &ShapingMeasurer{font: face.Font}, nil
}

// MeasureText implements arcview.TextMeasurer.
func (m *ShapingMeasurer) MeasureText(s string, size float64) arcview.TextExtent {
	face := font.NewFace(m.font)
	ext := arcview.TextExtent{Descent: m.descent(face, size)}

	runes := []rune(s)
	if len(runes) == 0 {
		return ext
	}
	out := m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	})
	ext.Width = float64(out.Advance) / 64
	return ext
}

// descent returns the font descender scaled to size, as a positive value.
func (m *ShapingMeasurer) descent(face *font.Face, size float64) float64 {
	extents, ok := face.FontHExtents()
	upem := float64(m.font.Upem())
	if !ok || upem == 0 {
		return 0
	}
	return math.Abs(float64(extents.Descender)) * size / upem
}
