package canvas

import (
	"fmt"
	"image/color"

	"github.com/gogpu/arcview"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithFontSource sets the font used to measure and draw labels.
func WithFontSource(source *text.FontSource) Option {
	return func(r *Renderer) {
		r.source = source
	}
}

// WithMeasurer overrides the label measurer. By default labels are
// measured with the renderer's font source.
func WithMeasurer(m arcview.TextMeasurer) Option {
	return func(r *Renderer) {
		r.measurer = m
	}
}

// WithInnerFill fills the area inside the inner radius with the sector's
// inner color.
func WithInnerFill(fill bool) Option {
	return func(r *Renderer) {
		r.innerFill = fill
	}
}

// Renderer draws sectors onto gg contexts.
type Renderer struct {
	source    *text.FontSource
	measurer  arcview.TextMeasurer
	innerFill bool
}

// NewRenderer creates a renderer. Without WithFontSource the Go Regular
// font is used.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.source == nil {
		src, err := DefaultFontSource()
		if err != nil {
			return nil, err
		}
		r.source = src
	}
	if r.measurer == nil {
		r.measurer = NewFaceMeasurer(r.source)
	}
	return r, nil
}

// Measurer returns the measurer the renderer attaches to sectors.
func (r *Renderer) Measurer() arcview.TextMeasurer { return r.measurer }

// Attach sets the renderer's measurer on each sector so text paths are
// sized for the font that will draw them.
func (r *Renderer) Attach(sectors ...*arcview.Sector) {
	for _, s := range sectors {
		s.SetTextMeasurer(r.measurer)
	}
}

// RenderComposer lays c out in a width×height canvas filled with bg and
// draws its active sectors.
func (r *Renderer) RenderComposer(c *arcview.Composer, width, height int, bg color.Color) (*gg.Context, error) {
	r.Attach(c.All()...)
	c.Layout(arcview.Rect{Max: arcview.Pt(float64(width), float64(height))})
	return r.Render(width, height, bg, c.Sectors()...)
}

// Render draws sectors, as currently laid out, onto a new width×height
// canvas filled with bg. A nil bg leaves the canvas transparent.
func (r *Renderer) Render(width, height int, bg color.Color, sectors ...*arcview.Sector) (*gg.Context, error) {
	dc := gg.NewContext(width, height)
	if err := fillBackground(dc, bg); err != nil {
		return nil, err
	}
	if err := r.DrawSectors(dc, sectors...); err != nil {
		return nil, err
	}
	return dc, nil
}

// DrawComposer draws the active sectors of c in angular order.
func (r *Renderer) DrawComposer(dc *gg.Context, c *arcview.Composer) error {
	return r.DrawSectors(dc, c.Sectors()...)
}

// DrawSectors draws each sector in order.
func (r *Renderer) DrawSectors(dc *gg.Context, sectors ...*arcview.Sector) error {
	for _, s := range sectors {
		if err := r.DrawSector(dc, s); err != nil {
			return err
		}
	}
	return nil
}

// DrawSector draws one sector: inner fill (optional), ring, outline,
// boundary lines (partial sectors only) and label.
func (r *Renderer) DrawSector(dc *gg.Context, s *arcview.Sector) error {
	g := s.Geometry()
	st := s.Style()
	if g.OuterRadius <= 0 {
		arcview.Logger().Debug("canvas: skip empty sector", "text", s.Text())
		return nil
	}

	c := g.Center
	a1 := arcview.Radians(g.StartAngle)
	a2 := arcview.Radians(g.StartAngle + g.SweepAngle)
	full := s.FullRing()

	if r.innerFill && g.InnerRadius > 0 {
		dc.SetColor(st.InnerColor)
		if full {
			dc.DrawCircle(c.X, c.Y, g.InnerRadius)
		} else {
			dc.MoveTo(c.X, c.Y)
			start := c.Polar(g.InnerRadius, g.StartAngle)
			dc.LineTo(start.X, start.Y)
			dc.DrawArc(c.X, c.Y, g.InnerRadius, a1, a2)
			dc.ClosePath()
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("canvas: fill inner: %w", err)
		}
	}

	if g.SweepAngle > 0 && g.RingWidth > 0 {
		dc.SetColor(s.FillColor())
		dc.SetLineWidth(g.RingWidth)
		dc.DrawArc(c.X, c.Y, g.TextRadius, a1, a2)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("canvas: stroke ring: %w", err)
		}
	}

	if st.StrokeWidth > 0 {
		dc.SetColor(st.StrokeColor)
		dc.SetLineWidth(st.StrokeWidth)
		if err := r.strokeOutline(dc, g, a1, a2, full); err != nil {
			return err
		}
	}

	return r.drawLabel(dc, s, g)
}

func (r *Renderer) strokeOutline(dc *gg.Context, g arcview.Geometry, a1, a2 float64, full bool) error {
	c := g.Center
	if g.SweepAngle > 0 {
		for _, radius := range []float64{g.OuterRadius, g.InnerRadius} {
			if radius <= 0 {
				continue
			}
			dc.DrawArc(c.X, c.Y, radius, a1, a2)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("canvas: stroke edge: %w", err)
			}
		}
	}
	if full {
		return nil
	}
	for _, l := range []arcview.Segment{g.StartLine, g.EndLine} {
		dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("canvas: stroke boundary: %w", err)
		}
	}
	return nil
}

// drawLabel draws the label one rune at a time, each rotated to the arc
// tangent and shifted toward the center by the baseline offset.
func (r *Renderer) drawLabel(dc *gg.Context, s *arcview.Sector, g arcview.Geometry) error {
	label := s.Text()
	if label == "" {
		return nil
	}
	st := s.Style()
	face := r.source.Face(st.TextSize)
	dc.SetFont(face)
	dc.SetColor(st.TextColor)

	runes := []rune(label)
	advances := make([]float64, len(runes))
	for i, ch := range runes {
		advances[i] = face.Advance(string(ch))
	}
	placements := g.Text.Place(advances)
	if len(placements) < len(runes) {
		arcview.Logger().Debug("canvas: label truncated",
			"text", label,
			"drawn", len(placements),
			"runes", len(runes))
	}

	for i, p := range placements {
		dc.Push()
		dc.Translate(p.Origin.X, p.Origin.Y)
		dc.Rotate(p.Rotation)
		dc.DrawString(string(runes[i]), 0, g.Text.BaselineOffset)
		dc.Pop()
	}
	return nil
}

func fillBackground(dc *gg.Context, bg color.Color) error {
	if bg == nil {
		return nil
	}
	dc.SetColor(bg)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("canvas: fill background: %w", err)
	}
	return nil
}
