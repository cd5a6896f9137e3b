// Package svgcanvas writes arc sectors as SVG documents.
//
// Each sector becomes a thick stroked arc for the ring, stroked outer and
// inner edges, two boundary lines for partial sectors and a <textPath>
// label that follows the sector's text path. The label path definitions
// are emitted in <defs> so the document stays self-contained.
package svgcanvas

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/arcview"
	"github.com/lucasb-eyer/go-colorful"
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithFontFamily sets the CSS font-family used for labels.
func WithFontFamily(family string) Option {
	return func(e *Encoder) {
		e.fontFamily = family
	}
}

// WithBackground fills the document with bg before drawing sectors.
func WithBackground(bg color.Color) Option {
	return func(e *Encoder) {
		e.background = bg
	}
}

// WithInnerFill fills the area inside each sector's inner radius.
func WithInnerFill(fill bool) Option {
	return func(e *Encoder) {
		e.innerFill = fill
	}
}

// WithIDPrefix sets the prefix of the generated text path ids.
func WithIDPrefix(prefix string) Option {
	return func(e *Encoder) {
		e.idPrefix = prefix
	}
}

// Encoder writes sectors as SVG.
type Encoder struct {
	fontFamily string
	background color.Color
	innerFill  bool
	idPrefix   string
}

// NewEncoder creates an encoder.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		fontFamily: "Go, sans-serif",
		idPrefix:   "arc-text-",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EncodeComposer lays c out in a width×height document and writes its
// active sectors.
func (e *Encoder) EncodeComposer(w io.Writer, c *arcview.Composer, width, height int) error {
	c.Layout(arcview.Rect{Max: arcview.Pt(float64(width), float64(height))})
	return e.Encode(w, width, height, c.Sectors()...)
}

// Encode writes a width×height document containing sectors as currently
// laid out.
func (e *Encoder) Encode(w io.Writer, width, height int, sectors ...*arcview.Sector) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)

	if e.background != nil {
		canvas.Rect(0, 0, width, height, "fill:"+hexColor(e.background))
	}

	canvas.Def()
	for i, s := range sectors {
		g := s.Geometry()
		canvas.Path(textPathData(g.Text), fmt.Sprintf(`id="%s%d"`, e.idPrefix, i), "fill:none")
	}
	canvas.DefEnd()

	for i, s := range sectors {
		e.encodeSector(canvas, i, s)
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("svgcanvas: write: %w", ew.err)
	}
	return nil
}

func (e *Encoder) encodeSector(canvas *svg.SVG, i int, s *arcview.Sector) {
	g := s.Geometry()
	st := s.Style()
	if g.OuterRadius <= 0 {
		return
	}
	full := s.FullRing()

	canvas.Gid(fmt.Sprintf("sector-%d", i))
	defer canvas.Gend()

	if e.innerFill && g.InnerRadius > 0 {
		fill := "fill:" + hexColor(st.InnerColor) + ";stroke:none"
		if full {
			canvas.Path(circleData(g.Center, g.InnerRadius), fill)
		} else {
			canvas.Path(wedgeData(g.Center, g.InnerRadius, g.StartAngle, g.SweepAngle), fill)
		}
	}

	if g.SweepAngle > 0 && g.RingWidth > 0 {
		canvas.Path(arcData(g.Center, g.TextRadius, g.StartAngle, g.SweepAngle),
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", hexColor(s.FillColor()), num(g.RingWidth)))
	}

	if st.StrokeWidth > 0 {
		stroke := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", hexColor(st.StrokeColor), num(st.StrokeWidth))
		if g.SweepAngle > 0 {
			canvas.Path(arcData(g.Center, g.OuterRadius, g.StartAngle, g.SweepAngle), stroke)
			if g.InnerRadius > 0 {
				canvas.Path(arcData(g.Center, g.InnerRadius, g.StartAngle, g.SweepAngle), stroke)
			}
		}
		if !full {
			canvas.Path(lineData(g.StartLine)+" "+lineData(g.EndLine), stroke)
		}
	}

	if s.Text() != "" {
		canvas.Textpath(s.Text(), fmt.Sprintf("#%s%d", e.idPrefix, i),
			fmt.Sprintf("fill:%s;font-size:%spx;font-family:%s", hexColor(st.TextColor), num(st.TextSize), e.fontFamily),
			fmt.Sprintf(`dy="%s"`, num(g.Text.BaselineOffset)))
	}
}

// maxArcStep keeps each SVG arc command at or below a half circle so the
// large-arc flag is never needed.
const maxArcStep = 180.0

// arcData returns path data for a clockwise arc of radius r from start
// sweeping sweep degrees.
func arcData(c arcview.Point, r, start, sweep float64) string {
	var b strings.Builder
	p := c.Polar(r, start)
	fmt.Fprintf(&b, "M%s %s", num(p.X), num(p.Y))
	appendArc(&b, c, r, start, sweep)
	return b.String()
}

func appendArc(b *strings.Builder, c arcview.Point, r, start, sweep float64) {
	steps := int(math.Ceil(sweep / maxArcStep))
	for i := 1; i <= steps; i++ {
		p := c.Polar(r, start+sweep*float64(i)/float64(steps))
		fmt.Fprintf(b, " A%s %s 0 0 1 %s %s", num(r), num(r), num(p.X), num(p.Y))
	}
}

func circleData(c arcview.Point, r float64) string {
	return arcData(c, r, 0, arcview.FullCircle) + " Z"
}

func wedgeData(c arcview.Point, r, start, sweep float64) string {
	var b strings.Builder
	p := c.Polar(r, start)
	fmt.Fprintf(&b, "M%s %s L%s %s", num(c.X), num(c.Y), num(p.X), num(p.Y))
	appendArc(&b, c, r, start, sweep)
	b.WriteString(" Z")
	return b.String()
}

func lineData(s arcview.Segment) string {
	return fmt.Sprintf("M%s %s L%s %s", num(s.From.X), num(s.From.Y), num(s.To.X), num(s.To.Y))
}

func textPathData(p arcview.TextPath) string {
	if p.Radius <= 0 || p.Sweep <= 0 {
		c := p.Center
		return fmt.Sprintf("M%s %s", num(c.X), num(c.Y))
	}
	return arcData(p.Center, p.Radius, p.Start, p.Sweep)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// hexColor formats c as #rrggbb. Fully transparent colors become "none".
func hexColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cc.Hex()
}

// errWriter records the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
