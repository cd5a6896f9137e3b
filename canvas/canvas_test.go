package canvas

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/arcview"
	"github.com/gogpu/gg"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

// near reports whether the pixel at p is within tol of want on every channel.
func near(img image.Image, p arcview.Point, want color.NRGBA, tol uint8) bool {
	got := color.NRGBAModel.Convert(img.At(int(p.X), int(p.Y))).(color.NRGBA)
	diff := func(a, b uint8) uint8 {
		if a > b {
			return a - b
		}
		return b - a
	}
	return diff(got.R, want.R) <= tol && diff(got.G, want.G) <= tol && diff(got.B, want.B) <= tol
}

func newTestComposer(n int) (*arcview.Composer, []*arcview.Sector) {
	c := arcview.NewComposer()
	sectors := make([]*arcview.Sector, n)
	labels := []string{"Home", "Mail", "Maps", "Talk"}
	for i := range sectors {
		sectors[i] = arcview.NewSector(labels[i%len(labels)],
			arcview.WithInnerRadiusRatio(0.5),
			arcview.WithStyle(arcview.Style{ArcColor: red, PressedColor: blue}),
		)
		c.Add(sectors[i])
	}
	return c, sectors
}

func TestFaceMeasurer(t *testing.T) {
	src, err := DefaultFontSource()
	if err != nil {
		t.Fatalf("DefaultFontSource() error = %v", err)
	}
	m := NewFaceMeasurer(src)

	small := m.MeasureText("Hello", 12)
	large := m.MeasureText("Hello", 24)
	if small.Width <= 0 || small.Descent <= 0 {
		t.Fatalf("MeasureText = %+v, want positive width and descent", small)
	}
	if small.Descent >= 12 {
		t.Errorf("descent %v should be below the font size", small.Descent)
	}
	if ratio := large.Width / small.Width; math.Abs(ratio-2) > 0.2 {
		t.Errorf("width ratio 24pt/12pt = %v, want about 2", ratio)
	}
	if empty := m.MeasureText("", 12); empty.Width != 0 {
		t.Errorf("empty width = %v, want 0", empty.Width)
	}
}

func TestShapingMeasurerAgreesWithFace(t *testing.T) {
	shaped, err := NewShapingMeasurer(goregular.TTF)
	if err != nil {
		t.Fatalf("NewShapingMeasurer() error = %v", err)
	}
	src, err := DefaultFontSource()
	if err != nil {
		t.Fatal(err)
	}
	face := NewFaceMeasurer(src)

	a := shaped.MeasureText("Settings", 24)
	b := face.MeasureText("Settings", 24)
	if a.Width <= 0 {
		t.Fatalf("shaped width = %v, want > 0", a.Width)
	}
	if math.Abs(a.Width-b.Width)/b.Width > 0.1 {
		t.Errorf("shaped width %v differs from face width %v by more than 10%%", a.Width, b.Width)
	}
	if a.Descent <= 0 || a.Descent >= 24 {
		t.Errorf("shaped descent = %v, want in (0, 24)", a.Descent)
	}
	if e := shaped.MeasureText("", 24); e.Width != 0 || e.Descent != a.Descent {
		t.Errorf("empty label = %+v, want zero width and font descent", e)
	}
}

func TestNewShapingMeasurerEmpty(t *testing.T) {
	if _, err := NewShapingMeasurer(nil); err != ErrEmptyFont {
		t.Errorf("NewShapingMeasurer(nil) error = %v, want ErrEmptyFont", err)
	}
}

func TestRendererAttachUsesFontMetrics(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	s := arcview.NewSector("Settings")
	r.Attach(s)
	got := s.Geometry().Label
	want := r.Measurer().MeasureText("Settings", arcview.DefaultTextSize)
	if got != want {
		t.Errorf("Label = %+v, want %+v from the renderer font", got, want)
	}
}

func TestRenderComposerPaintsRing(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	c, _ := newTestComposer(4)

	dc, err := r.RenderComposer(c, 200, 200, color.White)
	if err != nil {
		t.Fatalf("RenderComposer() error = %v", err)
	}
	img := dc.Image()
	center := arcview.Pt(100, 100)

	// Mid-ring, away from the label and the boundary lines.
	if p := center.Polar(75, 240); !near(img, p, red, 8) {
		t.Errorf("ring pixel at %v = %v, want red", p, img.At(int(p.X), int(p.Y)))
	}
	// Inside the hole and outside the ring stay white.
	if p := center; !near(img, p, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, 8) {
		t.Errorf("center pixel = %v, want white", img.At(int(p.X), int(p.Y)))
	}
	if p := arcview.Pt(2, 2); !near(img, p, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, 8) {
		t.Errorf("corner pixel = %v, want white", img.At(2, 2))
	}
}

func TestRenderComposerPressedColor(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	c, sectors := newTestComposer(4)
	c.Layout(arcview.Rect{Max: arcview.Pt(200, 200)})
	c.Dispatch(arcview.PointerEvent{Action: arcview.PointerDown, X: 100, Y: 25})
	if !sectors[0].Pressed() {
		t.Fatal("top sector should be pressed")
	}

	dc, err := r.RenderComposer(c, 200, 200, color.White)
	if err != nil {
		t.Fatal(err)
	}
	img := dc.Image()
	center := arcview.Pt(100, 100)
	if p := center.Polar(75, 240); !near(img, p, blue, 8) {
		t.Errorf("pressed ring pixel = %v, want blue", img.At(int(p.X), int(p.Y)))
	}
	if p := center.Polar(75, 330); !near(img, p, red, 8) {
		t.Errorf("idle ring pixel = %v, want red", img.At(int(p.X), int(p.Y)))
	}
}

func TestRenderComposerDrawsLabel(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	c, _ := newTestComposer(4)
	dc, err := r.RenderComposer(c, 200, 200, color.White)
	if err != nil {
		t.Fatal(err)
	}
	img := dc.Image()

	// Count dark pixels around the top label, centered at (100, 25).
	dark := 0
	for y := 10; y < 40; y++ {
		for x := 80; x < 120; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if px.G < 0x80 && px.R < 0x80 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no label pixels found around the top sector")
	}
}

func TestDrawSectorSkipsEmpty(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	s := arcview.NewSector("x")
	s.SetOuterRadius(0)
	if err := r.DrawSector(gg.NewContext(10, 10), s); err != nil {
		t.Errorf("DrawSector() on zero radius = %v, want nil", err)
	}
}

func TestDrawSectorInnerFill(t *testing.T) {
	r, err := NewRenderer(WithInnerFill(true))
	if err != nil {
		t.Fatal(err)
	}
	green := color.NRGBA{G: 0xff, A: 0xff}
	s := arcview.NewSector("", arcview.WithInnerRadiusRatio(0.5), arcview.WithSweepAngle(360),
		arcview.WithStyle(arcview.Style{InnerColor: green}))
	s.Layout(arcview.Pt(50, 50), 100, 100)

	dc := gg.NewContext(100, 100)
	if err := r.DrawSector(dc, s); err != nil {
		t.Fatal(err)
	}
	if !near(dc.Image(), arcview.Pt(50, 50), green, 8) {
		t.Errorf("center pixel = %v, want inner color", dc.Image().At(50, 50))
	}
}
