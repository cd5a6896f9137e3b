package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/arcview"
)

const sample = `
width: 300
height: 200
background: "#000000"
padding: {left: 10, top: 10, right: 10, bottom: 10}
style:
  text_color: "#112233"
  text_size: 18
sectors:
  - text: Home
  - text: Mail
    active: false
  - text: Maps
    inner_radius_ratio: 0.5
    style:
      arc_color: "#ffe0b2"
      stroke_width: 0
`

func TestParseDefaults(t *testing.T) {
	f, err := Parse([]byte("sectors:\n  - text: A\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.Width != DefaultWidth || f.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", f.Width, f.Height, DefaultWidth, DefaultHeight)
	}
	if f.Mode != ModeComposer {
		t.Errorf("mode = %q, want %q", f.Mode, ModeComposer)
	}
	if f.Background != "#ffffff" {
		t.Errorf("background = %q, want #ffffff", f.Background)
	}

	l, err := f.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Sectors[0].Style(); got != arcview.DefaultStyle() {
		t.Errorf("style = %+v, want defaults", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", ErrNoSectors},
		{"no sectors", "width: 10\n", ErrNoSectors},
		{"negative size", "width: -1\nsectors: [{text: A}]\n", ErrInvalidSize},
		{"bad mode", "mode: spiral\nsectors: [{text: A}]\n", ErrInvalidMode},
		{"bad background", "background: red\nsectors: [{text: A}]\n", ErrInvalidColor},
		{"bad style color", "style: {arc_color: '#zz0000'}\nsectors: [{text: A}]\n", ErrInvalidColor},
		{"bad sector color", "sectors: [{text: A, style: {text_color: blue}}]\n", ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("sectors: [{text: A, colour: '#fff'}]\n"))
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("Parse() error = %v, want unknown field error", err)
	}
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	l, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if l.Background != (color.NRGBA{A: 0xff}) {
		t.Errorf("Background = %v, want black", l.Background)
	}
	if l.Padding != arcview.UniformInsets(10) {
		t.Errorf("Padding = %+v, want 10 on every side", l.Padding)
	}
	if len(l.Sectors) != 3 || l.Composer.Len() != 3 {
		t.Fatalf("got %d sectors, composer %d, want 3", len(l.Sectors), l.Composer.Len())
	}
	if l.Composer.IsActive(l.Sectors[1]) {
		t.Error("Mail should be inactive")
	}
	if got := len(l.Visible()); got != 2 {
		t.Errorf("Visible() = %d sectors, want 2", got)
	}

	home := l.Sectors[0].Style()
	if home.TextColor != (color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}) || home.TextSize != 18 {
		t.Errorf("shared style not applied: %+v", home)
	}
	maps := l.Sectors[2]
	if maps.Style().ArcColor != (color.NRGBA{R: 0xff, G: 0xe0, B: 0xb2, A: 0xff}) {
		t.Errorf("sector arc color = %v", maps.Style().ArcColor)
	}
	if maps.Style().StrokeWidth != 0 {
		t.Errorf("sector stroke width = %v, want 0", maps.Style().StrokeWidth)
	}
	if maps.Style().TextSize != 18 {
		t.Errorf("sector should inherit shared text size, got %v", maps.Style().TextSize)
	}
	if maps.InnerRadiusRatio() != 0.5 {
		t.Errorf("inner radius ratio = %v, want 0.5", maps.InnerRadiusRatio())
	}
}

func TestArrangeComposer(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	l, err := f.Build()
	if err != nil {
		t.Fatal(err)
	}
	l.Arrange()

	if got := l.Composer.Coverage(); got != arcview.FullCircle {
		t.Errorf("Coverage() = %v, want 360", got)
	}
	home := l.Sectors[0]
	if home.StartAngle() != 180 || home.SweepAngle() != 180 {
		t.Errorf("Home = start %v sweep %v, want 180/180", home.StartAngle(), home.SweepAngle())
	}
	// 300x200 minus 10px padding: 280x180 content, radius 90.
	if home.OuterRadius() != 90 {
		t.Errorf("OuterRadius() = %v, want 90", home.OuterRadius())
	}
	if home.Center() != arcview.Pt(150, 100) {
		t.Errorf("Center() = %v, want (150, 100)", home.Center())
	}
	if got := l.HitTest(150, 100-85); got != home {
		t.Errorf("HitTest above center = %v, want Home", got)
	}
}

func TestArrangeStandalone(t *testing.T) {
	doc := `
mode: standalone
width: 100
height: 100
sectors:
  - text: East
    start_angle: -45
    sweep_angle: 90
    max_radius: 40
  - text: West
    start_angle: 135
    sweep_angle: 90
`
	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	l, err := f.Build()
	if err != nil {
		t.Fatal(err)
	}
	l.Arrange()

	east, west := l.Sectors[0], l.Sectors[1]
	if east.StartAngle() != 315 || east.SweepAngle() != 90 {
		t.Errorf("East = start %v sweep %v, want 315/90", east.StartAngle(), east.SweepAngle())
	}
	if east.OuterRadius() != 40 || west.OuterRadius() != 50 {
		t.Errorf("radii = %v, %v, want 40, 50", east.OuterRadius(), west.OuterRadius())
	}
	if got := l.HitTest(85, 50); got != east {
		t.Errorf("HitTest(85, 50) = %v, want East", got)
	}
	if got := l.HitTest(10, 50); got != west {
		t.Errorf("HitTest(10, 50) = %v, want West", got)
	}
	if got := l.HitTest(50, 10); got != nil {
		t.Errorf("HitTest(50, 10) = %v, want nil", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.Width != 300 || len(f.Sectors) != 3 {
		t.Errorf("Load() = %dpx, %d sectors", f.Width, len(f.Sectors))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestParseColorShortForm(t *testing.T) {
	c, err := parseColor("#abc")
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}); c != want {
		t.Errorf("parseColor(#abc) = %v, want %v", c, want)
	}
}

func TestDefault(t *testing.T) {
	f := Default("A", "B", "C")
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	l, err := f.Build()
	if err != nil {
		t.Fatal(err)
	}
	l.Arrange()
	if got := len(l.Visible()); got != 3 {
		t.Errorf("Visible() = %d, want 3", got)
	}
	if got := l.Sectors[0].StartAngle(); got != 210 {
		t.Errorf("first start = %v, want 210", got)
	}
}

func TestDispatchStandalone(t *testing.T) {
	doc := `
mode: standalone
width: 100
height: 100
sectors:
  - {text: East, start_angle: -45, sweep_angle: 90}
  - {text: West, start_angle: 135, sweep_angle: 90}
`
	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	l, err := f.Build()
	if err != nil {
		t.Fatal(err)
	}
	l.Arrange()

	if !l.Dispatch(arcview.PointerEvent{Action: arcview.PointerDown, X: 90, Y: 50}) {
		t.Fatal("Down on East should be handled")
	}
	if !l.Sectors[0].Pressed() || l.Sectors[1].Pressed() {
		t.Errorf("pressed = %v, %v, want East only", l.Sectors[0].Pressed(), l.Sectors[1].Pressed())
	}
	l.Dispatch(arcview.PointerEvent{Action: arcview.PointerUp, X: 90, Y: 50})
	if l.Sectors[0].Pressed() {
		t.Error("Up should release East")
	}
}
