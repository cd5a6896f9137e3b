// Package config loads arc menu layouts from YAML.
//
// A layout file describes the canvas, a shared style and a list of
// sectors:
//
//	width: 400
//	height: 400
//	background: "#ffffff"
//	padding: {left: 10, top: 10, right: 10, bottom: 10}
//	mode: composer
//	style:
//	  text_color: "#444444"
//	  text_size: 24
//	sectors:
//	  - text: Home
//	  - text: Mail
//	    active: false
//	  - text: Maps
//	    style: {arc_color: "#ffe0b2"}
//
// In composer mode the active sectors split the full circle between them.
// In standalone mode every sector keeps its own start and sweep angles and
// is laid out in the whole canvas. Colors are "#rrggbb" strings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/gogpu/arcview"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Layout modes.
const (
	ModeComposer   = "composer"
	ModeStandalone = "standalone"
)

// Default canvas size.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

var (
	// ErrNoSectors is returned when a layout lists no sectors.
	ErrNoSectors = errors.New("config: no sectors")

	// ErrInvalidSize is returned for a non-positive canvas size.
	ErrInvalidSize = errors.New("config: invalid canvas size")

	// ErrInvalidMode is returned for an unknown layout mode.
	ErrInvalidMode = errors.New("config: invalid mode")

	// ErrInvalidColor is returned when a color is not a #rrggbb string.
	ErrInvalidColor = errors.New("config: invalid color")
)

// File is the YAML layout document.
type File struct {
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	Background string       `yaml:"background"`
	Padding    InsetsSpec   `yaml:"padding"`
	Mode       string       `yaml:"mode"`
	Style      StyleSpec    `yaml:"style"`
	Sectors    []SectorSpec `yaml:"sectors"`
}

// InsetsSpec is the padding around the content box.
type InsetsSpec struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// StyleSpec holds style overrides. Empty fields inherit.
type StyleSpec struct {
	TextColor    string   `yaml:"text_color"`
	TextSize     *float64 `yaml:"text_size"`
	ArcColor     string   `yaml:"arc_color"`
	PressedColor string   `yaml:"pressed_color"`
	InnerColor   string   `yaml:"inner_color"`
	StrokeColor  string   `yaml:"stroke_color"`
	StrokeWidth  *float64 `yaml:"stroke_width"`
}

// SectorSpec describes one sector.
type SectorSpec struct {
	Text             string    `yaml:"text"`
	Active           *bool     `yaml:"active"`
	MaxRadius        *float64  `yaml:"max_radius"`
	InnerRadiusRatio *float64  `yaml:"inner_radius_ratio"`
	StartAngle       *float64  `yaml:"start_angle"`
	SweepAngle       *float64  `yaml:"sweep_angle"`
	Style            StyleSpec `yaml:"style"`
}

// Load reads and parses the layout file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a layout document, applies defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Default returns a composer layout with one default-styled sector per
// label.
func Default(labels ...string) *File {
	f := &File{}
	for _, l := range labels {
		f.Sectors = append(f.Sectors, SectorSpec{Text: l})
	}
	f.applyDefaults()
	return f
}

func (f *File) applyDefaults() {
	if f.Width == 0 {
		f.Width = DefaultWidth
	}
	if f.Height == 0 {
		f.Height = DefaultHeight
	}
	if f.Background == "" {
		f.Background = "#ffffff"
	}
	if f.Mode == "" {
		f.Mode = ModeComposer
	}
}

// Validate checks the canvas, the mode and every color.
func (f *File) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, f.Width, f.Height)
	}
	if f.Mode != ModeComposer && f.Mode != ModeStandalone {
		return fmt.Errorf("%w: %q", ErrInvalidMode, f.Mode)
	}
	if len(f.Sectors) == 0 {
		return ErrNoSectors
	}
	if _, err := parseColor(f.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := f.Style.apply(arcview.DefaultStyle()); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	for i, s := range f.Sectors {
		if _, err := s.Style.apply(arcview.DefaultStyle()); err != nil {
			return fmt.Errorf("sector %d (%q): %w", i, s.Text, err)
		}
	}
	return nil
}

// Layout is a built layout ready to be arranged and drawn.
type Layout struct {
	Width      int
	Height     int
	Background color.Color
	Padding    arcview.Insets
	Standalone bool
	Composer   *arcview.Composer
	Sectors    []*arcview.Sector
}

// Build creates the sectors described by f. Sector options in opts are
// applied to every sector after the file's own settings.
func (f *File) Build(opts ...arcview.SectorOption) (*Layout, error) {
	bg, err := parseColor(f.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	base, err := f.Style.apply(arcview.DefaultStyle())
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}

	l := &Layout{
		Width:      f.Width,
		Height:     f.Height,
		Background: bg,
		Padding: arcview.Insets{
			Left:   f.Padding.Left,
			Top:    f.Padding.Top,
			Right:  f.Padding.Right,
			Bottom: f.Padding.Bottom,
		},
		Standalone: f.Mode == ModeStandalone,
	}
	l.Composer = arcview.NewComposer(arcview.WithPadding(l.Padding))

	for i, spec := range f.Sectors {
		st, err := spec.Style.apply(base)
		if err != nil {
			return nil, fmt.Errorf("sector %d (%q): %w", i, spec.Text, err)
		}
		s := arcview.NewSector(spec.Text, append(spec.options(st), opts...)...)
		l.Sectors = append(l.Sectors, s)
		l.Composer.Add(s)
		if spec.Active != nil && !*spec.Active {
			l.Composer.SetActive(s, false)
		}
	}

	arcview.Logger().Debug("config: built layout",
		"mode", f.Mode,
		"sectors", len(l.Sectors),
		"width", l.Width,
		"height", l.Height)
	return l, nil
}

// Bounds returns the canvas rectangle.
func (l *Layout) Bounds() arcview.Rect {
	return arcview.Rect{Max: arcview.Pt(float64(l.Width), float64(l.Height))}
}

// Visible returns the sectors to draw: the active ones in composer mode,
// all of them in standalone mode.
func (l *Layout) Visible() []*arcview.Sector {
	if l.Standalone {
		return l.Sectors
	}
	return l.Composer.Sectors()
}

// Arrange runs the layout pass for the canvas bounds.
func (l *Layout) Arrange() {
	if !l.Standalone {
		l.Composer.Layout(l.Bounds())
		return
	}
	for _, s := range l.Sectors {
		s.LayoutBox(l.Bounds(), l.Padding)
	}
}

// HitTest returns the first visible sector containing (x, y), or nil.
func (l *Layout) HitTest(x, y float64) *arcview.Sector {
	if !l.Standalone {
		return l.Composer.HitTest(x, y)
	}
	for _, s := range l.Sectors {
		if s.Contains(x, y) {
			return s
		}
	}
	return nil
}

// Dispatch delivers a pointer event. In composer mode the composer routes
// it; in standalone mode every sector sees it, each tracking its own
// gesture. It reports whether any sector handled the event.
func (l *Layout) Dispatch(ev arcview.PointerEvent) bool {
	if !l.Standalone {
		return l.Composer.Dispatch(ev)
	}
	handled := false
	for _, s := range l.Sectors {
		if s.HandlePointer(ev) {
			handled = true
		}
	}
	return handled
}

func (s SectorSpec) options(st arcview.Style) []arcview.SectorOption {
	opts := []arcview.SectorOption{arcview.WithStyle(st)}
	if s.MaxRadius != nil {
		opts = append(opts, arcview.WithMaxRadius(*s.MaxRadius))
	}
	if s.InnerRadiusRatio != nil {
		opts = append(opts, arcview.WithInnerRadiusRatio(*s.InnerRadiusRatio))
	}
	if s.StartAngle != nil {
		opts = append(opts, arcview.WithStartAngle(*s.StartAngle))
	}
	if s.SweepAngle != nil {
		opts = append(opts, arcview.WithSweepAngle(*s.SweepAngle))
	}
	return opts
}

// apply returns base with the fields set in s overridden.
func (s StyleSpec) apply(base arcview.Style) (arcview.Style, error) {
	colors := []struct {
		name  string
		value string
		dst   *color.Color
	}{
		{"text_color", s.TextColor, &base.TextColor},
		{"arc_color", s.ArcColor, &base.ArcColor},
		{"pressed_color", s.PressedColor, &base.PressedColor},
		{"inner_color", s.InnerColor, &base.InnerColor},
		{"stroke_color", s.StrokeColor, &base.StrokeColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		v, err := parseColor(c.value)
		if err != nil {
			return base, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = v
	}
	if s.TextSize != nil {
		base.TextSize = *s.TextSize
	}
	if s.StrokeWidth != nil {
		base.StrokeWidth = *s.StrokeWidth
	}
	return base, nil
}

// parseColor parses "#rrggbb" (or "#rgb") into an opaque color.
func parseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
