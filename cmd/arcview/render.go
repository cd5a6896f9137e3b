package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/arcview"
	"github.com/gogpu/arcview/canvas"
	"github.com/gogpu/arcview/config"
	"github.com/gogpu/arcview/svgcanvas"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/image/font/gofont/goregular"
)

var defaultLabels = []string{"Home", "Mail", "Maps", "Talk"}

var errUnknownFormat = errors.New("unknown output format")

// pointValue is a pflag.Value holding an "x,y" point.
type pointValue struct {
	p   arcview.Point
	set bool
}

var _ pflag.Value = (*pointValue)(nil)

func (v *pointValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%g,%g", v.p.X, v.p.Y)
}

func (v *pointValue) Set(s string) error {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}
	v.p = arcview.Pt(px, py)
	v.set = true
	return nil
}

func (v *pointValue) Type() string { return "point" }

type renderOptions struct {
	out     string
	format  string
	shaping bool
	inner   bool
	press   pointValue
}

func newRenderCommand(g *globalOptions) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the layout to PNG or SVG",
		Example: `  arcview render --config menu.yaml --out menu.png
  arcview render -l Home -l Mail -l Maps --out menu.svg --inner
  arcview render -c menu.yaml --press 200,40 --out pressed.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", "menu.png", "output file")
	flags.StringVarP(&opts.format, "format", "f", "", "png or svg (default from the output extension)")
	flags.BoolVar(&opts.shaping, "shaping", false, "measure labels with HarfBuzz shaping")
	flags.BoolVar(&opts.inner, "inner", false, "fill the area inside the inner radius")
	flags.Var(&opts.press, "press", "press the sector at x,y before drawing")
	return cmd
}

func runRender(cmd *cobra.Command, g *globalOptions, opts *renderOptions) error {
	format, err := outputFormat(opts.out, opts.format)
	if err != nil {
		return err
	}
	l, err := loadLayout(g)
	if err != nil {
		return err
	}

	var ropts []canvas.Option
	ropts = append(ropts, canvas.WithInnerFill(opts.inner))
	if opts.shaping {
		m, err := canvas.NewShapingMeasurer(goregular.TTF)
		if err != nil {
			return err
		}
		ropts = append(ropts, canvas.WithMeasurer(m))
	}
	r, err := canvas.NewRenderer(ropts...)
	if err != nil {
		return err
	}
	r.Attach(l.Sectors...)
	l.Arrange()

	if opts.press.set {
		p := opts.press.p
		if !l.Dispatch(arcview.PointerEvent{Action: arcview.PointerDown, X: p.X, Y: p.Y}) {
			arcview.Logger().Warn("press missed every sector", "x", p.X, "y", p.Y)
		}
	}

	switch format {
	case "svg":
		err = writeSVG(opts.out, l, opts.inner)
	default:
		err = writePNG(opts.out, l, r)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d sectors)\n", opts.out, l.Width, l.Height, len(l.Visible()))
	return nil
}

func writePNG(path string, l *config.Layout, r *canvas.Renderer) error {
	dc, err := r.Render(l.Width, l.Height, l.Background, l.Visible()...)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSVG(path string, l *config.Layout, inner bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	enc := svgcanvas.NewEncoder(
		svgcanvas.WithBackground(l.Background),
		svgcanvas.WithInnerFill(inner),
	)
	return enc.Encode(f, l.Width, l.Height, l.Visible()...)
}

func outputFormat(path, format string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case "png", "svg":
		return format, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownFormat, format)
}

func loadLayout(g *globalOptions) (*config.Layout, error) {
	var f *config.File
	if g.configPath != "" {
		var err error
		if f, err = config.Load(g.configPath); err != nil {
			return nil, err
		}
	} else {
		labels := g.labels
		if len(labels) == 0 {
			labels = defaultLabels
		}
		f = config.Default(labels...)
	}
	return f.Build()
}
