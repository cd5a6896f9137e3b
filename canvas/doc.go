// Package canvas draws arc sectors onto a gg drawing context.
//
// The Renderer executes the geometry computed by arcview: the ring is
// painted as a thick arc along the text radius, the outer and inner edges
// and the two boundary lines are stroked, and the label is drawn glyph by
// glyph along the sector's text path.
//
// Labels are measured with a real font so the text path is sized to the
// glyphs that are drawn. By default the Go Regular font from
// golang.org/x/image is used; WithFontSource replaces it.
//
// Example:
//
//	r, err := canvas.NewRenderer()
//	if err != nil {
//	    return err
//	}
//	dc, err := r.RenderComposer(composer, 400, 400, color.White)
//	if err != nil {
//	    return err
//	}
//	return dc.SavePNG("menu.png")
package canvas
