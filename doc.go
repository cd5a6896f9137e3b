// Package arcview computes the geometry of annular arc sectors: ring
// segments that carry a label laid out along a curved baseline.
//
// # Overview
//
// A [Sector] owns one ring segment (outer and inner radius, start and sweep
// angle, label) and derives everything a drawing back end needs from it:
// bounding boxes, the two radial boundary lines, the ring stroke width and
// the text path. A [Composer] owns an ordered set of sectors and, on every
// layout pass, partitions the full circle among the active ones so that the
// first sector is centered on the vertical axis above the center.
//
// No pixels are produced here. The canvas sub-package draws sectors with
// gg, the svgcanvas sub-package writes them as SVG.
//
// # Quick Start
//
//	c := arcview.NewComposer()
//	for _, label := range []string{"Home", "Search", "Mail", "Settings"} {
//	    c.Add(arcview.NewSector(label))
//	}
//	c.Layout(arcview.Rect{Max: arcview.Pt(400, 400)})
//
//	if s := c.HitTest(200, 60); s != nil {
//	    fmt.Println(s.Text())
//	}
//
// # Coordinate System
//
// Screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 along +X, increasing toward +Y (clockwise on screen)
//
// # Concurrency
//
// Sectors and composers are not safe for concurrent use. The host serializes
// layout, hit-testing and drawing, typically on its render thread.
package arcview

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
