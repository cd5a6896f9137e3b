package arcview

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

// composerEntry is a sector handle plus its visibility flag.
type composerEntry struct {
	sector *Sector
	active bool
}

// Composer arranges sectors into a full ring. Insertion order is angular
// order; only active sectors take part in layout and hit-testing.
//
// Each Layout pass gives n active sectors a sweep of 360/n and starts the
// first at -90 - sweep/2, so it is centered on the vertical axis above the
// center. Angles are recomputed from scratch on every pass.
type Composer struct {
	entries []composerEntry
	padding Insets

	bounds  Rect
	claimed *Sector
}

// NewComposer creates an empty composer.
func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends an active sector. Adding a sector already present is a no-op.
func (c *Composer) Add(s *Sector) {
	c.Insert(len(c.entries), s)
}

// Insert places an active sector at index i, clamped to [0, Len()].
// Inserting a sector already present is a no-op.
func (c *Composer) Insert(i int, s *Sector) {
	if s == nil || c.indexOf(s) >= 0 {
		return
	}
	i = max(0, min(i, len(c.entries)))
	c.entries = append(c.entries, composerEntry{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = composerEntry{sector: s, active: true}
}

// Remove deletes a sector and reports whether it was present.
func (c *Composer) Remove(s *Sector) bool {
	i := c.indexOf(s)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	if c.claimed == s {
		s.ResetState()
		c.claimed = nil
	}
	return true
}

// SetActive shows or hides a sector and reports whether it was present.
// The next Layout call repartitions the circle.
func (c *Composer) SetActive(s *Sector, active bool) bool {
	i := c.indexOf(s)
	if i < 0 {
		return false
	}
	c.entries[i].active = active
	if !active && c.claimed == s {
		s.ResetState()
		c.claimed = nil
	}
	return true
}

// IsActive reports whether s is present and active.
func (c *Composer) IsActive(s *Sector) bool {
	i := c.indexOf(s)
	return i >= 0 && c.entries[i].active
}

// Len returns the number of sectors, active or not.
func (c *Composer) Len() int { return len(c.entries) }

// All returns every sector in insertion order.
func (c *Composer) All() []*Sector {
	return lo.Map(c.entries, func(e composerEntry, _ int) *Sector {
		return e.sector
	})
}

// Sectors returns the active sectors in angular order.
func (c *Composer) Sectors() []*Sector {
	return lo.FilterMap(c.entries, func(e composerEntry, _ int) (*Sector, bool) {
		return e.sector, e.active
	})
}

// Bounds returns the bounds passed to the last Layout call.
func (c *Composer) Bounds() Rect { return c.bounds }

// Padding returns the composer padding.
func (c *Composer) Padding() Insets { return c.padding }

// Layout partitions the circle among the active sectors and lays each one
// out in the content box (bounds minus padding). With no active sector it
// does nothing.
func (c *Composer) Layout(bounds Rect) {
	c.bounds = bounds
	active := c.Sectors()
	n := len(active)
	if n == 0 {
		return
	}

	content := bounds.Inset(c.padding)
	center := content.Center()
	sweepEach := FullCircle / float64(n)
	angle := -90 - sweepEach/2

	for _, s := range active {
		s.SetStartAngle(angle)
		s.SetSweepAngle(sweepEach)
		angle += sweepEach
		s.Layout(center, content.Width(), content.Height())
	}

	Logger().Debug("composer layout",
		"active", n,
		"sweep", sweepEach,
		"coverage", c.Coverage())
}

// Coverage returns the total sweep of the active sectors in degrees.
// After Layout it is 360 whenever at least one sector is active.
func (c *Composer) Coverage() float64 {
	sweeps := lo.Map(c.Sectors(), func(s *Sector, _ int) float64 {
		return s.SweepAngle()
	})
	return floats.Sum(sweeps)
}

// HitTest returns the first active sector containing (x, y), or nil.
func (c *Composer) HitTest(x, y float64) *Sector {
	s, ok := lo.Find(c.Sectors(), func(s *Sector) bool {
		return s.Contains(x, y)
	})
	if !ok {
		return nil
	}
	return s
}

// Dispatch routes a pointer event. Down goes to the sector under the
// pointer, which claims the gesture if it handles it; later events go to
// the claiming sector until Up, Cancel or a Move that leaves it.
func (c *Composer) Dispatch(ev PointerEvent) bool {
	if ev.Action == PointerDown {
		if c.claimed != nil {
			c.claimed.ResetState()
			c.claimed = nil
		}
		target := c.HitTest(ev.X, ev.Y)
		if target == nil {
			return false
		}
		if target.HandlePointer(ev) {
			c.claimed = target
			return true
		}
		return false
	}

	if c.claimed == nil {
		return false
	}
	handled := c.claimed.HandlePointer(ev)
	if !handled {
		c.claimed = nil
	}
	return handled
}

// Claimed returns the sector holding the current gesture, or nil.
func (c *Composer) Claimed() *Sector { return c.claimed }

func (c *Composer) indexOf(s *Sector) int {
	_, i, ok := lo.FindIndexOf(c.entries, func(e composerEntry) bool {
		return e.sector == s
	})
	if !ok {
		return -1
	}
	return i
}
