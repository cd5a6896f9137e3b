package arcview

// Contains reports whether (x, y) lies on the sector: its distance from the
// center is within [InnerRadius, OuterRadius] (inclusive) and, unless the
// sector is a full ring, its bearing lies within [start, start+sweep].
func (s *Sector) Contains(x, y float64) bool {
	return s.ContainsPoint(Pt(x, y))
}

// ContainsPoint is Contains for a Point.
func (s *Sector) ContainsPoint(p Point) bool {
	r := p.Distance(s.center)
	if r < s.innerRadius || r > s.outerRadius {
		return false
	}
	if s.sweep == FullCircle {
		return true
	}
	return InSpan(Bearing(s.center, p), s.start, s.sweep)
}
