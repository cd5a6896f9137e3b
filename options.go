package arcview

// SectorOption configures a Sector during creation.
//
// Example:
//
//	s := arcview.NewSector("Mail",
//	    arcview.WithMaxRadius(160),
//	    arcview.WithInnerRadiusRatio(0.5),
//	)
type SectorOption func(*Sector)

// WithStyle sets the sector style. Unset fields keep their defaults.
func WithStyle(st Style) SectorOption {
	return func(s *Sector) {
		s.style = st.withDefaults()
	}
}

// WithMaxRadius sets the upper bound for the outer radius.
func WithMaxRadius(r float64) SectorOption {
	return func(s *Sector) {
		s.maxRadius = sanitizeMaxRadius(r)
	}
}

// WithInnerRadiusRatio sets the inner/outer radius ratio.
// The ratio is sanitized the same way as SetInnerRadiusRatio.
func WithInnerRadiusRatio(ratio float64) SectorOption {
	return func(s *Sector) {
		s.innerRatio = sanitizeRatio(ratio)
	}
}

// WithStartAngle sets the initial start angle in degrees.
func WithStartAngle(a float64) SectorOption {
	return func(s *Sector) {
		s.start = Normalize360(a)
	}
}

// WithSweepAngle sets the initial sweep angle in degrees.
func WithSweepAngle(a float64) SectorOption {
	return func(s *Sector) {
		s.sweep = NormalizeSweep(a)
	}
}

// WithTextMeasurer sets the measurer used to size the label.
// Back ends with real fonts (see the canvas package) provide one.
func WithTextMeasurer(m TextMeasurer) SectorOption {
	return func(s *Sector) {
		if m != nil {
			s.measurer = m
		}
	}
}

// WithOnTap registers a callback fired when a press is released inside
// the sector.
func WithOnTap(fn func(*Sector)) SectorOption {
	return func(s *Sector) {
		s.onTap = fn
	}
}

// ComposerOption configures a Composer during creation.
type ComposerOption func(*Composer)

// WithPadding sets the padding between the composer bounds and the content
// box handed to each sector.
func WithPadding(in Insets) ComposerOption {
	return func(c *Composer) {
		c.padding = in
	}
}
