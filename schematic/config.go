package schematic

// Config holds the drawing wide settings.
type Config struct {
	Unit          float64 // default length of two terminal elements, in drawing units
	InchesPerUnit float64 // output scale
	FontSize      float64 // label size, in points
	LineWidth     float64 // stroke width, in points
	Color         string  // SVG color of strokes and labels
	Margin        float64 // blank space around the drawing, in drawing units
}

// DefaultConfig returns the settings used by New.
func DefaultConfig() Config {
	return Config{
		Unit:          3,
		InchesPerUnit: 0.5,
		FontSize:      14,
		LineWidth:     2,
		Color:         "black",
		Margin:        0.1,
	}
}

// merge returns c with the non zero fields of o applied.
func (c Config) merge(o Config) Config {
	if o.Unit != 0 {
		c.Unit = o.Unit
	}
	if o.InchesPerUnit != 0 {
		c.InchesPerUnit = o.InchesPerUnit
	}
	if o.FontSize != 0 {
		c.FontSize = o.FontSize
	}
	if o.LineWidth != 0 {
		c.LineWidth = o.LineWidth
	}
	if o.Color != "" {
		c.Color = o.Color
	}
	if o.Margin != 0 {
		c.Margin = o.Margin
	}
	return c
}

// pointsPerUnit is the size of one drawing unit in the SVG output,
// where one user unit is one point.
func (c Config) pointsPerUnit() float64 { return c.InchesPerUnit * 72 }
