package sheet

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours of a sheet
type Palette struct {
	Frame     colorful.Color // Borders and title block
	Outline   colorful.Color // Segment outline stroke
	Fill      colorful.Color // Segment body
	Dimension colorful.Color // Dimension lines and their labels
	Text      colorful.Color // Unit identifiers and title block text
}

// DefaultPalette returns black linework on a light stone fill with red dimensions
func DefaultPalette() Palette {
	return Palette{
		Frame:     colorful.Color{R: 0, G: 0, B: 0},
		Outline:   colorful.Color{R: 0, G: 0, B: 0},
		Fill:      mustHex("#e6e0d4"),
		Dimension: mustHex("#d32f2f"),
		Text:      colorful.Color{R: 0, G: 0, B: 0},
	}
}

// ParsePalette overrides the default colours with hex strings keyed by
// frame, outline, fill, dimension and text
func ParsePalette(colors map[string]string) (Palette, error) {
	p := DefaultPalette()
	targets := map[string]*colorful.Color{
		"frame":     &p.Frame,
		"outline":   &p.Outline,
		"fill":      &p.Fill,
		"dimension": &p.Dimension,
		"text":      &p.Text,
	}
	for name, value := range colors {
		target, ok := targets[name]
		if !ok {
			return Palette{}, fmt.Errorf("unknown palette colour %q", name)
		}
		c, err := colorful.Hex(value)
		if err != nil {
			return Palette{}, fmt.Errorf("palette colour %s: %w", name, err)
		}
		*target = c
	}
	return p, nil
}

// Shade returns the fill colour for the unit at index i of n, so neighbouring
// units stay distinguishable on dense sheets
func (p Palette) Shade(i, n int) colorful.Color {
	if n <= 1 || i%2 == 0 {
		return p.Fill
	}
	return p.Fill.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.35).Clamped()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
