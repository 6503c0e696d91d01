package annotate

import "unicode/utf8"

// Style holds the drawing constants used by the annotator.
// All distances are page-space millimetres.
type Style struct {
	Clearance      float64 `mapstructure:"clearance"`        // Gap between the geometry and an extension line
	Overshoot      float64 `mapstructure:"overshoot"`        // Extension line length beyond the dimension line
	ArcOffset      float64 `mapstructure:"arc_offset"`       // Radial offset of arc length dimensions
	ChordOffset    float64 `mapstructure:"chord_offset"`     // Offset of chord dimensions beyond the arc bulge
	DepthOffset    float64 `mapstructure:"depth_offset"`     // Offset of the depth dimension from the radial edge
	AngleInset     float64 `mapstructure:"angle_inset"`      // Distance of the angle arc inside the inner arc
	LeaderLength   float64 `mapstructure:"leader_length"`    // Length of radius leaders
	ArrowLength    float64 `mapstructure:"arrow_length"`
	ArrowHalfAngle float64 `mapstructure:"arrow_half_angle"` // Degrees between an arrow stroke and its dimension line
	TextSize       float64 `mapstructure:"text_size"`        // Label height
	IDTextSize     float64 `mapstructure:"id_text_size"`     // Unit identifier height
}

// DefaultStyle returns the constants tuned for an A3 approval sheet
func DefaultStyle() Style {
	return Style{
		Clearance:      1.5,
		Overshoot:      2,
		ArcOffset:      7,
		ChordOffset:    14,
		DepthOffset:    9,
		AngleInset:     12,
		LeaderLength:   10,
		ArrowLength:    2.5,
		ArrowHalfAngle: 18,
		TextSize:       2.8,
		IDTextSize:     4.2,
	}
}

// TextWidth approximates the rendered width of text at the given height.
// Glyph metrics are not consulted.
func TextWidth(text string, size float64) float64 {
	return 0.5 * size * float64(utf8.RuneCountInString(text))
}
