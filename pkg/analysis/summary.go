package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/layout"
	"seehuhn.de/go/geom/vec"
)

// Summary contains the derived measurements of a ring segment
type Summary struct {
	Segment      geometry.Segment
	Area         float64
	Perimeter    float64
	Centroid     vec.Vec2             // Area centroid, circle centre at the origin
	Bounds       geometry.BoundingBox // Extent as drawn in the DXF
	Block        geometry.BoundingBox // Extent with both chords horizontal
	InnerSagitta float64
	OuterSagitta float64
	OutlineSteps int // Arc steps of the presentation outline
}

// Summarize computes the summary of a segment
func Summarize(seg geometry.Segment, opts geometry.OutlineOptions) Summary {
	ri, ro := seg.InnerRadius, seg.OuterRadius
	half := seg.AngleRad / 2

	s := Summary{
		Segment:      seg,
		Area:         half * (ro*ro - ri*ri),
		Perimeter:    seg.InnerArcLength + seg.OuterArcLength + 2*seg.Depth,
		Bounds:       layout.RotatedBounds(seg, 0),
		Block:        layout.RotatedBounds(seg, layout.PresentationRotation(seg)),
		InnerSagitta: seg.InnerSagitta(),
		OuterSagitta: seg.OuterSagitta(),
		OutlineSteps: opts.Steps(seg),
	}

	// Centroid of an annular sector lies on the bisector
	if s.Area > 0 {
		r := 2 * (ro*ro*ro - ri*ri*ri) * math.Sin(half) / (3 * (ro*ro - ri*ri) * half)
		s.Centroid = geometry.Polar(r, half)
	}
	return s
}

// Totals aggregates the summaries of a batch
type Totals struct {
	Units          int
	Area           float64
	OuterArcLength float64
	InnerArcLength float64
	AngleDegrees   float64
}

// Total sums up a batch of summaries
func Total(summaries []Summary) Totals {
	t := Totals{Units: len(summaries)}
	for _, s := range summaries {
		t.Area += s.Area
		t.OuterArcLength += s.Segment.OuterArcLength
		t.InnerArcLength += s.Segment.InnerArcLength
		t.AngleDegrees += s.Segment.AngleDegrees
	}
	return t
}

// FormatMeasurement formats a length in millimetres
func FormatMeasurement(value float64) string {
	return fmt.Sprintf("%.2f mm", value)
}

// FormatArea formats an area given in square millimetres as square metres
func FormatArea(value float64) string {
	return fmt.Sprintf("%.4f m²", value/1e6)
}

// FormatAngle formats an angle in degrees
func FormatAngle(degrees float64) string {
	return fmt.Sprintf("%.4f°", degrees)
}

// FormatPoint formats a 2D point
func FormatPoint(v vec.Vec2) string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}
