package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Default tessellation parameters for BuildOutline
const (
	DefaultTessellationMin     = 20
	DefaultTessellationStepDeg = 5.0
)

// OutlineOptions controls how finely the arcs of an outline are sampled
type OutlineOptions struct {
	// TessellationMin is the minimum number of steps per arc.
	TessellationMin int `mapstructure:"tessellation_min"`
	// TessellationStepDeg is the target angular step in degrees.
	TessellationStepDeg float64 `mapstructure:"tessellation_step_deg"`
}

// DefaultOutlineOptions returns the default tessellation parameters
func DefaultOutlineOptions() OutlineOptions {
	return OutlineOptions{
		TessellationMin:     DefaultTessellationMin,
		TessellationStepDeg: DefaultTessellationStepDeg,
	}
}

// Steps returns the number of uniform steps used for each arc of seg
func (o OutlineOptions) Steps(seg Segment) int {
	minSteps := o.TessellationMin
	if minSteps < 1 {
		minSteps = DefaultTessellationMin
	}
	step := o.TessellationStepDeg
	if step <= 0 {
		step = DefaultTessellationStepDeg
	}
	return max(minSteps, int(math.Ceil(seg.AngleDegrees/step)))
}

// Polar returns the point at the given radius and angle (radians) around the origin
func Polar(radius, angle float64) vec.Vec2 {
	return vec.Vec2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// Corners returns the four corners of the segment in outline order:
// inner start, outer start, outer end, inner end.
func Corners(seg Segment) [4]vec.Vec2 {
	return [4]vec.Vec2{
		{X: seg.InnerRadius, Y: 0},
		{X: seg.OuterRadius, Y: 0},
		Polar(seg.OuterRadius, seg.AngleRad),
		Polar(seg.InnerRadius, seg.AngleRad),
	}
}

// BuildOutline returns the closed polyline of a segment in model space.
//
// The path starts at (InnerRadius, 0), runs out along the start edge, follows
// the outer arc to the end angle, comes back along the end edge and follows
// the inner arc back to angle zero. The first point is repeated at the end.
func BuildOutline(seg Segment, opts OutlineOptions) []vec.Vec2 {
	n := opts.Steps(seg)
	points := make([]vec.Vec2, 0, 2*(n+1)+1)

	// Outer arc, including both ends; the start edge is the step from
	// (Ri, 0) to its first point.
	points = append(points, vec.Vec2{X: seg.InnerRadius, Y: 0})
	for i := 0; i <= n; i++ {
		theta := seg.AngleRad * float64(i) / float64(n)
		points = append(points, Polar(seg.OuterRadius, theta))
	}

	// Inner arc in reverse; its first point closes the end edge.
	for i := n; i >= 0; i-- {
		theta := seg.AngleRad * float64(i) / float64(n)
		points = append(points, Polar(seg.InnerRadius, theta))
	}

	// The last inner point is computed as (Ri cos 0, Ri sin 0) and so
	// already equals the first point; make it exact anyway.
	points[len(points)-1] = points[0]
	return points
}

// ArcPoints samples an arc around the origin from start to end (radians)
// with n uniform steps, including both ends.
func ArcPoints(radius, start, end float64, n int) []vec.Vec2 {
	if n < 1 {
		n = 1
	}
	points := make([]vec.Vec2, n+1)
	for i := 0; i <= n; i++ {
		theta := start + (end-start)*float64(i)/float64(n)
		points[i] = Polar(radius, theta)
	}
	return points
}
