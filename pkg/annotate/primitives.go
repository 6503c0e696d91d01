package annotate

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Kind tells a renderer how to stroke a line or polyline
type Kind int

const (
	KindExtension Kind = iota
	KindDimension
	KindArrow
	KindCenterLine
	KindLeader
)

func (k Kind) String() string {
	switch k {
	case KindExtension:
		return "extension"
	case KindDimension:
		return "dimension"
	case KindArrow:
		return "arrow"
	case KindCenterLine:
		return "center-line"
	case KindLeader:
		return "leader"
	default:
		return "unknown"
	}
}

// Line is a straight stroke in page space
type Line struct {
	From, To vec.Vec2
	Kind     Kind
}

// Polyline is an open stroke in page space, used for dimension arcs
type Polyline struct {
	Points []vec.Vec2
	Kind   Kind
}

// Label is text centred on At, in page space
type Label struct {
	Text string
	At   vec.Vec2
	Size float64
	Bold bool
}

// Width returns the approximate rendered width of the label
func (l Label) Width() float64 {
	return TextWidth(l.Text, l.Size)
}

// Feature identifies what an annotation measures
type Feature string

const (
	FeatureOuterRadius Feature = "outer-radius"
	FeatureInnerRadius Feature = "inner-radius"
	FeatureDepth       Feature = "depth"
	FeatureOuterChord  Feature = "outer-chord"
	FeatureInnerChord  Feature = "inner-chord"
	FeatureOuterArc    Feature = "outer-arc"
	FeatureInnerArc    Feature = "inner-arc"
	FeatureAngle       Feature = "angle"
	FeatureUnitID      Feature = "unit-id"
)

// Features lists the dimensioned features in drawing order
var Features = []Feature{
	FeatureOuterRadius,
	FeatureInnerRadius,
	FeatureDepth,
	FeatureOuterChord,
	FeatureInnerChord,
	FeatureOuterArc,
	FeatureInnerArc,
	FeatureAngle,
}

// Annotation is the set of primitives describing one feature
type Annotation struct {
	Feature   Feature
	Lines     []Line
	Polylines []Polyline
	Label     Label
}

// turn rotates v counter-clockwise by angle radians
func turn(v vec.Vec2, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// arrow returns the two strokes of an open arrowhead with its tip at tip.
// dir points from the tip back along the dimension line.
func (s Style) arrow(tip, dir vec.Vec2) []Line {
	half := s.ArrowHalfAngle * math.Pi / 180
	return []Line{
		{From: tip, To: tip.Add(turn(dir, half).Mul(s.ArrowLength)), Kind: KindArrow},
		{From: tip, To: tip.Add(turn(dir, -half).Mul(s.ArrowLength)), Kind: KindArrow},
	}
}

// arcSteps returns the number of chords used to draw an arc of sweep radians
func arcSteps(sweep float64) int {
	return max(8, int(math.Ceil(sweep*180/math.Pi/5)))
}
