package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a Spec does not describe a valid segment.
// Errors returned by Solve wrap it together with the violated precondition.
var ErrInvalidInput = errors.New("invalid input")

// Spec holds the partial measurements of a ring segment in millimetres and
// degrees. A nil field means the value was not given.
//
// At most one radius may be omitted when Depth is set. Exactly one of
// AngleDegrees, ChordLength and ArcLength defines the angle; if several are
// set, AngleDegrees wins over ChordLength, which wins over ArcLength.
type Spec struct {
	InnerRadius  *float64
	OuterRadius  *float64
	Depth        *float64
	ChordLength  *float64
	ArcLength    *float64
	AngleDegrees *float64
}

// Given returns a pointer to v, for filling Spec fields
func Given(v float64) *float64 {
	return &v
}

// Segment is the fully resolved geometry of an annular segment.
// All derived fields are computed from InnerRadius, OuterRadius and AngleRad
// when the value is created and never change afterwards.
type Segment struct {
	InnerRadius      float64
	OuterRadius      float64
	Depth            float64
	AngleRad         float64
	AngleDegrees     float64
	InnerArcLength   float64
	OuterArcLength   float64
	InnerChordLength float64
	OuterChordLength float64
}

// Unit is a named segment, one stone in a batch
type Unit struct {
	ID      string
	Segment Segment
}

// NewSegment derives every field of a Segment from its primary values.
// It does not validate; use Solve for user input.
func NewSegment(innerRadius, outerRadius, angleRad float64) Segment {
	halfSin := math.Sin(angleRad / 2)
	return Segment{
		InnerRadius:      innerRadius,
		OuterRadius:      outerRadius,
		Depth:            outerRadius - innerRadius,
		AngleRad:         angleRad,
		AngleDegrees:     angleRad * 180 / math.Pi,
		InnerArcLength:   innerRadius * angleRad,
		OuterArcLength:   outerRadius * angleRad,
		InnerChordLength: 2 * innerRadius * halfSin,
		OuterChordLength: 2 * outerRadius * halfSin,
	}
}

// Solve resolves a partial Spec into a complete Segment.
//
// Radii come first: a depth together with exactly one radius derives the
// other one, otherwise both radii must be given. The angle then comes from
// the angle itself, the chord length or the arc length, in that order.
// Chord and arc length are always measured on the outer radius.
func Solve(spec Spec) (Segment, error) {
	inputs := []struct {
		name  string
		value *float64
	}{
		{"inner radius", spec.InnerRadius},
		{"outer radius", spec.OuterRadius},
		{"depth", spec.Depth},
		{"chord length", spec.ChordLength},
		{"arc length", spec.ArcLength},
		{"angle", spec.AngleDegrees},
	}
	for _, in := range inputs {
		v := in.value
		if v != nil && (*v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return Segment{}, fmt.Errorf("%w: %s must be a non-negative number, got %g", ErrInvalidInput, in.name, *v)
		}
	}

	inner, outer, err := resolveRadii(spec)
	if err != nil {
		return Segment{}, err
	}

	angle, err := resolveAngle(spec, outer)
	if err != nil {
		return Segment{}, err
	}
	if angle <= 0 {
		return Segment{}, fmt.Errorf("%w: resolved angle must be greater than zero", ErrInvalidInput)
	}

	return NewSegment(inner, outer, angle), nil
}

func resolveRadii(spec Spec) (inner, outer float64, err error) {
	switch {
	case spec.Depth != nil && spec.InnerRadius != nil && spec.OuterRadius == nil:
		inner = *spec.InnerRadius
		outer = inner + *spec.Depth
	case spec.Depth != nil && spec.OuterRadius != nil && spec.InnerRadius == nil:
		outer = *spec.OuterRadius
		inner = outer - *spec.Depth
	case spec.InnerRadius != nil && spec.OuterRadius != nil:
		inner = *spec.InnerRadius
		outer = *spec.OuterRadius
	case spec.InnerRadius == nil && spec.OuterRadius == nil:
		return 0, 0, fmt.Errorf("%w: must specify at least one radius", ErrInvalidInput)
	default:
		return 0, 0, fmt.Errorf("%w: must specify both radii or one radius with depth", ErrInvalidInput)
	}

	if inner < 0 {
		return 0, 0, fmt.Errorf("%w: depth %g exceeds outer radius %g", ErrInvalidInput, outer-inner, outer)
	}
	if inner >= outer {
		return 0, 0, fmt.Errorf("%w: inner radius %g must be less than outer radius %g", ErrInvalidInput, inner, outer)
	}
	return inner, outer, nil
}

func resolveAngle(spec Spec, outer float64) (float64, error) {
	switch {
	case spec.AngleDegrees != nil:
		return *spec.AngleDegrees * math.Pi / 180, nil
	case spec.ChordLength != nil:
		chord := *spec.ChordLength
		if chord > 2*outer {
			return 0, fmt.Errorf("%w: chord length %g exceeds outer diameter %g", ErrInvalidInput, chord, 2*outer)
		}
		return 2 * math.Asin(chord/(2*outer)), nil
	case spec.ArcLength != nil:
		return *spec.ArcLength / outer, nil
	default:
		return 0, fmt.Errorf("%w: no angle-defining input (angle, chord length or arc length)", ErrInvalidInput)
	}
}

// MidRadius returns the radius halfway between the two arcs
func (s Segment) MidRadius() float64 {
	return (s.InnerRadius + s.OuterRadius) / 2
}

// InnerSagitta returns the height of the inner arc above its chord
func (s Segment) InnerSagitta() float64 {
	return s.InnerRadius * (1 - math.Cos(s.AngleRad/2))
}

// OuterSagitta returns the height of the outer arc above its chord
func (s Segment) OuterSagitta() float64 {
	return s.OuterRadius * (1 - math.Cos(s.AngleRad/2))
}
