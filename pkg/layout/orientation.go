package layout

import (
	"math"

	"github.com/philipparndt/ringseg/pkg/geometry"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// FillFactor is the share of the target box a normalized segment may occupy
const FillFactor = 0.85

// PresentationRotation returns the rotation in degrees that turns the
// angular bisector of seg to 90°, so both chords run horizontally
func PresentationRotation(seg geometry.Segment) float64 {
	return 90 - seg.AngleDegrees/2
}

// RotatedBounds returns the exact axis-aligned bounding box of the segment
// after rotating it by rotation degrees about the circle centre.
//
// The extent of a rotated annular segment is reached either at one of its
// four corners or where an arc passes a multiple of 90° in the rotated
// frame, so those are the only points considered.
func RotatedBounds(seg geometry.Segment, rotation float64) geometry.BoundingBox {
	rot := rotation * math.Pi / 180
	m := matrix.RotateDeg(rotation)

	bbox := geometry.NewBoundingBox()
	for _, c := range geometry.Corners(seg) {
		bbox.Extend(transform(m, c))
	}

	for k := 0; k < 4; k++ {
		// Model angle that lands on k*90° after rotation
		phi := math.Mod(float64(k)*math.Pi/2-rot, 2*math.Pi)
		if phi < 0 {
			phi += 2 * math.Pi
		}
		for ; phi < seg.AngleRad; phi += 2 * math.Pi {
			if phi <= 0 {
				continue
			}
			bbox.Extend(transform(m, geometry.Polar(seg.OuterRadius, phi)))
			bbox.Extend(transform(m, geometry.Polar(seg.InnerRadius, phi)))
		}
	}
	return bbox
}

// Normalize computes the placement that presents seg inside a target box of
// the given size centred on center: the segment is rotated so that its
// chords are horizontal, scaled uniformly until its rotated bounding box
// fills FillFactor of the box on the tighter axis, and moved so the box
// midpoint lands on center.
func Normalize(seg geometry.Segment, target vec.Vec2, center vec.Vec2) Placement {
	rotation := PresentationRotation(seg)
	bbox := RotatedBounds(seg, rotation)

	scale := math.Inf(1)
	if w := bbox.Width(); w > 0 {
		scale = math.Min(scale, FillFactor*target.X/w)
	}
	if h := bbox.Height(); h > 0 {
		scale = math.Min(scale, FillFactor*target.Y/h)
	}
	if math.IsInf(scale, 1) {
		scale = 0
	}

	return Placement{
		Center:      center,
		Rotation:    rotation,
		Scale:       scale,
		Translation: center.Sub(bbox.Center().Mul(scale)),
	}
}
