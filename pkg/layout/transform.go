package layout

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Placement maps a segment from model space (millimetres, circle centre at
// the origin) onto the page. Points are rotated about the origin first, then
// scaled, then translated.
type Placement struct {
	Center      vec.Vec2 // Target centre of the rotated bounding box on the page
	Rotation    float64  // Rotation in degrees, counter-clockwise
	Scale       float64  // Uniform scale factor, page units per millimetre
	Translation vec.Vec2 // Translation applied after rotation and scaling
}

// Apply transforms a model-space point to page space
func (p Placement) Apply(v vec.Vec2) vec.Vec2 {
	return transform(matrix.RotateDeg(p.Rotation), v).Mul(p.Scale).Add(p.Translation)
}

// transform applies a PDF-style matrix [a b c d e f] to a row vector
func transform(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: v.X*m[0] + v.Y*m[2] + m[4],
		Y: v.X*m[1] + v.Y*m[3] + m[5],
	}
}

// ApplyAll transforms a slice of points and returns a new slice
func (p Placement) ApplyAll(points []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(points))
	for i, v := range points {
		out[i] = p.Apply(v)
	}
	return out
}

// Direction returns the page-space unit vector pointing along the model
// angle (radians) measured from the positive X axis
func (p Placement) Direction(angle float64) vec.Vec2 {
	phi := angle + p.Rotation*math.Pi/180
	return vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
}

// PageAngle converts a model angle (radians) to a page angle (radians)
func (p Placement) PageAngle(angle float64) float64 {
	return angle + p.Rotation*math.Pi/180
}
