package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// BoundingBox represents an axis-aligned bounding box in the plane
type BoundingBox struct {
	Min vec.Vec2
	Max vec.Vec2
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: vec.Vec2{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: vec.Vec2{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// BoundsOf returns the bounding box of a set of points
func BoundsOf(points []vec.Vec2) BoundingBox {
	bbox := NewBoundingBox()
	for _, p := range points {
		bbox.Extend(p)
	}
	return bbox
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(p vec.Vec2) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// IsEmpty reports whether no point has been added
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width returns the extent along X
func (b BoundingBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the extent along Y
func (b BoundingBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() vec.Vec2 {
	return vec.Vec2{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
	}
}

// Contains reports whether p lies inside the box, allowing for a tolerance
func (b BoundingBox) Contains(p vec.Vec2, tol float64) bool {
	return p.X >= b.Min.X-tol && p.X <= b.Max.X+tol &&
		p.Y >= b.Min.Y-tol && p.Y <= b.Max.Y+tol
}

// PolygonContains reports whether p lies inside the closed polygon poly,
// using the even-odd rule
func PolygonContains(poly []vec.Vec2, p vec.Vec2) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
