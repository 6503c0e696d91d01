package annotate

import (
	"math"
	"testing"

	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/layout"
	"seehuhn.de/go/geom/vec"
)

func TestStyleScaled(t *testing.T) {
	s := DefaultStyle()
	half := s.Scaled(0.5)

	if half.ChordOffset != 7 || half.TextSize != 1.4 || half.IDTextSize != 2.1 || half.Clearance != 0.75 {
		t.Errorf("Scaled failed: got %+v", half)
	}
	if half.ArrowHalfAngle != s.ArrowHalfAngle {
		t.Errorf("Scaled failed: expected arrow angle %v, got %v", s.ArrowHalfAngle, half.ArrowHalfAngle)
	}
	if s.Scaled(1) != s {
		t.Errorf("Scaled(1) failed: expected %+v, got %+v", s, s.Scaled(1))
	}
}

func cellOf(r layout.Rect, maxSize float64) layout.Cell {
	return layout.Cell{Bounds: r, Center: r.Center(), MaxSize: maxSize}
}

func TestFitKeepsStyleInLargeCells(t *testing.T) {
	seg := geometry.NewSegment(1000, 1200, 30*math.Pi/180)
	cell := cellOf(layout.Rect{LLx: 0, LLy: 0, URx: 200, URy: 200}, 120)

	_, style := Fit(seg, cell, "Type-A", DefaultStyle(), geometry.DefaultOutlineOptions())
	if style != DefaultStyle() {
		t.Errorf("Fit failed: expected the default style, got %+v", style)
	}
}

func TestFitStaysInCell(t *testing.T) {
	// A dense grid cell: wide and short
	cell := cellOf(layout.Rect{LLx: 20, LLy: 50, URx: 115, URy: 78.4}, 21.7)
	for _, degrees := range []float64{5, 30, 90, 180, 270, 350} {
		seg := geometry.NewSegment(1000, 1200, degrees*math.Pi/180)
		p, style := Fit(seg, cell, "Type-A", DefaultStyle(), geometry.DefaultOutlineOptions())

		if f := cell.MaxSize / ReferenceCell; math.Abs(style.TextSize-DefaultStyle().TextSize*f) > 1e-9 {
			t.Errorf("%v°: text size failed: expected %v, got %v", degrees, DefaultStyle().TextSize*f, style.TextSize)
		}

		ext := Extent(seg, p, "Type-A", style, geometry.DefaultOutlineOptions())
		const tol = 1e-6
		if ext.Min.X < cell.Bounds.LLx-tol || ext.Max.X > cell.Bounds.URx+tol ||
			ext.Min.Y < cell.Bounds.LLy-tol || ext.Max.Y > cell.Bounds.URy+tol {
			t.Errorf("%v°: Fit failed: extent %v..%v leaves cell %+v", degrees, ext.Min, ext.Max, cell.Bounds)
		}
		if p.Scale <= 0 {
			t.Errorf("%v°: Fit failed: expected a positive scale, got %v", degrees, p.Scale)
		}
	}
}

func TestExtentCoversLabels(t *testing.T) {
	seg := geometry.NewSegment(1000, 1200, 30*math.Pi/180)
	p := place(seg)
	ext := Extent(seg, p, "Type-A", DefaultStyle(), geometry.DefaultOutlineOptions())

	for _, a := range Annotate(seg, p, DefaultStyle()) {
		w := a.Label.Width() / 2
		for _, corner := range []vec.Vec2{
			{X: a.Label.At.X - w, Y: a.Label.At.Y},
			{X: a.Label.At.X + w, Y: a.Label.At.Y},
		} {
			if !ext.Contains(corner, 1e-9) {
				t.Errorf("%s: Extent failed: label corner %v outside %v..%v", a.Feature, corner, ext.Min, ext.Max)
			}
		}
	}
}
