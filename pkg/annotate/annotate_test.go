package annotate

import (
	"math"
	"testing"

	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/layout"
	"seehuhn.de/go/geom/vec"
)

func place(seg geometry.Segment) layout.Placement {
	return layout.Normalize(seg, vec.Vec2{X: 150, Y: 150}, vec.Vec2{X: 200, Y: 150})
}

func TestAnnotateFeatureOrder(t *testing.T) {
	seg := geometry.NewSegment(1000, 1200, 30*math.Pi/180)
	annotations := Annotate(seg, place(seg), DefaultStyle())

	if len(annotations) != len(Features) {
		t.Fatalf("Annotate failed: expected %d annotations, got %d", len(Features), len(annotations))
	}

	expected := []string{"R1200", "R1000", "200", "621", "518", "628", "524", "30°"}
	for i, a := range annotations {
		if a.Feature != Features[i] {
			t.Errorf("feature %d failed: expected %s, got %s", i, Features[i], a.Feature)
		}
		if a.Label.Text != expected[i] {
			t.Errorf("%s label failed: expected %q, got %q", a.Feature, expected[i], a.Label.Text)
		}
		if a.Label.Size != DefaultStyle().TextSize {
			t.Errorf("%s label size failed: expected %v, got %v", a.Feature, DefaultStyle().TextSize, a.Label.Size)
		}
	}
}

func TestAnnotateRoundsLabels(t *testing.T) {
	seg, err := geometry.Solve(geometry.Spec{
		InnerRadius: geometry.Given(1000),
		Depth:       geometry.Given(200),
		ChordLength: geometry.Given(500),
	})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	annotations := Annotate(seg, place(seg), DefaultStyle())
	if got := annotations[3].Label.Text; got != "500" {
		t.Errorf("outer chord label failed: expected 500, got %s", got)
	}
	if got := annotations[7].Label.Text; got != "24°" {
		t.Errorf("angle label failed: expected 24°, got %s", got)
	}
}

// Nothing but the unit id may be drawn on the segment itself
func TestAnnotateClearsOutline(t *testing.T) {
	opts := geometry.OutlineOptions{TessellationMin: 90, TessellationStepDeg: 1}

	for _, deg := range []float64{5, 10, 30, 60, 90, 135, 179, 180, 200, 240, 270} {
		seg := geometry.NewSegment(1000, 1200, deg*math.Pi/180)
		p := place(seg)
		outline := p.ApplyAll(geometry.BuildOutline(seg, opts))

		for _, a := range Annotate(seg, p, DefaultStyle()) {
			for _, l := range a.Lines {
				for i := 0; i <= 10; i++ {
					pt := l.From.Add(l.To.Sub(l.From).Mul(float64(i) / 10))
					if geometry.PolygonContains(outline, pt) {
						t.Errorf("%v° %s %s line crosses the segment at %v", deg, a.Feature, l.Kind, pt)
						break
					}
				}
			}
			for _, pl := range a.Polylines {
				for _, pt := range pl.Points {
					if geometry.PolygonContains(outline, pt) {
						t.Errorf("%v° %s arc crosses the segment at %v", deg, a.Feature, pt)
						break
					}
				}
			}
			if geometry.PolygonContains(outline, a.Label.At) {
				t.Errorf("%v° %s label %q is placed on the segment", deg, a.Feature, a.Label.Text)
			}
		}
	}
}

func TestUnitLabelInsideSegment(t *testing.T) {
	for _, deg := range []float64{2, 30, 90, 180, 270, 350} {
		seg := geometry.NewSegment(800, 1200, deg*math.Pi/180)
		p := place(seg)
		outline := p.ApplyAll(geometry.BuildOutline(seg, geometry.DefaultOutlineOptions()))

		l := UnitLabel(seg, p, "Type-A", DefaultStyle())
		if l.Feature != FeatureUnitID || l.Label.Text != "Type-A" || !l.Label.Bold {
			t.Errorf("UnitLabel failed: unexpected annotation %+v", l)
		}
		if !geometry.PolygonContains(outline, l.Label.At) {
			t.Errorf("UnitLabel failed: %v° label at %v is outside the segment", deg, l.Label.At)
		}
	}
}

func TestLinearDimensionParts(t *testing.T) {
	s := DefaultStyle()
	a := s.linear(FeatureDepth, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 20, Y: 0}, vec.Vec2{X: 0, Y: -1}, 9, "20")

	var ext, dim, arrows []Line
	for _, l := range a.Lines {
		switch l.Kind {
		case KindExtension:
			ext = append(ext, l)
		case KindDimension:
			dim = append(dim, l)
		case KindArrow:
			arrows = append(arrows, l)
		}
	}
	if len(ext) != 2 || len(dim) != 1 || len(arrows) != 4 {
		t.Fatalf("linear failed: expected 2/1/4 lines, got %d/%d/%d", len(ext), len(dim), len(arrows))
	}

	if ext[0].From.Y != -s.Clearance || ext[0].To.Y != -9-s.Overshoot {
		t.Errorf("extension line failed: got %v -> %v", ext[0].From, ext[0].To)
	}
	if dim[0].From.Y != -9 || dim[0].To.Y != -9 {
		t.Errorf("dimension line failed: got %v -> %v", dim[0].From, dim[0].To)
	}

	for _, l := range arrows {
		d := l.To.Sub(l.From)
		if math.Abs(d.Length()-s.ArrowLength) > 1e-9 {
			t.Errorf("arrow length failed: expected %v, got %v", s.ArrowLength, d.Length())
		}
		// Arrow strokes diverge from the dimension line by the half angle
		angle := math.Abs(math.Atan2(d.Y, math.Abs(d.X))) * 180 / math.Pi
		if math.Abs(angle-s.ArrowHalfAngle) > 1e-9 {
			t.Errorf("arrow angle failed: expected %v, got %v", s.ArrowHalfAngle, angle)
		}
	}

	// Label centred below the dimension line
	if a.Label.At.X != 10 || a.Label.At.Y >= -9-s.TextSize/2 {
		t.Errorf("label placement failed: got %v", a.Label.At)
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
	}{
		{"", 0},
		{"R1200", 7},
		{"30°", 4.2},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text, 2.8); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("TextWidth(%q) failed: expected %v, got %v", tt.text, tt.expected, got)
		}
	}
}
