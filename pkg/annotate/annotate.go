// Package annotate produces drafting dimensions for a placed ring segment.
// Everything it returns is in page space; rendering is left to the caller.
package annotate

import (
	"fmt"
	"math"

	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/layout"
	"seehuhn.de/go/geom/vec"
)

// frame holds the page-space quantities of a placed segment
type frame struct {
	seg    geometry.Segment
	p      layout.Placement
	center vec.Vec2 // circle centre on the page
	ri, ro float64  // page-space radii
	theta  float64
}

func newFrame(seg geometry.Segment, p layout.Placement) frame {
	return frame{
		seg:    seg,
		p:      p,
		center: p.Apply(vec.Vec2{}),
		ri:     seg.InnerRadius * p.Scale,
		ro:     seg.OuterRadius * p.Scale,
		theta:  seg.AngleRad,
	}
}

// at returns the page point at page radius r along model angle a
func (f frame) at(r, a float64) vec.Vec2 {
	return f.center.Add(f.p.Direction(a).Mul(r))
}

// arc samples a concentric page-space arc from model angle a0 to a1
func (f frame) arc(r, a0, a1 float64) []vec.Vec2 {
	n := arcSteps(a1 - a0)
	points := make([]vec.Vec2, n+1)
	for i := range points {
		points[i] = f.at(r, a0+(a1-a0)*float64(i)/float64(n))
	}
	return points
}

// Annotate returns the dimensions of seg as drawn with placement p, one
// annotation per entry of Features and in that order
func Annotate(seg geometry.Segment, p layout.Placement, style Style) []Annotation {
	f := newFrame(seg, p)
	return []Annotation{
		style.outerRadius(f),
		style.innerRadius(f),
		style.depth(f),
		style.outerChord(f),
		style.innerChord(f),
		style.outerArc(f),
		style.innerArc(f),
		style.angle(f),
	}
}

// UnitLabel places the unit identifier at the centroid of the segment:
// mid-radius on the angular bisector, which is inside the shape for any angle
func UnitLabel(seg geometry.Segment, p layout.Placement, id string, style Style) Annotation {
	at := p.Apply(geometry.Polar(seg.MidRadius(), seg.AngleRad/2))
	return Annotation{
		Feature: FeatureUnitID,
		Label:   Label{Text: id, At: at, Size: style.IDTextSize, Bold: true},
	}
}

func (s Style) outerRadius(f frame) Annotation {
	a := f.theta * 3 / 4
	u := f.p.Direction(a)
	text := fmt.Sprintf("R%.0f", f.seg.OuterRadius)

	tip := f.at(f.ro+s.Clearance, a)
	elbow := f.at(f.ro+s.Clearance+s.LeaderLength, a)

	// The shoulder runs horizontally away from the circle centre
	side := 1.0
	if u.X < 0 {
		side = -1
	}
	width := TextWidth(text, s.TextSize) + 1
	end := elbow.Add(vec.Vec2{X: side * width})

	lines := []Line{
		{From: tip, To: elbow, Kind: KindLeader},
		{From: elbow, To: end, Kind: KindLeader},
	}
	lines = append(lines, s.arrow(tip, u)...)

	up := vec.Vec2{Y: 1}
	if u.Y < 0 {
		up = vec.Vec2{Y: -1}
	}
	return Annotation{
		Feature: FeatureOuterRadius,
		Lines:   lines,
		Label:   s.label(text, elbow.Add(end).Mul(0.5), up),
	}
}

func (s Style) innerRadius(f frame) Annotation {
	a := f.theta / 4
	u := f.p.Direction(a)
	text := fmt.Sprintf("R%.0f", f.seg.InnerRadius)

	length := math.Max(0, math.Min(f.ri-s.Clearance, 3*s.LeaderLength))
	tip := f.at(f.ri-s.Clearance, a)
	tail := f.at(f.ri-s.Clearance-length, a)

	lines := []Line{{From: tail, To: tip, Kind: KindCenterLine}}
	lines = append(lines, s.arrow(tip, u.Mul(-1))...)

	// Label sits beside the centre line on the bisector side
	return Annotation{
		Feature: FeatureInnerRadius,
		Lines:   lines,
		Label:   s.label(text, tail.Add(tip).Mul(0.5), f.p.Direction(a+math.Pi/2)),
	}
}

func (s Style) depth(f frame) Annotation {
	text := fmt.Sprintf("%.0f", f.seg.Depth)
	return s.linear(FeatureDepth, f.at(f.ri, 0), f.at(f.ro, 0), f.p.Direction(-math.Pi/2), s.DepthOffset, text)
}

func (s Style) outerChord(f frame) Annotation {
	text := fmt.Sprintf("%.0f", f.seg.OuterChordLength)
	u := f.p.Direction(f.theta / 2)

	// Below a half circle the arc bulges past the chord; beyond it the
	// chord is the outermost feature on the open side, shared with the
	// inner chord dimension
	n, offset := u, s.ChordOffset+f.seg.OuterSagitta()*f.p.Scale
	if f.theta >= math.Pi {
		n, offset = u.Mul(-1), 2*s.ChordOffset
	}
	return s.linear(FeatureOuterChord, f.at(f.ro, 0), f.at(f.ro, f.theta), n, offset, text)
}

func (s Style) innerChord(f frame) Annotation {
	text := fmt.Sprintf("%.0f", f.seg.InnerChordLength)
	n := f.p.Direction(f.theta / 2).Mul(-1)
	return s.linear(FeatureInnerChord, f.at(f.ri, 0), f.at(f.ri, f.theta), n, s.ChordOffset, text)
}

func (s Style) outerArc(f frame) Annotation {
	text := fmt.Sprintf("%.0f", f.seg.OuterArcLength)
	return s.concentric(FeatureOuterArc, f, f.ro, f.ro+s.ArcOffset, text)
}

func (s Style) innerArc(f frame) Annotation {
	text := fmt.Sprintf("%.0f", f.seg.InnerArcLength)
	return s.concentric(FeatureInnerArc, f, f.ri, math.Max(f.ri-s.ArcOffset, 0.6*f.ri), text)
}

// angle draws a short arc between the radial edges, extended into the hollow
func (s Style) angle(f frame) Annotation {
	text := fmt.Sprintf("%.0f°", f.seg.AngleDegrees)
	a := s.concentric(FeatureAngle, f, f.ri, math.Max(f.ri-s.AngleInset, 0.35*f.ri), text)
	for i := range a.Lines {
		if a.Lines[i].Kind == KindExtension {
			a.Lines[i].Kind = KindCenterLine
		}
	}
	return a
}

// linear dimensions the distance from a to b with the dimension line moved
// offset along the unit normal n
func (s Style) linear(feature Feature, a, b, n vec.Vec2, offset float64, text string) Annotation {
	da := a.Add(n.Mul(offset))
	db := b.Add(n.Mul(offset))

	lines := []Line{
		{From: a.Add(n.Mul(s.Clearance)), To: a.Add(n.Mul(offset + s.Overshoot)), Kind: KindExtension},
		{From: b.Add(n.Mul(s.Clearance)), To: b.Add(n.Mul(offset + s.Overshoot)), Kind: KindExtension},
		{From: da, To: db, Kind: KindDimension},
	}
	if dir := unit(db.Sub(da)); dir != (vec.Vec2{}) {
		lines = append(lines, s.arrow(da, dir)...)
		lines = append(lines, s.arrow(db, dir.Mul(-1))...)
	}

	return Annotation{
		Feature: feature,
		Lines:   lines,
		Label:   s.label(text, da.Add(db).Mul(0.5), n),
	}
}

// concentric dimensions an arc of page radius r with a dimension arc of
// radius rd, spanning the full angle of the segment
func (s Style) concentric(feature Feature, f frame, r, rd float64, text string) Annotation {
	sign := 1.0
	if rd < r {
		sign = -1
	}
	var lines []Line
	for _, a := range []float64{0, f.theta} {
		from := f.at(r+sign*s.Clearance, a)
		to := f.at(math.Max(0, rd+sign*s.Overshoot), a)
		lines = append(lines, Line{From: from, To: to, Kind: KindExtension})
	}
	lines = append(lines, s.arrow(f.at(rd, 0), f.p.Direction(math.Pi/2))...)
	lines = append(lines, s.arrow(f.at(rd, f.theta), f.p.Direction(f.theta-math.Pi/2))...)

	return Annotation{
		Feature:   feature,
		Lines:     lines,
		Polylines: []Polyline{{Points: f.arc(rd, 0, f.theta), Kind: KindDimension}},
		Label:     s.label(text, f.at(rd, f.theta/2), f.p.Direction(f.theta/2).Mul(sign)),
	}
}

// label centres text next to at, pushed along n until its box clears at
func (s Style) label(text string, at, n vec.Vec2) Label {
	w := TextWidth(text, s.TextSize)
	d := math.Abs(n.X)*w/2 + math.Abs(n.Y)*s.TextSize/2 + 0.6
	return Label{Text: text, At: at.Add(n.Mul(d)), Size: s.TextSize}
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}
