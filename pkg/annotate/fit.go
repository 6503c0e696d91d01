package annotate

import (
	"math"

	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/layout"
	"seehuhn.de/go/geom/vec"
)

// ReferenceCell is the cell size in millimetres from which the style is used
// unchanged. Smaller cells scale their dimensions down with them.
const ReferenceCell = 90.0

const (
	minFitScale = 0.05 // Smallest fraction of the normalized scale Fit will try
	fitSteps    = 24
)

// Scaled returns s with every distance and text size multiplied by f.
// Angles are unchanged.
func (s Style) Scaled(f float64) Style {
	s.Clearance *= f
	s.Overshoot *= f
	s.ArcOffset *= f
	s.ChordOffset *= f
	s.DepthOffset *= f
	s.AngleInset *= f
	s.LeaderLength *= f
	s.ArrowLength *= f
	s.TextSize *= f
	s.IDTextSize *= f
	return s
}

// Extent returns the page-space bounding box of everything drawn for a
// unit: its outline, its dimensions and its identifier label
func Extent(seg geometry.Segment, p layout.Placement, id string, style Style, outline geometry.OutlineOptions) geometry.BoundingBox {
	b := geometry.BoundsOf(p.ApplyAll(geometry.BuildOutline(seg, outline)))
	for _, a := range append(Annotate(seg, p, style), UnitLabel(seg, p, id, style)) {
		for _, l := range a.Lines {
			b.Extend(l.From)
			b.Extend(l.To)
		}
		for _, pl := range a.Polylines {
			for _, pt := range pl.Points {
				b.Extend(pt)
			}
		}
		if a.Label.Text != "" {
			extendLabel(&b, a.Label)
		}
	}
	return b
}

// extendLabel adds the box of a centred label; the height allows for
// descenders below the baseline
func extendLabel(b *geometry.BoundingBox, l Label) {
	half := vec.Vec2{X: l.Width() / 2, Y: 0.6 * l.Size}
	b.Extend(l.At.Sub(half))
	b.Extend(l.At.Add(half))
}

// Fit places seg in cell together with its dimensions. The style is scaled
// down for cells smaller than ReferenceCell, then the segment is shrunk
// from its normalized size until everything Extent covers lies inside
// cell.Bounds. The returned style is the one to draw with.
func Fit(seg geometry.Segment, cell layout.Cell, id string, style Style, outline geometry.OutlineOptions) (layout.Placement, Style) {
	style = style.Scaled(math.Min(1, cell.MaxSize/ReferenceCell))
	base := layout.Normalize(seg, cell.Target(), cell.Center)
	if base.Scale == 0 {
		return base, style
	}
	mid := layout.RotatedBounds(seg, base.Rotation).Center()
	bounds := cell.Bounds

	place := func(scale float64) (layout.Placement, bool) {
		p := base
		p.Scale = scale
		p.Translation = cell.Center.Sub(mid.Mul(scale))

		ext := Extent(seg, p, id, style, outline)
		shift := bounds.Center().Sub(ext.Center())
		p.Translation = p.Translation.Add(shift)
		p.Center = cell.Center.Add(shift)
		return p, ext.Width() <= bounds.Width() && ext.Height() <= bounds.Height()
	}

	if p, ok := place(base.Scale); ok {
		return p, style
	}
	lo, hi := minFitScale*base.Scale, base.Scale
	best, _ := place(lo)
	for range fitSteps {
		scale := (lo + hi) / 2
		if p, ok := place(scale); ok {
			best, lo = p, scale
		} else {
			hi = scale
		}
	}
	return best, style
}
