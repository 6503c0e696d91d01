// Package sheet draws the dimensioned approval sheet for a batch of ring
// segment units: an A3 landscape page with a title block and every unit
// normalized into its own cell.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/ringseg/pkg/annotate"
	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/layout"
	"seehuhn.de/go/geom/vec"
)

// Page geometry in millimetres
const (
	PageWidth   = 420.0
	PageHeight  = 297.0
	Margin      = 20.0
	OuterBorder = 10.0
	InnerBorder = 12.0
	TitleWidth  = 150.0
	TitleHeight = 30.0
)

// Line widths in millimetres
const (
	frameLine     = 0.7
	borderLine    = 0.35
	outlineLine   = 0.35
	dimensionLine = 0.18
)

// ErrNothingToRender is returned for an empty batch
var ErrNothingToRender = errors.New("nothing to render")

// Options controls how a sheet is drawn
type Options struct {
	Now     time.Time // Date printed in the title block and stored in the document
	Style   annotate.Style
	Outline geometry.OutlineOptions
	Palette Palette
}

// DefaultOptions returns the standard sheet options dated now
func DefaultOptions(now time.Time) Options {
	return Options{
		Now:     now,
		Style:   annotate.DefaultStyle(),
		Outline: geometry.DefaultOutlineOptions(),
		Palette: DefaultPalette(),
	}
}

// DrawingArea returns the part of the page available to units, above the
// title block band
func DrawingArea() layout.Rect {
	return layout.Rect{
		LLx: Margin,
		LLy: Margin + TitleHeight,
		URx: PageWidth - Margin,
		URy: PageHeight - Margin,
	}
}

// Render writes a one-page PDF showing every unit in submission order
func Render(w io.Writer, units []geometry.Unit, info ProjectInfo, opts Options) error {
	doc := NewPDF(opts.Now)
	if err := Draw(doc, units, info, opts); err != nil {
		return err
	}
	if err := doc.Err(); err != nil {
		return fmt.Errorf("failed to draw sheet: %w", err)
	}
	return doc.Output(w)
}

// Draw paints the frame, the title block and all units onto s
func Draw(s Surface, units []geometry.Unit, info ProjectInfo, opts Options) error {
	plan, ok := layout.Plan(len(units), DrawingArea())
	if !ok {
		return ErrNothingToRender
	}

	drawFrame(s, opts.Palette)
	drawTitleBlock(s, info.WithDefaults(opts.Now), opts)

	for i, u := range units {
		cell := plan.Cells[i]
		p, style := annotate.Fit(u.Segment, cell, u.ID, opts.Style, opts.Outline)
		drawUnit(s, u, p, style, opts, opts.Palette.Shade(i, len(units)))
	}
	return nil
}

func drawUnit(s Surface, u geometry.Unit, p layout.Placement, style annotate.Style, opts Options, fill colorful.Color) {
	outline := p.ApplyAll(geometry.BuildOutline(u.Segment, opts.Outline))
	s.SetFill(fill)
	s.SetStroke(opts.Palette.Outline, outlineLine, false)
	s.Polygon(outline, true)

	s.SetTextColor(opts.Palette.Dimension)
	for _, a := range annotate.Annotate(u.Segment, p, style) {
		drawAnnotation(s, a, opts.Palette)
	}

	s.SetTextColor(opts.Palette.Text)
	drawLabel(s, annotate.UnitLabel(u.Segment, p, u.ID, style).Label)
}

func drawAnnotation(s Surface, a annotate.Annotation, palette Palette) {
	for _, l := range a.Lines {
		s.SetStroke(palette.Dimension, dimensionLine, l.Kind == annotate.KindCenterLine)
		s.Line(l.From, l.To)
	}
	s.SetStroke(palette.Dimension, dimensionLine, false)
	for _, pl := range a.Polylines {
		s.Polyline(pl.Points)
	}
	drawLabel(s, a.Label)
}

// drawLabel converts a centred label to a baseline position
func drawLabel(s Surface, l annotate.Label) {
	at := vec.Vec2{X: l.At.X - l.Width()/2, Y: l.At.Y - 0.35*l.Size}
	s.Text(at, l.Text, l.Size, l.Bold)
}
