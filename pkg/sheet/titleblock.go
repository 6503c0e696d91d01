package sheet

import "seehuhn.de/go/geom/vec"

// Disclaimer is printed along the bottom border of every sheet
const Disclaimer = "ALL DIMENSIONS TO BE VERIFIED ON SITE. " +
	"ALL CONSTRUCTION DRAWINGS AND DIVERSIONS FROM THE DESIGN TO BE APPROVED " +
	"BY THE CUSTOMER PRIOR TO CONSTRUCTION OR FABRICATION"

// DrawingTitle is the fixed drawing title of the title block
const DrawingTitle = "Ring Segments"

const ptToMM = 25.4 / 72

func drawFrame(s Surface, palette Palette) {
	s.SetStroke(palette.Frame, frameLine, false)
	s.Rect(OuterBorder, OuterBorder, PageWidth-2*OuterBorder, PageHeight-2*OuterBorder)
	s.SetStroke(palette.Frame, borderLine, false)
	s.Rect(InnerBorder, InnerBorder, PageWidth-2*InnerBorder, PageHeight-2*InnerBorder)
}

// drawTitleBlock draws the 150 x 30 mm block in the lower right corner:
// labels in the left half, company, drawing number and date in the right
func drawTitleBlock(s Surface, info ProjectInfo, opts Options) {
	x := PageWidth - TitleWidth - OuterBorder
	y := OuterBorder

	s.SetStroke(opts.Palette.Frame, borderLine, false)
	s.Rect(x, y, TitleWidth, TitleHeight)
	s.Line(vec.Vec2{X: x, Y: y + TitleHeight/2}, vec.Vec2{X: x + TitleWidth, Y: y + TitleHeight/2})
	s.Line(vec.Vec2{X: x + TitleWidth/2, Y: y}, vec.Vec2{X: x + TitleWidth/2, Y: y + TitleHeight})

	s.SetTextColor(opts.Palette.Text)

	bold := 8 * ptToMM
	for _, c := range []struct {
		dx, dy float64
		text   string
	}{
		{5, 25, "Order Nr"},
		{5, 20, "Customer Name"},
		{5, 10, "Drawing Title"},
		{5, 5, "Project Name"},
		{80, 25, info.Company},
		{80, 10, "Drawing Number"},
		{80, 5, opts.Now.Format("02/01/2006")},
	} {
		s.Text(vec.Vec2{X: x + c.dx, Y: y + c.dy}, c.text, bold, true)
	}

	regular := 10 * ptToMM
	for _, c := range []struct {
		dy   float64
		text string
	}{
		{25, info.OrderNumber},
		{20, info.Customer},
		{10, DrawingTitle},
		{5, info.Project},
	} {
		s.Text(vec.Vec2{X: x + 30, Y: y + c.dy}, c.text, regular, false)
	}

	s.Text(vec.Vec2{X: InnerBorder + 3, Y: InnerBorder + 3}, Disclaimer, 6*ptToMM, false)
}
