package sheet

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/vec"
)

// Surface is a drawing target in page millimetres with the origin at the
// lower-left corner and Y pointing up
type Surface interface {
	SetStroke(c colorful.Color, width float64, dashed bool)
	SetFill(c colorful.Color)
	SetTextColor(c colorful.Color)

	Line(from, to vec.Vec2)
	Polyline(points []vec.Vec2)
	Polygon(points []vec.Vec2, fill bool)
	Rect(x, y, w, h float64)

	// Text draws text with its baseline starting at at; size is the font
	// height in millimetres
	Text(at vec.Vec2, text string, size float64, bold bool)
}

// PDF is a Surface backed by an fpdf document holding one page
type PDF struct {
	doc       *fpdf.Fpdf
	translate func(string) string
	height    float64
}

const font = "Helvetica"

// NewPDF starts an A3 landscape document
func NewPDF(now time.Time) *PDF {
	doc := fpdf.New("L", "mm", "A3", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)
	doc.SetCreator("ringseg", false)
	doc.SetTitle("Ring Segments", false)
	doc.SetCreationDate(now)
	doc.SetModificationDate(now)
	doc.AddPage()
	doc.SetFont(font, "", 8)

	_, height := doc.GetPageSize()
	return &PDF{
		doc:       doc,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
		height:    height,
	}
}

func (p *PDF) y(y float64) float64 {
	return p.height - y
}

func (p *PDF) SetStroke(c colorful.Color, width float64, dashed bool) {
	r, g, b := c.RGB255()
	p.doc.SetDrawColor(int(r), int(g), int(b))
	p.doc.SetLineWidth(width)
	if dashed {
		p.doc.SetDashPattern([]float64{2, 1.2}, 0)
	} else {
		p.doc.SetDashPattern(nil, 0)
	}
}

func (p *PDF) SetFill(c colorful.Color) {
	r, g, b := c.RGB255()
	p.doc.SetFillColor(int(r), int(g), int(b))
}

func (p *PDF) SetTextColor(c colorful.Color) {
	r, g, b := c.RGB255()
	p.doc.SetTextColor(int(r), int(g), int(b))
}

func (p *PDF) Line(from, to vec.Vec2) {
	p.doc.Line(from.X, p.y(from.Y), to.X, p.y(to.Y))
}

func (p *PDF) Polyline(points []vec.Vec2) {
	if len(points) < 2 {
		return
	}
	p.doc.MoveTo(points[0].X, p.y(points[0].Y))
	for _, pt := range points[1:] {
		p.doc.LineTo(pt.X, p.y(pt.Y))
	}
	p.doc.DrawPath("D")
}

func (p *PDF) Polygon(points []vec.Vec2, fill bool) {
	pts := make([]fpdf.PointType, len(points))
	for i, pt := range points {
		pts[i] = fpdf.PointType{X: pt.X, Y: p.y(pt.Y)}
	}
	style := "D"
	if fill {
		style = "FD"
	}
	p.doc.Polygon(pts, style)
}

func (p *PDF) Rect(x, y, w, h float64) {
	p.doc.Rect(x, p.y(y+h), w, h, "D")
}

func (p *PDF) Text(at vec.Vec2, text string, size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	p.doc.SetFont(font, style, 0)
	p.doc.SetFontUnitSize(size)
	p.doc.Text(at.X, p.y(at.Y), p.translate(text))
}

// Output writes the finished document to w
func (p *PDF) Output(w io.Writer) error {
	return p.doc.Output(w)
}

// Err returns the first error recorded while drawing
func (p *PDF) Err() error {
	return p.doc.Error()
}
