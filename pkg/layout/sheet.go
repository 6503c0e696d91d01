package layout

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Rect is an axis-aligned rectangle in page space, Y pointing up
type Rect struct {
	LLx, LLy float64 // lower-left corner
	URx, URy float64 // upper-right corner
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.URx - r.LLx
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.URy - r.LLy
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() vec.Vec2 {
	return vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
}

// Area returns Width * Height
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Intersect returns the overlap of two rectangles; the result has zero area
// when they do not overlap
func (r Rect) Intersect(o Rect) Rect {
	res := Rect{
		LLx: math.Max(r.LLx, o.LLx),
		LLy: math.Max(r.LLy, o.LLy),
		URx: math.Min(r.URx, o.URx),
		URy: math.Min(r.URy, o.URy),
	}
	if res.URx < res.LLx {
		res.URx = res.LLx
	}
	if res.URy < res.LLy {
		res.URy = res.LLy
	}
	return res
}

// Strategy names the arrangement chosen for a unit count
type Strategy string

// Layout strategies, one per unit-count bracket
const (
	StrategySingle   Strategy = "single"
	StrategyPair     Strategy = "pair"
	StrategyTriangle Strategy = "triangle"
	StrategyGrid2x2  Strategy = "grid-2x2"
	StrategyGrid3x2  Strategy = "grid-3x2"
	StrategyGrid3x3  Strategy = "grid-3x3"
	StrategyDense    Strategy = "dense"
)

const (
	// CellFill is the share of the smaller cell side a unit may use
	CellFill = 0.9
	// DenseShrink leaves gutters between cells when more than nine units share a sheet
	DenseShrink = 0.85
	// DenseMaxColumns caps the number of columns of the dense layout
	DenseMaxColumns = 4
)

// Cell is the region reserved for one unit on the sheet
type Cell struct {
	Index   int      // Position of the unit in submission order
	Bounds  Rect     // Region of the sheet owned by this cell
	Center  vec.Vec2 // Placement centre
	MaxSize float64  // Largest allowed size of the drawn unit
}

// Target returns the square target box used to normalize a unit in this cell
func (c Cell) Target() vec.Vec2 {
	return vec.Vec2{X: c.MaxSize, Y: c.MaxSize}
}

// Layout is the result of planning a sheet
type Layout struct {
	Strategy Strategy
	Cols     int
	Rows     int
	Cells    []Cell // One cell per unit, in submission order
}

// Plan partitions the drawing surface into one cell per unit.
// It returns false when count is zero and there is nothing to render.
//
// Small counts use hand-tuned arrangements; grids are filled row-major,
// left to right and top to bottom.
func Plan(count int, surface Rect) (Layout, bool) {
	if count <= 0 {
		return Layout{}, false
	}

	switch {
	case count == 1:
		return Layout{
			Strategy: StrategySingle,
			Cols:     1,
			Rows:     1,
			Cells: []Cell{{
				Index:   0,
				Bounds:  surface,
				Center:  surface.Center(),
				MaxSize: CellFill * math.Min(surface.Width(), surface.Height()),
			}},
		}, true
	case count == 2:
		return grid(StrategyPair, count, 2, 1, surface, 1), true
	case count == 3:
		return triangle(surface), true
	case count == 4:
		return grid(StrategyGrid2x2, count, 2, 2, surface, 1), true
	case count <= 6:
		return grid(StrategyGrid3x2, count, 3, 2, surface, 1), true
	case count <= 9:
		return grid(StrategyGrid3x3, count, 3, 3, surface, 1), true
	default:
		cols := min(DenseMaxColumns, int(math.Ceil(math.Sqrt(float64(count)*1.3))))
		rows := (count + cols - 1) / cols
		return grid(StrategyDense, count, cols, rows, surface, DenseShrink), true
	}
}

// grid fills count cells of a cols x rows grid in row-major order; trailing
// cells stay blank
func grid(strategy Strategy, count, cols, rows int, surface Rect, shrink float64) Layout {
	cellW := surface.Width() / float64(cols)
	cellH := surface.Height() / float64(rows)

	cells := make([]Cell, count)
	for idx := range cells {
		row := idx / cols
		col := idx % cols

		bounds := Rect{
			LLx: surface.LLx + float64(col)*cellW,
			URx: surface.LLx + float64(col+1)*cellW,
			URy: surface.URy - float64(row)*cellH,
			LLy: surface.URy - float64(row+1)*cellH,
		}
		cells[idx] = Cell{
			Index:   idx,
			Bounds:  bounds,
			Center:  bounds.Center(),
			MaxSize: CellFill * math.Min(cellW, cellH) * shrink,
		}
	}

	return Layout{Strategy: strategy, Cols: cols, Rows: rows, Cells: cells}
}

// triangle puts two cells in the upper half and one centred in the lower half
func triangle(surface Rect) Layout {
	midX := surface.Center().X
	midY := surface.Center().Y

	bounds := []Rect{
		{LLx: surface.LLx, LLy: midY, URx: midX, URy: surface.URy},
		{LLx: midX, LLy: midY, URx: surface.URx, URy: surface.URy},
		{LLx: surface.LLx, LLy: surface.LLy, URx: surface.URx, URy: midY},
	}

	cells := make([]Cell, len(bounds))
	for idx, b := range bounds {
		cells[idx] = Cell{
			Index:   idx,
			Bounds:  b,
			Center:  b.Center(),
			MaxSize: CellFill * math.Min(b.Width(), b.Height()),
		}
	}
	return Layout{Strategy: StrategyTriangle, Cols: 2, Rows: 2, Cells: cells}
}
