// Package dxf writes and reads the ASCII DXF drawings used to hand ring
// segments to CAM tooling. Arcs are written as native ARC entities so the
// receiving software sees true circular geometry.
package dxf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/philipparndt/ringseg/pkg/geometry"
)

const (
	// Layer holds every entity of a segment drawing
	Layer = "SEGMENT"

	// Version is the AutoCAD release tag written to $ACADVER (R12). The
	// entities carry no handles or subclass markers, which R12 allows.
	// $INSUNITS and $MEASUREMENT were added in later releases; R12 readers
	// skip unknown header variables and newer readers take the units from them.
	Version = "AC1009"

	unitsMillimetres = 4
	measureMetric    = 1
)

// writer emits group code / value pairs and keeps the first error
type writer struct {
	w   *bufio.Writer
	err error
}

func (w *writer) pair(code int, value string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, "%3d\n%s\n", code, value)
}

func (w *writer) str(code int, value string) {
	w.pair(code, value)
}

func (w *writer) num(code int, value float64) {
	w.pair(code, strconv.FormatFloat(value, 'f', 6, 64))
}

func (w *writer) integer(code int, value int) {
	w.pair(code, strconv.Itoa(value))
}

// Write encodes the outline of seg as a DXF drawing in millimetres: the
// inner and outer arcs centred on the origin from 0° to the segment angle,
// and the two radial edges joining their ends.
func Write(out io.Writer, seg geometry.Segment) error {
	w := &writer{w: bufio.NewWriter(out)}

	w.header()
	w.tables()

	w.str(0, "SECTION")
	w.str(2, "ENTITIES")
	w.arc(seg.InnerRadius, seg.AngleDegrees)
	w.arc(seg.OuterRadius, seg.AngleDegrees)

	c := geometry.Corners(seg)
	w.line(c[0].X, c[0].Y, c[1].X, c[1].Y)
	w.line(c[3].X, c[3].Y, c[2].X, c[2].Y)
	w.str(0, "ENDSEC")

	w.str(0, "EOF")

	if w.err != nil {
		return fmt.Errorf("failed to write dxf: %w", w.err)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to write dxf: %w", err)
	}
	return nil
}

// Encode returns the DXF drawing of seg as bytes
func Encode(seg geometry.Segment) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, seg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *writer) header() {
	w.str(0, "SECTION")
	w.str(2, "HEADER")
	w.str(9, "$ACADVER")
	w.str(1, Version)
	w.str(9, "$INSUNITS")
	w.integer(70, unitsMillimetres)
	w.str(9, "$MEASUREMENT")
	w.integer(70, measureMetric)
	w.str(0, "ENDSEC")
}

func (w *writer) tables() {
	w.str(0, "SECTION")
	w.str(2, "TABLES")
	w.str(0, "TABLE")
	w.str(2, "LAYER")
	w.integer(70, 1)
	w.str(0, "LAYER")
	w.str(2, Layer)
	w.integer(70, 0)
	w.integer(62, 7)
	w.str(6, "CONTINUOUS")
	w.str(0, "ENDTAB")
	w.str(0, "ENDSEC")
}

func (w *writer) arc(radius, endDegrees float64) {
	w.str(0, "ARC")
	w.str(8, Layer)
	w.num(10, 0)
	w.num(20, 0)
	w.num(30, 0)
	w.num(40, radius)
	w.num(50, 0)
	w.num(51, endDegrees)
}

func (w *writer) line(x1, y1, x2, y2 float64) {
	w.str(0, "LINE")
	w.str(8, Layer)
	w.num(10, x1)
	w.num(20, y1)
	w.num(30, 0)
	w.num(11, x2)
	w.num(21, y2)
	w.num(31, 0)
}
