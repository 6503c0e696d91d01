package dxf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/ringseg/pkg/geometry"
)

// Arc is an ARC entity read from a drawing
type Arc struct {
	Layer      string
	CenterX    float64
	CenterY    float64
	Radius     float64
	StartAngle float64 // degrees
	EndAngle   float64 // degrees
}

// Line is a LINE entity read from a drawing
type Line struct {
	Layer          string
	X1, Y1, X2, Y2 float64
}

// Drawing is the subset of a DXF file this package understands
type Drawing struct {
	Header map[string]string // header variable -> first value
	Layers []string
	Arcs   []Arc
	Lines  []Line
}

// Units returns the $INSUNITS header value, or 0 when it is missing
func (d *Drawing) Units() int {
	v, _ := strconv.Atoi(d.Header["$INSUNITS"])
	return v
}

// Parse reads a DXF file from disk
func Parse(filename string) (*Drawing, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses an ASCII DXF stream. Entities other than ARC and LINE are skipped.
func Read(r io.Reader) (*Drawing, error) {
	scanner := bufio.NewScanner(r)
	d := &Drawing{Header: make(map[string]string)}

	var (
		section  string
		entity   string
		variable string
		arc      Arc
		line     Line
	)

	flush := func() {
		switch entity {
		case "ARC":
			d.Arcs = append(d.Arcs, arc)
		case "LINE":
			d.Lines = append(d.Lines, line)
		}
		arc, line = Arc{}, Line{}
	}

	for scanner.Scan() {
		code, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, fmt.Errorf("invalid group code %q: %w", scanner.Text(), err)
		}
		if !scanner.Scan() {
			return nil, fmt.Errorf("group code %d has no value", code)
		}
		value := strings.TrimSpace(scanner.Text())

		if code == 0 {
			flush()
			entity = value
			if value == "EOF" {
				break
			}
			continue
		}

		switch {
		case entity == "SECTION" && code == 2:
			section = value

		case section == "HEADER" && code == 9:
			variable = value

		case section == "HEADER" && variable != "":
			if _, ok := d.Header[variable]; !ok {
				d.Header[variable] = value
			}

		case entity == "LAYER" && code == 2:
			d.Layers = append(d.Layers, value)

		case entity == "ARC":
			if err := arc.set(code, value); err != nil {
				return nil, err
			}

		case entity == "LINE":
			if err := line.set(code, value); err != nil {
				return nil, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dxf: %w", err)
	}
	flush()

	return d, nil
}

func (a *Arc) set(code int, value string) error {
	if code == 8 {
		a.Layer = value
		return nil
	}
	target := map[int]*float64{
		10: &a.CenterX, 20: &a.CenterY, 40: &a.Radius, 50: &a.StartAngle, 51: &a.EndAngle,
	}[code]
	return parseInto(target, code, value)
}

func (l *Line) set(code int, value string) error {
	if code == 8 {
		l.Layer = value
		return nil
	}
	target := map[int]*float64{
		10: &l.X1, 20: &l.Y1, 11: &l.X2, 21: &l.Y2,
	}[code]
	return parseInto(target, code, value)
}

func parseInto(target *float64, code int, value string) error {
	if target == nil {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q for group code %d: %w", value, code, err)
	}
	*target = v
	return nil
}

// ErrNotASegment is returned when a drawing does not describe a ring segment
var ErrNotASegment = errors.New("drawing is not a ring segment")

// Segment reconstructs the ring segment described by a drawing made of two
// concentric arcs sharing their start and end angles
func (d *Drawing) Segment() (geometry.Segment, error) {
	if len(d.Arcs) != 2 {
		return geometry.Segment{}, fmt.Errorf("%w: expected 2 arcs, found %d", ErrNotASegment, len(d.Arcs))
	}
	inner, outer := d.Arcs[0], d.Arcs[1]
	if inner.Radius > outer.Radius {
		inner, outer = outer, inner
	}

	const tol = 1e-6
	if math.Abs(inner.CenterX-outer.CenterX) > tol || math.Abs(inner.CenterY-outer.CenterY) > tol {
		return geometry.Segment{}, fmt.Errorf("%w: arcs are not concentric", ErrNotASegment)
	}
	if math.Abs(inner.StartAngle-outer.StartAngle) > tol || math.Abs(inner.EndAngle-outer.EndAngle) > tol {
		return geometry.Segment{}, fmt.Errorf("%w: arcs span different angles", ErrNotASegment)
	}

	// Arcs run counter-clockwise, so an end angle at or below the start wraps
	sweep := outer.EndAngle - outer.StartAngle
	if sweep <= 0 {
		sweep += 360
	}
	return geometry.Solve(geometry.Spec{
		InnerRadius:  geometry.Given(inner.Radius),
		OuterRadius:  geometry.Given(outer.Radius),
		AngleDegrees: geometry.Given(sweep),
	})
}
