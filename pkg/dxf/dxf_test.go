package dxf

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/ringseg/pkg/geometry"
)

func scenarioA(t *testing.T) geometry.Segment {
	t.Helper()
	seg, err := geometry.Solve(geometry.Spec{
		InnerRadius:  geometry.Given(1000),
		OuterRadius:  geometry.Given(1200),
		AngleDegrees: geometry.Given(30),
	})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	return seg
}

func TestEncodeEntities(t *testing.T) {
	data, err := Encode(scenarioA(t))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	text := string(data)
	if !strings.HasSuffix(text, "  0\nEOF\n") {
		t.Errorf("Encode failed: drawing does not end with EOF")
	}

	counts := map[string]int{}
	lines := strings.Split(text, "\n")
	for i := 0; i+1 < len(lines); i += 2 {
		if strings.TrimSpace(lines[i]) == "0" {
			counts[lines[i+1]]++
		}
	}
	if counts["ARC"] != 2 {
		t.Errorf("ARC count failed: expected 2, got %d", counts["ARC"])
	}
	if counts["LINE"] != 2 {
		t.Errorf("LINE count failed: expected 2, got %d", counts["LINE"])
	}
	if counts["POLYLINE"] != 0 || counts["LWPOLYLINE"] != 0 {
		t.Errorf("Encode failed: drawing must not contain tessellated outlines")
	}
}

func TestEncodeStaysR12(t *testing.T) {
	data, err := Encode(scenarioA(t))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var vars []string
	lines := strings.Split(string(data), "\n")
	for i := 0; i+1 < len(lines); i += 2 {
		switch strings.TrimSpace(lines[i]) {
		case "9":
			vars = append(vars, lines[i+1])
		case "5", "100", "330":
			t.Errorf("Encode failed: group code %s is not part of an R12 drawing", strings.TrimSpace(lines[i]))
		}
	}
	expected := []string{"$ACADVER", "$INSUNITS", "$MEASUREMENT"}
	if strings.Join(vars, ",") != strings.Join(expected, ",") {
		t.Errorf("header failed: expected %v, got %v", expected, vars)
	}
}

func TestReadBack(t *testing.T) {
	seg := scenarioA(t)
	data, err := Encode(seg)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	d, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if d.Units() != 4 {
		t.Errorf("$INSUNITS failed: expected 4, got %d", d.Units())
	}
	if d.Header["$MEASUREMENT"] != "1" {
		t.Errorf("$MEASUREMENT failed: expected 1, got %q", d.Header["$MEASUREMENT"])
	}
	if d.Header["$ACADVER"] != Version {
		t.Errorf("$ACADVER failed: expected %s, got %q", Version, d.Header["$ACADVER"])
	}
	if len(d.Layers) != 1 || d.Layers[0] != Layer {
		t.Errorf("layers failed: expected [%s], got %v", Layer, d.Layers)
	}

	radii := []float64{1000, 1200}
	for i, a := range d.Arcs {
		if a.Layer != Layer {
			t.Errorf("arc %d layer failed: expected %s, got %s", i, Layer, a.Layer)
		}
		if a.CenterX != 0 || a.CenterY != 0 {
			t.Errorf("arc %d centre failed: expected origin, got (%v, %v)", i, a.CenterX, a.CenterY)
		}
		if a.Radius != radii[i] {
			t.Errorf("arc %d radius failed: expected %v, got %v", i, radii[i], a.Radius)
		}
		if a.StartAngle != 0 || math.Abs(a.EndAngle-30) > 1e-6 {
			t.Errorf("arc %d angles failed: expected 0..30, got %v..%v", i, a.StartAngle, a.EndAngle)
		}
	}

	// Radial edges join the arc ends
	c := geometry.Corners(seg)
	edges := [][4]float64{
		{c[0].X, c[0].Y, c[1].X, c[1].Y},
		{c[3].X, c[3].Y, c[2].X, c[2].Y},
	}
	for i, l := range d.Lines {
		got := [4]float64{l.X1, l.Y1, l.X2, l.Y2}
		for j := range got {
			if math.Abs(got[j]-edges[i][j]) > 1e-6 {
				t.Errorf("line %d failed: expected %v, got %v", i, edges[i], got)
				break
			}
		}
	}

	back, err := d.Segment()
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if math.Abs(back.OuterChordLength-seg.OuterChordLength) > 1e-4 {
		t.Errorf("Segment failed: expected chord %v, got %v", seg.OuterChordLength, back.OuterChordLength)
	}
}

func TestSegmentSweep(t *testing.T) {
	for _, degrees := range []float64{30, 180, 360, 400} {
		data, err := Encode(geometry.NewSegment(1000, 1200, degrees*math.Pi/180))
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		d, err := Read(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		back, err := d.Segment()
		if err != nil {
			t.Fatalf("Segment failed: %v", err)
		}
		if math.Abs(back.AngleDegrees-degrees) > 1e-6 {
			t.Errorf("Segment failed: expected %v°, got %v°", degrees, back.AngleDegrees)
		}
	}

	// An arc crossing the zero direction ends below its start angle
	d := &Drawing{Arcs: []Arc{
		{Layer: Layer, Radius: 1000, StartAngle: 350, EndAngle: 20},
		{Layer: Layer, Radius: 1200, StartAngle: 350, EndAngle: 20},
	}}
	back, err := d.Segment()
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if math.Abs(back.AngleDegrees-30) > 1e-9 {
		t.Errorf("Segment failed: expected 30°, got %v°", back.AngleDegrees)
	}
}

func TestParseFile(t *testing.T) {
	seg := scenarioA(t)
	path := filepath.Join(t.TempDir(), "Type-A.dxf")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := Write(f, seg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	f.Close()

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(d.Arcs) != 2 || len(d.Lines) != 2 {
		t.Errorf("Parse failed: expected 2 arcs and 2 lines, got %d and %d", len(d.Arcs), len(d.Lines))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritePropagatesSinkError(t *testing.T) {
	err := Write(failingWriter{}, scenarioA(t))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Write failed: expected sink error, got %v", err)
	}
}

func TestSegmentRejectsOtherDrawings(t *testing.T) {
	input := "  0\nSECTION\n  2\nENTITIES\n  0\nARC\n 10\n0\n 20\n0\n 40\n5\n 50\n0\n 51\n90\n  0\nENDSEC\n  0\nEOF\n"
	d, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if _, err := d.Segment(); !errors.Is(err, ErrNotASegment) {
		t.Errorf("Segment failed: expected ErrNotASegment, got %v", err)
	}
}

func TestReadInvalidGroupCode(t *testing.T) {
	if _, err := Read(strings.NewReader("abc\nSECTION\n")); err == nil {
		t.Errorf("Read failed: expected error for invalid group code")
	}
}
