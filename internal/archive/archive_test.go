package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/philipparndt/ringseg/pkg/export"
	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 5, 0, time.UTC)

func readZip(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string][]byte)
	var names []string
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = content
		names = append(names, f.Name)
	}
	assert.IsIncreasing(t, names, "entries are sorted")
	return files
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "ring_segments_20261015_093005.zip", FileName(testNow))
	assert.Equal(t, "technical_drawing_20261015_093005.pdf", PDFName(testNow))
}

func TestWriteArtifacts(t *testing.T) {
	a := export.Artifacts{
		DXF: map[string][]byte{
			"Type-B.dxf": []byte("b"),
			"Type-A.dxf": []byte("a"),
		},
		PDF: []byte("%PDF-1.3"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteArtifacts(&buf, a, testNow))

	files := readZip(t, buf.Bytes())
	assert.Equal(t, map[string][]byte{
		"Type-A.dxf":                            []byte("a"),
		"Type-B.dxf":                            []byte("b"),
		"technical_drawing_20261015_093005.pdf": []byte("%PDF-1.3"),
	}, files)
}

func TestWriteIsDeterministic(t *testing.T) {
	files := map[string][]byte{"x.dxf": []byte("1"), "y.dxf": []byte("2"), "z.dxf": []byte("3")}

	var first, second bytes.Buffer
	require.NoError(t, Write(&first, files, testNow))
	require.NoError(t, Write(&second, files, testNow))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteWithoutPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArtifacts(&buf, export.Artifacts{DXF: map[string][]byte{"a.dxf": nil}}, testNow))
	files := readZip(t, buf.Bytes())
	assert.Len(t, files, 1)
	assert.Contains(t, files, "a.dxf")
}

func TestWriteRejectsEscapingNames(t *testing.T) {
	for _, name := range []string{"../escape.dxf", "/abs.dxf", `dir\a.dxf`, "a/../../b.dxf", "."} {
		var buf bytes.Buffer
		err := Write(&buf, map[string][]byte{name: []byte("x")}, testNow)
		assert.ErrorIs(t, err, geometry.ErrInvalidInput, name)
		assert.Zero(t, buf.Len(), "nothing is written for %q", name)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteSinkError(t *testing.T) {
	err := Write(failingWriter{}, map[string][]byte{"a.dxf": bytes.Repeat([]byte("x"), 1<<16)}, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
