// Package archive bundles export artifacts into a single ZIP download.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/philipparndt/ringseg/pkg/export"
	"github.com/philipparndt/ringseg/pkg/geometry"
)

// FileName returns the archive name for an export made at now
func FileName(now time.Time) string {
	return "ring_segments_" + now.Format("20060102_150405") + ".zip"
}

// PDFName returns the drawing name used inside archives and by the CLI
func PDFName(now time.Time) string {
	return "technical_drawing_" + now.Format("20060102_150405") + ".pdf"
}

// Write stores files in a ZIP archive, sorted by name and stamped with
// now so identical inputs produce identical archives. Names must be
// relative slash-separated paths without parent references.
func Write(w io.Writer, files map[string][]byte, now time.Time) error {
	names := make([]string, 0, len(files))
	for name := range files {
		if !fs.ValidPath(name) || name == "." || strings.Contains(name, `\`) {
			return fmt.Errorf("%w: archive entry %q is not a relative path", geometry.ErrInvalidInput, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	zw := zip.NewWriter(w)
	for _, name := range names {
		header := &zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: now,
		}
		f, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", name, err)
		}
		if _, err := f.Write(files[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	return nil
}

// WriteArtifacts archives every DXF file and the drawing of an export
func WriteArtifacts(w io.Writer, a export.Artifacts, now time.Time) error {
	files := make(map[string][]byte, len(a.DXF)+1)
	for name, data := range a.DXF {
		files[name] = data
	}
	if a.PDF != nil {
		files[PDFName(now)] = a.PDF
	}
	return Write(w, files, now)
}
