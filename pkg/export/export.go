// Package export turns a batch of units into artifact bytes. It never
// touches the filesystem; callers decide how the bytes are stored.
package export

import (
	"bytes"
	"fmt"

	"github.com/philipparndt/ringseg/pkg/dxf"
	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/sheet"
	"golang.org/x/sync/errgroup"
)

// ErrNothingToRender is returned by PDF and Bundle for an empty batch
var ErrNothingToRender = sheet.ErrNothingToRender

// Artifacts holds everything produced for one batch
type Artifacts struct {
	DXF map[string][]byte // keyed by file name, {id}.dxf
	PDF []byte
}

// FileName returns the DXF file name of a unit
func FileName(u geometry.Unit) string {
	return u.ID + ".dxf"
}

// DXFFiles encodes every unit as DXF. Units are encoded concurrently but
// collected in submission order, so a later unit with a duplicate id
// replaces the earlier one.
func DXFFiles(units []geometry.Unit) (map[string][]byte, error) {
	encoded := make([][]byte, len(units))

	var g errgroup.Group
	for i, u := range units {
		g.Go(func() error {
			data, err := dxf.Encode(u.Segment)
			if err != nil {
				return fmt.Errorf("unit %d (%s): %w", i+1, u.ID, err)
			}
			encoded[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(units))
	for i, u := range units {
		files[FileName(u)] = encoded[i]
	}
	return files, nil
}

// PDF renders the approval sheet for the batch
func PDF(units []geometry.Unit, info sheet.ProjectInfo, opts sheet.Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := sheet.Render(&buf, units, info, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Bundle produces the DXF files and the sheet of a batch
func Bundle(units []geometry.Unit, info sheet.ProjectInfo, opts sheet.Options) (Artifacts, error) {
	var (
		g     errgroup.Group
		files map[string][]byte
		pdf   []byte
	)
	g.Go(func() (err error) {
		files, err = DXFFiles(units)
		return err
	})
	g.Go(func() (err error) {
		pdf, err = PDF(units, info, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return Artifacts{}, err
	}
	return Artifacts{DXF: files, PDF: pdf}, nil
}

// DuplicateIDs returns the ids used by more than one unit, in order of
// their first repetition. Their DXF files overwrite each other.
func DuplicateIDs(units []geometry.Unit) []string {
	seen := make(map[string]int, len(units))
	var dups []string
	for _, u := range units {
		seen[u.ID]++
		if seen[u.ID] == 2 {
			dups = append(dups, u.ID)
		}
	}
	return dups
}
