package job

import (
	"fmt"
	"strings"

	"github.com/philipparndt/ringseg/pkg/geometry"
)

// Batch is an ordered list of units owned by the caller. Units keep their
// submission order; ids are not required to be unique.
type Batch struct {
	units []geometry.Unit
}

// NewBatch creates a batch holding units
func NewBatch(units ...geometry.Unit) *Batch {
	return &Batch{units: append([]geometry.Unit(nil), units...)}
}

// Add solves spec and appends the resulting unit
func (b *Batch) Add(id string, spec geometry.Spec) (geometry.Unit, error) {
	if err := ValidateID(id); err != nil {
		return geometry.Unit{}, err
	}
	seg, err := geometry.Solve(spec)
	if err != nil {
		return geometry.Unit{}, err
	}
	u := geometry.Unit{ID: id, Segment: seg}
	b.units = append(b.units, u)
	return u, nil
}

// Remove deletes the unit at index, counted from zero
func (b *Batch) Remove(index int) error {
	if index < 0 || index >= len(b.units) {
		return fmt.Errorf("no unit at index %d (batch holds %d)", index, len(b.units))
	}
	b.units = append(b.units[:index], b.units[index+1:]...)
	return nil
}

// Clear removes every unit
func (b *Batch) Clear() {
	b.units = nil
}

// Len returns the number of units
func (b *Batch) Len() int {
	return len(b.units)
}

// Units returns a copy of the units in submission order
func (b *Batch) Units() []geometry.Unit {
	return append([]geometry.Unit(nil), b.units...)
}

// ValidateID checks that id can name an exported file: it must be non-empty
// and must not contain path separators, parent references or NUL bytes
func ValidateID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: unit id is required", geometry.ErrInvalidInput)
	case strings.ContainsAny(id, `/\`+"\x00"):
		return fmt.Errorf("%w: unit id %q must not contain path separators", geometry.ErrInvalidInput, id)
	case id == "." || strings.Contains(id, ".."):
		return fmt.Errorf("%w: unit id %q must not contain \"..\"", geometry.ErrInvalidInput, id)
	}
	return nil
}
