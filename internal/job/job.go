// Package job loads batch descriptions from YAML, JSON or TOML files.
package job

import (
	"fmt"
	"strings"

	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/sheet"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. RINGSEG_PROJECT_CUSTOMER
const EnvPrefix = "RINGSEG"

// UnitSpec is one unit as written in a job file. Any combination accepted
// by geometry.Solve may be given.
type UnitSpec struct {
	ID          string   `mapstructure:"id"`
	InnerRadius *float64 `mapstructure:"inner_radius"`
	OuterRadius *float64 `mapstructure:"outer_radius"`
	Depth       *float64 `mapstructure:"depth"`
	ChordLength *float64 `mapstructure:"chord_length"`
	ArcLength   *float64 `mapstructure:"arc_length"`
	Angle       *float64 `mapstructure:"angle"`
}

// Spec converts the unit to solver input
func (u UnitSpec) Spec() geometry.Spec {
	return geometry.Spec{
		InnerRadius:  u.InnerRadius,
		OuterRadius:  u.OuterRadius,
		Depth:        u.Depth,
		ChordLength:  u.ChordLength,
		ArcLength:    u.ArcLength,
		AngleDegrees: u.Angle,
	}
}

// File mirrors the layout of a job file
type File struct {
	Project sheet.ProjectInfo `mapstructure:"project"`
	Units   []UnitSpec        `mapstructure:"units"`
}

// Job is a loaded and solved job file
type Job struct {
	Path    string
	Project sheet.ProjectInfo
	Batch   *Batch
}

var projectKeys = []string{"company", "project", "customer", "order_number"}

// newViper returns a viper instance reading path with environment overrides
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads and solves the job file at path. The format follows the file
// extension. Project fields may be overridden from the environment.
func Load(path string) (*Job, error) {
	v := newViper(path)
	for _, key := range projectKeys {
		if err := v.BindEnv("project." + key); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to decode job file: %w", err)
	}

	batch, err := f.Solve()
	if err != nil {
		return nil, err
	}
	return &Job{Path: path, Project: f.Project, Batch: batch}, nil
}

// Solve resolves every unit of the file into a batch, failing on the first
// unit that cannot be solved
func (f File) Solve() (*Batch, error) {
	b := NewBatch()
	for i, u := range f.Units {
		if _, err := b.Add(u.ID, u.Spec()); err != nil {
			if u.ID == "" {
				return nil, fmt.Errorf("unit %d: %w", i+1, err)
			}
			return nil, fmt.Errorf("unit %d (%s): %w", i+1, u.ID, err)
		}
	}
	return b, nil
}
