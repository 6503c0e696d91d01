package job

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/ringseg/pkg/annotate"
	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlJob = `
project:
  company: London Stone
  project: Museum Extension
  customer: Natural History Museum
units:
  - id: Type-A
    inner_radius: 1000
    outer_radius: 1200
    chord_length: 500
  - id: Type-B
    inner_radius: 1000
    outer_radius: 1200
    arc_length: 600
  - id: Type-C
    inner_radius: 1000
    outer_radius: 1200
    angle: 30
  - id: Type-D
    inner_radius: 1000
    depth: 200
    chord_length: 500
`

const jsonJob = `{
  "project": {"order_number": "LS-2024-001"},
  "units": [
    {"id": "Unit-1", "outer_radius": 1500, "depth": 250, "angle": 12.5}
  ]
}`

const tomlJob = `
[project]
customer = "Customer"

[[units]]
id = "Unit-1"
inner_radius = 800
outer_radius = 950
arc_length = 400
`

var testTime = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	j, err := Load(writeFile(t, "job.yaml", yamlJob))
	require.NoError(t, err)

	assert.Equal(t, "London Stone", j.Project.Company)
	assert.Equal(t, "Museum Extension", j.Project.Project)
	assert.Equal(t, "Natural History Museum", j.Project.Customer)
	assert.Empty(t, j.Project.OrderNumber)

	units := j.Batch.Units()
	require.Len(t, units, 4)

	ids := []string{"Type-A", "Type-B", "Type-C", "Type-D"}
	for i, u := range units {
		assert.Equal(t, ids[i], u.ID)
		assert.Equal(t, 1000.0, u.Segment.InnerRadius)
		assert.Equal(t, 1200.0, u.Segment.OuterRadius)
	}

	// Radii + chord and radius + depth + chord describe the same segment
	assert.InDelta(t, 24.0494, units[0].Segment.AngleDegrees, 1e-3)
	assert.InDelta(t, units[0].Segment.AngleDegrees, units[3].Segment.AngleDegrees, 1e-12)
	// Arc length is measured on the outer radius
	assert.InDelta(t, 0.5, units[1].Segment.AngleRad, 1e-12)
	assert.InDelta(t, 30.0, units[2].Segment.AngleDegrees, 1e-12)
}

func TestLoadJSON(t *testing.T) {
	j, err := Load(writeFile(t, "job.json", jsonJob))
	require.NoError(t, err)

	assert.Equal(t, "LS-2024-001", j.Project.OrderNumber)
	require.Equal(t, 1, j.Batch.Len())
	seg := j.Batch.Units()[0].Segment
	assert.Equal(t, 1250.0, seg.InnerRadius)
	assert.InDelta(t, 12.5, seg.AngleDegrees, 1e-12)
}

func TestLoadTOML(t *testing.T) {
	j, err := Load(writeFile(t, "job.toml", tomlJob))
	require.NoError(t, err)

	require.Equal(t, 1, j.Batch.Len())
	seg := j.Batch.Units()[0].Segment
	assert.InDelta(t, 400.0/950.0, seg.AngleRad, 1e-12)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("RINGSEG_PROJECT_CUSTOMER", "British Museum")

	j, err := Load(writeFile(t, "job.yaml", yamlJob))
	require.NoError(t, err)
	assert.Equal(t, "British Museum", j.Project.Customer)
	assert.Equal(t, "Museum Extension", j.Project.Project)
}

func TestLoadInvalidUnit(t *testing.T) {
	const job = `
units:
  - id: Type-A
    inner_radius: 1000
    outer_radius: 1200
    angle: 30
  - id: Type-C
    inner_radius: 0
    outer_radius: 1
    chord_length: 3
`
	_, err := Load(writeFile(t, "job.yaml", job))
	require.Error(t, err)
	assert.True(t, errors.Is(err, geometry.ErrInvalidInput))
	assert.Contains(t, err.Error(), "unit 2 (Type-C)")
}

func TestLoadMissingID(t *testing.T) {
	const job = `
units:
  - inner_radius: 1000
    outer_radius: 1200
    angle: 30
`
	_, err := Load(writeFile(t, "job.yaml", job))
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)
	assert.Contains(t, err.Error(), "unit 1:")
}

func TestLoadRejectsPathLikeID(t *testing.T) {
	const job = `
units:
  - id: ../escape
    inner_radius: 1000
    outer_radius: 1200
    angle: 30
`
	_, err := Load(writeFile(t, "job.yaml", job))
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)
	assert.Contains(t, err.Error(), "unit 1 (../escape)")
}

func TestValidateID(t *testing.T) {
	for _, id := range []string{"Type-A", "Type A.1", "R1200_30", "Ü-7"} {
		assert.NoError(t, ValidateID(id), id)
	}
	for _, id := range []string{"", "a/b", `a\b`, "..", ".", "../escape", "x..y", "x\x00"} {
		assert.ErrorIs(t, ValidateID(id), geometry.ErrInvalidInput, "%q", id)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	b := NewBatch()
	spec := geometry.Spec{
		InnerRadius:  geometry.Given(1000),
		OuterRadius:  geometry.Given(1200),
		AngleDegrees: geometry.Given(30),
	}

	for _, id := range []string{"A", "B", "C"} {
		_, err := b.Add(id, spec)
		require.NoError(t, err)
	}
	require.Equal(t, 3, b.Len())

	require.NoError(t, b.Remove(1))
	units := b.Units()
	require.Len(t, units, 2)
	assert.Equal(t, "A", units[0].ID)
	assert.Equal(t, "C", units[1].ID)

	assert.Error(t, b.Remove(2))
	assert.Error(t, b.Remove(-1))

	// Units returns a copy
	units[0].ID = "changed"
	assert.Equal(t, "A", b.Units()[0].ID)

	_, err := b.Add("", spec)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)
	_, err = b.Add("Type A/1", spec)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)

	_, err = b.Add("D", geometry.Spec{InnerRadius: geometry.Given(1000)})
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)
	assert.Equal(t, 2, b.Len(), "failed additions leave the batch unchanged")

	b.Clear()
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Units())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Style, cfg.Style)
	assert.Equal(t, DefaultConfig().Outline, cfg.Outline)

	path := writeFile(t, "ringseg.yaml", `
style:
  text_size: 3.5
  chord_offset: 20
outline:
  tessellation_min: 40
palette:
  dimension: "#1565c0"
`)
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.Style.TextSize)
	assert.Equal(t, 20.0, cfg.Style.ChordOffset)
	assert.Equal(t, 1.5, cfg.Style.Clearance)
	assert.Equal(t, 40, cfg.Outline.TessellationMin)
	assert.Equal(t, 5.0, cfg.Outline.TessellationStepDeg)

	opts, err := cfg.SheetOptions(testTime)
	require.NoError(t, err)
	r, g, b := opts.Palette.Dimension.RGB255()
	assert.Equal(t, [3]uint8{0x15, 0x65, 0xc0}, [3]uint8{r, g, b})
	assert.Equal(t, testTime, opts.Now)
}

func TestLoadConfigRejectsTessellation(t *testing.T) {
	path := writeFile(t, "ringseg.yaml", "outline:\n  tessellation_step_deg: 0\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigEnvironmentOverride(t *testing.T) {
	t.Setenv("RINGSEG_STYLE_TEXT_SIZE", "4")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Style.TextSize)
	assert.Equal(t, annotate.DefaultStyle().ArrowLength, cfg.Style.ArrowLength)
}
