package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/ringseg/pkg/analysis"
	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Resolve a single segment from partial measurements",
	Long: `Resolve a segment from any supported combination of measurements and print
every derived value. Give both radii, or one radius with --depth, plus one of
--angle, --chord or --arc. Chord and arc are measured on the outer radius.`,
	Example: `  ringseg solve --inner 1000 --outer 1200 --chord 500
  ringseg solve --outer 1500 --depth 250 --angle 12.5`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.Float64("inner", 0, "inner radius (mm)")
	f.Float64("outer", 0, "outer radius (mm)")
	f.Float64("depth", 0, "radial depth (mm)")
	f.Float64("chord", 0, "outer chord length (mm)")
	f.Float64("arc", 0, "outer arc length (mm)")
	f.Float64("angle", 0, "segment angle (degrees)")
	rootCmd.AddCommand(solveCmd)
}

// flagValue returns nil for flags the user did not set
func flagValue(cmd *cobra.Command, name string) (*float64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	var spec geometry.Spec
	targets := map[string]**float64{
		"inner": &spec.InnerRadius,
		"outer": &spec.OuterRadius,
		"depth": &spec.Depth,
		"chord": &spec.ChordLength,
		"arc":   &spec.ArcLength,
		"angle": &spec.AngleDegrees,
	}
	for name, target := range targets {
		v, err := flagValue(cmd, name)
		if err != nil {
			return err
		}
		*target = v
	}

	seg, err := geometry.Solve(spec)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), "", analysis.Summarize(seg, cfg.Outline))
	return nil
}

func printSummary(w io.Writer, id string, s analysis.Summary) {
	seg := s.Segment
	if id != "" {
		fmt.Fprintf(w, "Unit %s\n", id)
		fmt.Fprintln(w, "=====")
	}

	fmt.Fprintln(w, "Geometry:")
	fmt.Fprintf(w, "  Inner Radius: %s\n", analysis.FormatMeasurement(seg.InnerRadius))
	fmt.Fprintf(w, "  Outer Radius: %s\n", analysis.FormatMeasurement(seg.OuterRadius))
	fmt.Fprintf(w, "  Depth: %s\n", analysis.FormatMeasurement(seg.Depth))
	fmt.Fprintf(w, "  Angle: %s\n\n", analysis.FormatAngle(seg.AngleDegrees))

	fmt.Fprintln(w, "Arcs and Chords:")
	fmt.Fprintf(w, "  Outer Arc: %s\n", analysis.FormatMeasurement(seg.OuterArcLength))
	fmt.Fprintf(w, "  Inner Arc: %s\n", analysis.FormatMeasurement(seg.InnerArcLength))
	fmt.Fprintf(w, "  Outer Chord: %s\n", analysis.FormatMeasurement(seg.OuterChordLength))
	fmt.Fprintf(w, "  Inner Chord: %s\n", analysis.FormatMeasurement(seg.InnerChordLength))
	fmt.Fprintf(w, "  Outer Sagitta: %s\n", analysis.FormatMeasurement(s.OuterSagitta))
	fmt.Fprintf(w, "  Inner Sagitta: %s\n\n", analysis.FormatMeasurement(s.InnerSagitta))

	fmt.Fprintln(w, "Material:")
	fmt.Fprintf(w, "  Face Area: %s\n", analysis.FormatArea(s.Area))
	fmt.Fprintf(w, "  Perimeter: %s\n", analysis.FormatMeasurement(s.Perimeter))
	fmt.Fprintf(w, "  Centroid: %s\n", analysis.FormatPoint(s.Centroid))
	fmt.Fprintf(w, "  Block: %s x %s\n\n",
		analysis.FormatMeasurement(s.Block.Width()), analysis.FormatMeasurement(s.Block.Height()))
}
