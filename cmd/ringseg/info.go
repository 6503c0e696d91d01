package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/ringseg/internal/job"
	"github.com/philipparndt/ringseg/pkg/analysis"
	"github.com/philipparndt/ringseg/pkg/dxf"
	"github.com/philipparndt/ringseg/pkg/export"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <job>",
	Short: "Display the resolved units of a job file",
	Long:  "Resolve every unit of a job file and show its derived measurements and the batch totals.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.dxf>",
	Short: "Recover the segment stored in an exported DXF file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(inspectCmd)
}

func loadJob(path string) (*job.Job, error) {
	j, err := job.Load(path)
	if err != nil {
		return nil, err
	}
	units := j.Batch.Units()
	logger.Printf("Loaded %d units from %s", len(units), path)
	for _, id := range export.DuplicateIDs(units) {
		warn.Printf("unit id %q is used more than once; its DXF file keeps the last unit", id)
	}
	return j, nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	j, err := loadJob(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "Job Information")
	fmt.Fprintln(w, "===============")
	fmt.Fprintf(w, "File: %s\n", j.Path)
	printProject(w, j)

	units := j.Batch.Units()
	summaries := make([]analysis.Summary, len(units))
	for i, u := range units {
		summaries[i] = analysis.Summarize(u.Segment, cfg.Outline)
		printSummary(w, u.ID, summaries[i])
	}

	t := analysis.Total(summaries)
	fmt.Fprintln(w, "Totals:")
	fmt.Fprintf(w, "  Units: %d\n", t.Units)
	fmt.Fprintf(w, "  Face Area: %s\n", analysis.FormatArea(t.Area))
	fmt.Fprintf(w, "  Outer Arc: %s\n", analysis.FormatMeasurement(t.OuterArcLength))
	fmt.Fprintf(w, "  Inner Arc: %s\n", analysis.FormatMeasurement(t.InnerArcLength))
	fmt.Fprintf(w, "  Angle: %s\n", analysis.FormatAngle(t.AngleDegrees))
	return nil
}

func printProject(w io.Writer, j *job.Job) {
	p := j.Project
	for _, field := range []struct{ name, value string }{
		{"Company", p.Company},
		{"Project", p.Project},
		{"Customer", p.Customer},
		{"Order", p.OrderNumber},
	} {
		if field.value != "" {
			fmt.Fprintf(w, "%s: %s\n", field.name, field.value)
		}
	}
	fmt.Fprintln(w)
}

func runInspect(cmd *cobra.Command, args []string) error {
	d, err := dxf.Parse(args[0])
	if err != nil {
		return err
	}
	seg, err := d.Segment()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "DXF File Information")
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "File: %s\n", args[0])
	fmt.Fprintf(w, "Version: %s\n", d.Header["$ACADVER"])
	fmt.Fprintf(w, "Units: %d\n", d.Units())
	fmt.Fprintf(w, "Layers: %v\n", d.Layers)
	fmt.Fprintf(w, "Entities: %d arcs, %d lines\n\n", len(d.Arcs), len(d.Lines))

	printSummary(w, "", analysis.Summarize(seg, cfg.Outline))
	return nil
}
