package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/philipparndt/ringseg/internal/archive"
	"github.com/philipparndt/ringseg/internal/job"
	"github.com/philipparndt/ringseg/pkg/export"
	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	outputDir  string
	outputFile string
	zipOutput  bool
)

var dxfCmd = &cobra.Command{
	Use:   "dxf <job>",
	Short: "Write one DXF cutting file per unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runDXF,
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <job>",
	Short: "Write the A3 approval sheet for all units",
	Args:  cobra.ExactArgs(1),
	RunE:  runPDF,
}

var exportCmd = &cobra.Command{
	Use:   "export <job>",
	Short: "Write the DXF files and the approval sheet",
	Long: `Write the DXF files and the approval sheet of a job into a directory, or
with --zip bundle them into a single ring_segments_<timestamp>.zip archive.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	dxfCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	pdfCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default technical_drawing_<timestamp>.pdf)")
	exportCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	exportCmd.Flags().BoolVar(&zipOutput, "zip", false, "bundle everything into one archive")

	rootCmd.AddCommand(dxfCmd)
	rootCmd.AddCommand(pdfCmd)
	rootCmd.AddCommand(exportCmd)
}

func runDXF(cmd *cobra.Command, args []string) error {
	j, err := loadJob(args[0])
	if err != nil {
		return err
	}
	files, err := export.DXFFiles(j.Batch.Units())
	if err != nil {
		return err
	}
	written, err := writeFiles(outputDir, files)
	if err != nil {
		return err
	}
	report(cmd, written)
	return nil
}

func runPDF(cmd *cobra.Command, args []string) error {
	j, err := loadJob(args[0])
	if err != nil {
		return err
	}
	now := time.Now()
	opts, err := cfg.SheetOptions(now)
	if err != nil {
		return err
	}
	data, err := export.PDF(j.Batch.Units(), j.Project, opts)
	if err != nil {
		return err
	}

	path := outputFile
	if path == "" {
		path = archive.PDFName(now)
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	report(cmd, []string{path})
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	j, err := loadJob(args[0])
	if err != nil {
		return err
	}
	written, err := exportJob(j, cfg, outputDir, zipOutput, time.Now())
	if err != nil {
		return err
	}
	report(cmd, written)
	return nil
}

// exportJob writes every artifact of j below dir and returns the written paths
func exportJob(j *job.Job, c job.Config, dir string, zipped bool, now time.Time) ([]string, error) {
	opts, err := c.SheetOptions(now)
	if err != nil {
		return nil, err
	}
	a, err := export.Bundle(j.Batch.Units(), j.Project, opts)
	if err != nil {
		return nil, err
	}

	if zipped {
		var buf bytes.Buffer
		if err := archive.WriteArtifacts(&buf, a, now); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, archive.FileName(now))
		if err := writeFile(path, buf.Bytes()); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	files := make(map[string][]byte, len(a.DXF)+1)
	for name, data := range a.DXF {
		files[name] = data
	}
	files[archive.PDFName(now)] = a.PDF
	return writeFiles(dir, files)
}

// writeFiles stores files below dir in name order
func writeFiles(dir string, files map[string][]byte) ([]string, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
			return nil, fmt.Errorf("%w: refusing to write %q outside %s", geometry.ErrInvalidInput, name, dir)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := writeFile(path, files[name]); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Printf("Wrote %s (%d bytes)", path, len(data))
	return nil
}

func report(cmd *cobra.Command, paths []string) {
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
}
