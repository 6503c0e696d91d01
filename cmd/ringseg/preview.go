package main

import (
	"github.com/philipparndt/ringseg/pkg/preview"
	"github.com/philipparndt/ringseg/pkg/sheet"
	"github.com/spf13/cobra"
)

var previewSize int

var previewCmd = &cobra.Command{
	Use:   "preview <job>",
	Short: "Write a PNG thumbnail per unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	previewCmd.Flags().IntVar(&previewSize, "size", 256, "thumbnail edge length in pixels")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	j, err := loadJob(args[0])
	if err != nil {
		return err
	}
	opts, err := previewOptions(previewSize)
	if err != nil {
		return err
	}
	files, err := preview.Thumbnails(j.Batch.Units(), opts)
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

func previewOptions(size int) (preview.Options, error) {
	palette, err := sheet.ParsePalette(cfg.Palette)
	if err != nil {
		return preview.Options{}, err
	}
	opts := preview.DefaultOptions()
	opts.Size = size
	opts.Outline = cfg.Outline
	opts.Palette = palette
	return opts, nil
}
