package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/philipparndt/ringseg/internal/job"
	"github.com/philipparndt/ringseg/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <job>",
	Short: "Re-export a job whenever its file changes",
	Long: `Export a job once, then watch the job file (and the --config file, if any)
and export again after every change. Errors are reported and watching continues.
Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	watchCmd.Flags().BoolVar(&zipOutput, "zip", false, "bundle everything into one archive")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "quiet period before re-exporting")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	jobPath := args[0]

	// Job and config timers fire independently
	var mu sync.Mutex
	rebuild := func(string) {
		mu.Lock()
		defer mu.Unlock()

		if configPath != "" {
			loaded, err := job.LoadConfig(configPath)
			if err != nil {
				warn.Printf("keeping previous settings: %v", err)
			} else {
				cfg = loaded
			}
		}
		j, err := loadJob(jobPath)
		if err != nil {
			warn.Printf("%v", err)
			return
		}
		written, err := exportJob(j, cfg, outputDir, zipOutput, time.Now())
		if err != nil {
			warn.Printf("%v", err)
			return
		}
		report(cmd, written)
	}

	fw, err := watcher.NewFileWatcher(watchDebounce, watcher.WithErrorHandler(func(err error) {
		warn.Printf("watcher: %v", err)
	}))
	if err != nil {
		return err
	}
	defer fw.Close()

	files := []string{jobPath}
	if configPath != "" {
		files = append(files, configPath)
	}
	if err := fw.Watch(files, rebuild); err != nil {
		return err
	}

	rebuild(jobPath)
	fw.Start()
	logger.Printf("Watching %v", files)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	logger.Printf("Stopped watching")
	return nil
}
