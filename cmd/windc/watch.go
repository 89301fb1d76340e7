package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/windcss/windc"
	"github.com/windcss/windc/internal/report"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the stylesheet whenever sources change",
	Long: `Run an initial build, then watch the source tree and recompile on
every change until interrupted.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.String("source", "web", "Source directory to scan")
	f.String("output", "dist/windc.css", "Stylesheet output path")
	f.StringSlice("include", nil, "Glob patterns for files to scan")
	f.Duration("debounce", 150*time.Millisecond, "Delay before rebuilding after a change")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	config := buildConfigFromKoanf()
	debounce, _ := cmd.Flags().GetDuration("debounce")
	if debounce <= 0 {
		debounce = 150 * time.Millisecond
	}

	rebuild := func() {
		result, err := windc.Build(config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
			return
		}
		opts := report.Options{
			UseColors:      getBoolWithFallback("color", "color", false),
			PrintCheckName: true,
		}
		r := report.NewReporter(os.Stdout, opts)
		r.PrintDiagnostics(result.Diagnostics)
		r.PrintBuildSummary(*result, config.Output)
	}

	rebuild()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify watches are not recursive; register every directory under
	// the source root.
	if err := addWatchDirs(watcher, config.SourceDir); err != nil {
		return fmt.Errorf("watching %s: %w", config.SourceDir, err)
	}

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", config.SourceDir)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New directories need their own watch.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchDirs(watcher, event.Name)
				}
			}
			if !relevantChange(event, config.Output) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			rebuild()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)

		case <-interrupt:
			fmt.Println("\nStopped")
			return nil
		}
	}
}

// addWatchDirs registers root and all directories below it.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// relevantChange filters out events on the output file itself and editor
// temp files.
func relevantChange(event fsnotify.Event, output string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
		return false
	}
	abs, _ := filepath.Abs(event.Name)
	outAbs, _ := filepath.Abs(output)
	return abs != outAbs
}
