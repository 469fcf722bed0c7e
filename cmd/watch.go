package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/izapata/iconsmith/internal/core/services"
	"github.com/izapata/iconsmith/pkg/ui"
)

var (
	watchQuiet bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate icons whenever the source image changes",
	Long: `Watch the source image and regenerate every preset when it changes.

Icons are generated once on start. Changes are debounced by
watch_debounce_ms (default 300ms) so editors that save in several steps
trigger a single render. A failed render is reported and watching continues.

Use --quiet to only report failures.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Only report failures")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(cmd), os.Interrupt)
	defer stop()

	source := appProject.Resolve(appConfig.Source)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file by rename are seen
	if err := watcher.Add(filepath.Dir(source)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(source), err)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatBrush("Watching " + appProject.Relative(source)))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	export := func() {
		req := services.ExportRequest{
			SourcePath: appConfig.Source,
			Presets:    appConfig.Presets,
		}
		if _, err := exportService.Execute(ctx, req); err != nil {
			fmt.Println(ui.FormatError("Error generating icons: " + err.Error()))
			return
		}
		if !watchQuiet {
			fmt.Println(ui.FormatSuccess(fmt.Sprintf("Icons generated (%s)", time.Now().Format("15:04:05"))))
		}
	}

	export()

	return watchLoop(ctx, watcher, source, time.Duration(appConfig.WatchDebounceMS)*time.Millisecond, export)
}

// watchLoop calls export after events on source settle for debounce. export
// always runs on the loop goroutine, so renders never overlap.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, source string, debounce time.Duration, export func()) error {
	var debounceTimer *time.Timer
	trigger := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != source {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Rename) {

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, func() {
					select {
					case trigger <- struct{}{}:
					default:
					}
				})
			}

		case <-trigger:
			export()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			fmt.Println()
			fmt.Println(ui.FormatMuted("Watcher stopped"))
			return nil
		}
	}
}
