package commands

import (
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/pipeforge/pipeforge/errors"
	"github.com/pipeforge/pipeforge/logger"
	"github.com/pipeforge/pipeforge/publish"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// WatchCmd publishes once, then watches the published files and reports
// out-of-band edits as drift until interrupted.
var WatchCmd = &cobra.Command{
	Use:   "watch <artifact>",
	Short: "Publish, then report drift in the published files live",
	Long: `Watch publishes every definition once, records the published
fingerprints, and then watches the target files. Any out-of-band edit or
deletion is reported as drift immediately. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	catalog, _, err := loadCatalog(cmd, args, nil)
	if err != nil {
		return renderFatal(cmd, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := publish.New(publish.Options{}).Run(ctx, catalog)
	if err != nil {
		return renderFatal(cmd, err)
	}
	renderSummary(result)

	// Published fingerprints are the baseline; any divergence is drift.
	baseline := make(map[string]publish.Fingerprint)
	for _, rep := range result.Reports {
		if rep.Outcome.Drifted() || rep.Outcome == publish.OutcomeUnchanged {
			baseline[rep.Path] = publish.Snapshot(rep.Path)
		}
	}
	if len(baseline) == 0 {
		return errors.New("nothing was published, nothing to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create filesystem watcher")
	}
	defer watcher.Close()

	// Watch directories, not files: editors replace files on save, which
	// drops a file-level watch.
	dirs := make(map[string]bool)
	for path := range baseline {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	pterm.Info.Printfln("Watching %d pipeline file(s) for drift (Ctrl-C to stop)", len(baseline))

	for {
		select {
		case <-ctx.Done():
			pterm.Info.Printfln("Watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			expected, tracked := baseline[event.Name]
			if !tracked {
				continue
			}
			current := publish.Snapshot(event.Name)
			switch {
			case !current.Present():
				pterm.Warning.Printfln("Drift: %s was deleted", event.Name)
			case !current.Equal(expected):
				pterm.Warning.Printfln("Drift: %s was edited out-of-band (%s -> %s)",
					event.Name, expected, current)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Watcher error", "error", err)
		}
	}
}
