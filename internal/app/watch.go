package app

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"github.com/specialistvlad/aocrunner/internal/fsutil"
)

// runWatch runs the latest day, then re-runs it each time its real input or
// the shared example changes. It stops when ctx is cancelled or an exit
// keyword is read from the input stream.
func (a *App) runWatch(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	logger := ctxlog.FromContext(ctx)

	day := a.latestDay()
	rerun := func() error {
		return a.execute(ctx, request{day: day, parallel: true})
	}
	if err := rerun(); err != nil {
		return err
	}

	paths := a.inputs.Paths()
	watched := map[string]bool{
		filepath.Clean(paths.RealPath(day.ID())): true,
		filepath.Clean(paths.ExamplePath()):      true,
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(paths.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", paths.Dir, err)
	}

	if files, err := fsutil.FindFiles(paths.Dir, filepath.Ext(paths.Pattern), filepath.Ext(paths.Example)); err == nil {
		logger.Info("Watching input directory.", "dir", paths.Dir, "day", day.ID(), "input_files", len(files))
	}
	go a.watchForExit(ctx, cancel)

	var debounce *time.Timer
	var fire <-chan time.Time
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch mode stopped.")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("Input changed.", "file", ev.Name, "op", ev.Op.String())
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.NewTimer(a.settings.WatchDebounce)
			fire = debounce.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error.", "error", err)
		case <-fire:
			fire = nil
			if err := rerun(); err != nil {
				return err
			}
		}
	}
}

// watchForExit cancels the watch when an exit keyword is typed. It stops
// quietly at the end of the input stream.
func (a *App) watchForExit(ctx context.Context, cancel context.CancelFunc) {
	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		cmd, err := parseCommand(scanner.Text(), len(a.days))
		if err == nil && cmd.kind == cmdExit {
			cancel()
			return
		}
	}
}
