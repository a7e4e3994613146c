package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch runs the generator once, then again whenever the geometry file or the
// dialect file changes, until ctx is cancelled. Run failures are reported and
// do not stop the watch. onRun, when set, receives the result of every run.
func (g *Generator) Watch(ctx context.Context, cfg Config, onRun func(error)) error {
	watched, err := watchedPaths(cfg)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Directories are watched so editors that replace the file are still seen
	dirs := make(map[string]bool)
	for path := range watched {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	g.runOnce(cfg, onRun)
	g.diagnostics.Info("Watching %s for changes", cfg.InputPath)

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			g.diagnostics.Debug("%s: %s", event.Op, event.Name)

			if debounce == nil {
				debounce = time.NewTimer(g.WatchDebounce)
			} else {
				debounce.Reset(g.WatchDebounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			g.runOnce(cfg, onRun)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.diagnostics.Warn("watcher error: %v", err)
		}
	}
}

// runOnce runs the generator and reports a failure without returning it
func (g *Generator) runOnce(cfg Config, onRun func(error)) {
	err := g.Run(cfg)
	if err != nil {
		g.reporter.ReportError(err)
		g.diagnostics.Error("Generation failed, waiting for changes to %s", cfg.InputPath)
	}
	if onRun != nil {
		onRun(err)
	}
}

// watchedPaths returns the absolute paths whose changes trigger a run
func watchedPaths(cfg Config) (map[string]bool, error) {
	paths := make(map[string]bool)
	for _, p := range []string{cfg.InputPath, cfg.ConfigFile} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		paths[abs] = true
	}
	return paths, nil
}
