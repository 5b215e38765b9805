package runner

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch generates dirs once, then regenerates a directory whenever one of
// its Go sources changes. Rapid changes are batched over the configured
// debounce window. Watch returns when ctx is done.
func (r *Runner) Watch(ctx context.Context, dirs []string, onPass func([]Result, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
		r.log.Info("watching", zap.String("dir", dir))
	}

	results, err := r.Generate(ctx, dirs)
	r.report(onPass, results, err)

	debounce := r.cfg.Watch.Debounce
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	dirty := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			r.log.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !r.relevant(event) {
				continue
			}
			r.log.Debug("change", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			dirty[filepath.Dir(event.Name)] = true
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Error("watch error", zap.Error(err))

		case <-timer.C:
			batch := make([]string, 0, len(dirty))
			for dir := range dirty {
				batch = append(batch, dir)
			}
			sort.Strings(batch)
			clear(dirty)

			results, err := r.Generate(ctx, batch)
			r.report(onPass, results, err)
		}
	}
}

// relevant reports whether event touches a source file the generator reads.
func (r *Runner) relevant(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
		return false
	}
	if strings.HasSuffix(name, r.cfg.Naming.Suffix) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (r *Runner) report(onPass func([]Result, error), results []Result, err error) {
	if err != nil {
		r.log.Error("generation failed", zap.Error(err))
	}
	if onPass != nil {
		onPass(results, err)
	}
}
