// Package runner drives generation over package directories for redactgen.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zoobzio/redacted"
	"github.com/zoobzio/redacted/internal/config"
	"github.com/zoobzio/redacted/source"
)

// Result reports one generated file.
type Result struct {
	Dir     string
	Type    string
	Path    string
	Written bool // False when the file on disk was already current
}

// Stale reports a generated file that is missing or out of date.
type Stale struct {
	Type   string
	Path   string
	Reason string
}

// Runner generates, checks and describes redacted types.
// A Runner is safe for concurrent use.
type Runner struct {
	cfg    *config.Config
	log    *zap.Logger
	opts   []redacted.Option
	loadFn func(dir string) ([]redacted.Request, error)

	// Last fingerprint written per path, so watch passes skip disk reads.
	written *lru.Cache[string, string]
	mu      sync.Mutex
}

// New creates a Runner.
func New(cfg *config.Config, log *zap.Logger) (*Runner, error) {
	cache, err := lru.New[string, string](cfg.Watch.CacheSize)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	r := &Runner{
		cfg: cfg,
		log: log,
		opts: []redacted.Option{
			redacted.WithFolding(cfg.Generate.Fold),
			redacted.WithReceiver(cfg.Generate.Receiver),
		},
		written: cache,
	}
	r.loadFn = func(dir string) ([]redacted.Request, error) {
		return source.Load(dir,
			source.WithPrefix(cfg.Naming.Prefix),
			source.WithSuffix(cfg.Naming.Suffix),
			source.WithFinal(cfg.Generate.Final),
		)
	}
	return r, nil
}

// Generate writes the generated files of every directory. Directories are
// processed concurrently; results keep the order of dirs.
func (r *Runner) Generate(ctx context.Context, dirs []string) ([]Result, error) {
	perDir := make([][]Result, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, dir := range dirs {
		g.Go(func() error {
			results, err := r.generateDir(gctx, dir)
			if err != nil {
				return fmt.Errorf("generate %s: %w", dir, err)
			}
			perDir[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []Result
	for _, rs := range perDir {
		results = append(results, rs...)
	}
	return results, nil
}

func (r *Runner) generateDir(ctx context.Context, dir string) ([]Result, error) {
	reqs, err := r.loadFn(dir)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, req := range reqs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := redacted.Generate(ctx, req, r.opts...)
		if errors.Is(err, redacted.ErrNotApplicable) {
			r.log.Debug("no redacted field", zap.String("type", req.TypeName))
			continue
		}
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, redacted.FileName(req.TypeName, r.cfg.Naming.Suffix))
		written, err := r.write(path, file)
		if err != nil {
			return nil, err
		}
		r.log.Info("generated",
			zap.String("type", req.TypeName),
			zap.String("path", path),
			zap.Bool("written", written),
			zap.Int("fragments", file.Fragments),
		)
		results = append(results, Result{Dir: dir, Type: req.TypeName, Path: path, Written: written})
	}
	return results, nil
}

// write stores file at path unless the current file already has its fingerprint.
func (r *Runner) write(path string, file *redacted.File) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fp, ok := r.written.Get(path); ok && fp == file.Fingerprint {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, file.Source) {
		r.written.Add(path, file.Fingerprint)
		return false, nil
	}

	if err := os.WriteFile(path, file.Source, 0o644); err != nil {
		return false, redacted.NewSourceError(redacted.ErrWrite, path, err)
	}
	r.written.Add(path, file.Fingerprint)
	return true, nil
}

// Check reports generated files that are missing or whose fingerprint does
// not match the current source.
func (r *Runner) Check(ctx context.Context, dirs []string) ([]Stale, error) {
	var stale []Stale
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reqs, err := r.loadFn(dir)
		if err != nil {
			return nil, err
		}
		for _, req := range reqs {
			path := filepath.Join(dir, redacted.FileName(req.TypeName, r.cfg.Naming.Suffix))
			want := redacted.Fingerprint(redacted.Normalize(req), r.opts...)

			src, err := os.ReadFile(path)
			if err != nil {
				stale = append(stale, Stale{Type: req.TypeName, Path: path, Reason: "missing"})
				continue
			}
			got, ok := redacted.ReadFingerprint(src)
			switch {
			case !ok:
				stale = append(stale, Stale{Type: req.TypeName, Path: path, Reason: "no fingerprint"})
			case got != want:
				stale = append(stale, Stale{Type: req.TypeName, Path: path, Reason: "fingerprint mismatch"})
			}
		}
	}
	return stale, nil
}

// Plan describes every struct type in dir, including types that would not
// be generated.
func (r *Runner) Plan(dir string) ([]redacted.Plan, error) {
	reqs, err := source.Load(dir,
		source.WithPrefix(r.cfg.Naming.Prefix),
		source.WithSuffix(r.cfg.Naming.Suffix),
		source.WithFinal(r.cfg.Generate.Final),
		source.WithAll(),
	)
	if err != nil {
		return nil, err
	}
	plans := make([]redacted.Plan, len(reqs))
	for i, req := range reqs {
		plans[i] = redacted.Describe(req, r.opts...)
	}
	return plans, nil
}
