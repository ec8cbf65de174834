package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mattin-ai/mattin/constants"
)

// startWatcher watches every root recursively and emits stable file paths
// tagged with their root's agent. New subdirectories are picked up as they
// appear; write bursts are debounced so a file is emitted once, after its
// last write.
func startWatcher(ctx context.Context, cfg Config, logger *slog.Logger) (<-chan event, <-chan error, error) {
	if len(cfg.Roots) == 0 {
		return nil, nil, errors.New("no watch roots provided")
	}
	if cfg.AllowedExts == nil {
		cfg.AllowedExts = constants.AllowedExtensions
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}

	evCh := make(chan event, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// agentFor resolves which root a path falls under.
	agentFor := func(path string) (int, bool) {
		for _, root := range cfg.Roots {
			abs, err := filepath.Abs(root.Path)
			if err != nil {
				continue
			}
			if rel, err := filepath.Rel(abs, path); err == nil && !strings.HasPrefix(rel, "..") {
				return root.AgentID, true
			}
		}
		return 0, false
	}

	addRoot := func(root WatchRoot) error {
		abs, err := filepath.Abs(root.Path)
		if err != nil {
			return err
		}
		return filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && allowed(path, cfg.AllowedExts) {
				select {
				case evCh <- event{Path: path, AgentID: root.AgentID}:
				default:
					logger.Warn("ingest.watch.backlog_drop", "path", path)
				}
			}
			return nil
		})
	}
	for _, root := range cfg.Roots {
		if err := addRoot(root); err != nil {
			w.Close()
			return nil, nil, err
		}
	}

	go func() {
		defer w.Close()
		defer close(evCh)

		// pending debounces per-path write bursts.
		pending := map[string]*time.Timer{}

		emit := func(path string) {
			agentID, ok := agentFor(path)
			if !ok {
				return
			}
			select {
			case evCh <- event{Path: path, AgentID: agentID}:
			default:
				logger.Warn("ingest.watch.backlog_drop", "path", path)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				select {
				case errCh <- werr:
				default:
				}
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Create) && isDir(ev.Name) {
					_ = w.Add(ev.Name)
					continue
				}
				if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Rename) {
					continue
				}
				if !allowed(ev.Name, cfg.AllowedExts) {
					continue
				}
				path := ev.Name
				if t, ok := pending[path]; ok {
					t.Stop()
				}
				pending[path] = time.AfterFunc(cfg.Debounce, func() { emit(path) })
			}
		}
	}()

	return evCh, errCh, nil
}

func allowed(path string, exts map[string]struct{}) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := exts[ext]
	return ok
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
