package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/internal/async"
)

// Ingestor copies watched files into the upload area and queues them for
// extraction. Files are deduplicated by content hash per agent, so a file
// rewritten with identical bytes is not queued twice.
type Ingestor struct {
	cfg    Config
	queue  async.Queue
	logger *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{} // "agentID:sha256"
}

func NewIngestor(cfg Config, queue async.Queue, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./tmp/uploads"
	}
	if cfg.WorkRoot == "" {
		cfg.WorkRoot = "./tmp/images"
	}
	return &Ingestor{
		cfg:    cfg,
		queue:  queue,
		logger: logger,
		seen:   map[string]struct{}{},
	}
}

// Run watches the configured roots until the context is canceled.
func (i *Ingestor) Run(ctx context.Context) error {
	events, errs, err := startWatcher(ctx, i.cfg, i.logger)
	if err != nil {
		return err
	}
	i.logger.Info("ingest.watch.start", "roots", len(i.cfg.Roots))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case werr := <-errs:
			i.logger.Warn("ingest.watch.error", "error", werr)
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := i.ingestFile(ctx, ev); err != nil {
				i.logger.Warn("ingest.file.failed", "path", ev.Path, "agent_id", ev.AgentID, "error", err)
			}
		}
	}
}

func (i *Ingestor) ingestFile(ctx context.Context, ev event) error {
	hash, err := hashFile(ev.Path)
	if err != nil {
		return err
	}
	key := keyFor(ev.AgentID, hash)

	i.mu.Lock()
	if _, dup := i.seen[key]; dup {
		i.mu.Unlock()
		i.logger.Debug("ingest.file.deduplicated", "path", ev.Path, "agent_id", ev.AgentID)
		return nil
	}
	i.seen[key] = struct{}{}
	i.mu.Unlock()

	if err := os.MkdirAll(i.cfg.UploadDir, 0o755); err != nil {
		return err
	}
	uploadID := uuid.NewString()
	ext := constants.NormalizeExt(filepath.Ext(ev.Path))
	dst := filepath.Join(i.cfg.UploadDir, uploadID+"."+ext)
	if err := copyFile(ev.Path, dst); err != nil {
		return err
	}

	job := async.Job{
		AgentID:      ev.AgentID,
		DocumentPath: dst,
		WorkDir:      filepath.Join(i.cfg.WorkRoot, uploadID),
		SubmittedAt:  time.Now(),
		TraceID:      uploadID,
	}
	if err := i.queue.Enqueue(ctx, job); err != nil {
		os.Remove(dst)
		return err
	}

	i.logger.Info("ingest.file.queued",
		"path", ev.Path,
		"agent_id", ev.AgentID,
		"trace_id", uploadID,
		"sha256", hash[:12],
	)
	return nil
}

func keyFor(agentID int, hash string) string {
	return fmt.Sprintf("%d:%s", agentID, hash)
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
