package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Config for the document loader (poppler binaries plus rendering knobs).
type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	DPI         int           // rasterization DPI for page rendering, default 200
	MaxPages    int           // 0 = no limit
	ExecTimeout time.Duration // per-invocation limit on the poppler binaries, 0 = caller's context only
}

// Loader answers two independent questions about a document: what plain text
// it carries, and what its pages look like as images.
type Loader struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewLoader(cfg Config, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	return &Loader{cfg: cfg, runner: newExecRunner(logger, cfg.ExecTimeout), logger: logger}
}

// ExtractText attempts direct text-layer extraction. It fails silently to an
// empty string on read or parse errors: the result feeds classification and
// the text-path fallback, and the pipeline degrades to the vision path rather
// than aborting.
func (l *Loader) ExtractText(ctx context.Context, path string) string {
	if !l.looksLikePDF(path) {
		l.logger.Warn("document.extract_text.not_pdf", "path", path)
		return ""
	}
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := l.runner.Run(ctx, l.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		l.logger.Warn("document.extract_text.failed", "path", path, "error", err, "stderr", truncate(string(errb), 512))
		return ""
	}
	return string(out)
}

// RenderPages rasterizes each page to a PNG in outputDir, creating the
// directory if absent. The returned paths are in page order. An image
// document is its own single page and is returned as-is.
func (l *Loader) RenderPages(ctx context.Context, path, outputDir string) ([]string, error) {
	if !l.looksLikePDF(path) {
		mt, err := mimetype.DetectFile(path)
		if err == nil && (mt.Is("image/png") || mt.Is("image/jpeg")) {
			return []string{path}, nil
		}
		return nil, fmt.Errorf("unsupported document type for %s", filepath.Base(path))
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	prefix := filepath.Join(outputDir, "page")
	// pdftoppm -r 200 -png <in.pdf> <dir/page>
	_, errb, err := l.runner.Run(ctx, l.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", l.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, fmt.Errorf("render pages: %w (%s)", err, truncate(string(errb), 512))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Slice(matches, func(i, j int) bool {
		return pageNumber(matches[i]) < pageNumber(matches[j])
	})
	if l.cfg.MaxPages > 0 && len(matches) > l.cfg.MaxPages {
		matches = matches[:l.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no pages rendered")
	}
	return matches, nil
}

// pageNumber parses the trailing page index from a pdftoppm output name.
// Lexical sort breaks past page 9 ("page-10.png" < "page-2.png").
func pageNumber(path string) int {
	base := filepath.Base(path)
	var n int
	_, err := fmt.Sscanf(base, "page-%d.png", &n)
	if err != nil {
		return 0
	}
	return n
}

func (l *Loader) looksLikePDF(path string) bool {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		l.logger.Warn("document.sniff.failed", "path", path, "error", err)
		return false
	}
	return mt.Is("application/pdf")
}
