package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfMagic = []byte("%PDF-1.4\n%fake minimal document\n%%EOF\n")

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// stubRunner fakes poppler: it records invocations, returns canned stdout,
// and for pdftoppm materializes page files the way the real binary would.
type stubRunner struct {
	stdout    []byte
	err       error
	pageCount int
	calls     [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.err != nil {
		return nil, []byte("boom"), s.err
	}
	if name == "pdftoppm" {
		prefix := args[len(args)-1]
		for i := 1; i <= s.pageCount; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), pngMagic, 0o600); err != nil {
				return nil, nil, err
			}
		}
	}
	return s.stdout, nil, nil
}

func newTestLoader(cfg Config, r Runner) *Loader {
	l := NewLoader(cfg, nil)
	l.runner = r
	return l
}

func TestExtractTextFromPDF(t *testing.T) {
	path := writeTemp(t, "doc.pdf", pdfMagic)
	stub := &stubRunner{stdout: []byte("hello text layer")}
	l := newTestLoader(Config{}, stub)

	got := l.ExtractText(context.Background(), path)
	assert.Equal(t, "hello text layer", got)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, "pdftotext", stub.calls[0][0])
}

func TestExtractTextNonPDFIsEmpty(t *testing.T) {
	path := writeTemp(t, "doc.txt", []byte("plain text, not a pdf"))
	stub := &stubRunner{stdout: []byte("should not be used")}
	l := newTestLoader(Config{}, stub)

	assert.Empty(t, l.ExtractText(context.Background(), path))
	assert.Empty(t, stub.calls, "must not invoke pdftotext on a non-pdf")
}

func TestExtractTextToolFailureIsEmpty(t *testing.T) {
	path := writeTemp(t, "doc.pdf", pdfMagic)
	stub := &stubRunner{err: errors.New("exit status 1")}
	l := newTestLoader(Config{}, stub)

	assert.Empty(t, l.ExtractText(context.Background(), path))
}

func TestRenderPagesNumericOrder(t *testing.T) {
	path := writeTemp(t, "doc.pdf", pdfMagic)
	stub := &stubRunner{pageCount: 12}
	l := newTestLoader(Config{}, stub)

	outDir := filepath.Join(t.TempDir(), "pages")
	pages, err := l.RenderPages(context.Background(), path, outDir)
	require.NoError(t, err)
	require.Len(t, pages, 12)

	// Lexical sort would put page-10 before page-2.
	for i, p := range pages {
		assert.Equal(t, fmt.Sprintf("page-%d.png", i+1), filepath.Base(p))
	}
}

func TestRenderPagesMaxPagesCap(t *testing.T) {
	path := writeTemp(t, "doc.pdf", pdfMagic)
	stub := &stubRunner{pageCount: 8}
	l := newTestLoader(Config{MaxPages: 3}, stub)

	pages, err := l.RenderPages(context.Background(), path, filepath.Join(t.TempDir(), "pages"))
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, "page-1.png", filepath.Base(pages[0]))
	assert.Equal(t, "page-3.png", filepath.Base(pages[2]))
}

func TestRenderPagesImagePassthrough(t *testing.T) {
	path := writeTemp(t, "scan.png", pngMagic)
	stub := &stubRunner{}
	l := newTestLoader(Config{}, stub)

	pages, err := l.RenderPages(context.Background(), path, filepath.Join(t.TempDir(), "pages"))
	require.NoError(t, err)
	require.Equal(t, []string{path}, pages)
	assert.Empty(t, stub.calls, "an image is its own page, no rasterization")
}

func TestRenderPagesUnsupportedType(t *testing.T) {
	path := writeTemp(t, "doc.txt", []byte("not a document we render"))
	l := newTestLoader(Config{}, &stubRunner{})

	_, err := l.RenderPages(context.Background(), path, filepath.Join(t.TempDir(), "pages"))
	require.Error(t, err)
}

func TestRenderPagesToolFailure(t *testing.T) {
	path := writeTemp(t, "doc.pdf", pdfMagic)
	l := newTestLoader(Config{}, &stubRunner{err: errors.New("exit status 99")})

	_, err := l.RenderPages(context.Background(), path, filepath.Join(t.TempDir(), "pages"))
	require.Error(t, err)
}

func TestRenderPagesNoOutput(t *testing.T) {
	path := writeTemp(t, "doc.pdf", pdfMagic)
	l := newTestLoader(Config{}, &stubRunner{pageCount: 0})

	_, err := l.RenderPages(context.Background(), path, filepath.Join(t.TempDir(), "pages"))
	require.Error(t, err)
}

func TestHasPlainTextUsesClassifier(t *testing.T) {
	path := writeTemp(t, "doc.pdf", pdfMagic)

	rich := &stubRunner{stdout: []byte("Invoice 2041 ACME Corp total due 1,250.00 EUR payment within 30 days.")}
	assert.True(t, newTestLoader(Config{}, rich).HasPlainText(context.Background(), path))

	sparse := &stubRunner{stdout: []byte("  \n ")}
	assert.False(t, newTestLoader(Config{}, sparse).HasPlainText(context.Background(), path))
}
