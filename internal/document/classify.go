package document

import (
	"context"
	"unicode"
)

const (
	// minTextLength is the shortest extraction that can count as a text layer.
	minTextLength = 50
	// minPrintableRatio guards against garbage text layers (OCR artifacts,
	// control characters) masquerading as extractable text.
	minPrintableRatio = 0.3
)

// HasPlainText reports whether the document carries a usable text layer. On
// any extraction error this is simply false: the pipeline degrades to the
// vision path rather than aborting.
func (l *Loader) HasPlainText(ctx context.Context, path string) bool {
	text := l.ExtractText(ctx, path)
	ok := ClassifyText(text)
	l.logger.Debug("document.classify", "path", path, "chars", len(text), "has_plain_text", ok)
	return ok
}

// ClassifyText applies the text-presence heuristic to already-extracted text:
// too short means no text layer; otherwise the fraction of printable
// non-whitespace characters must clear the ratio threshold.
func ClassifyText(text string) bool {
	runes := []rune(text)
	if len(runes) < minTextLength {
		return false
	}
	printable := 0
	for _, r := range runes {
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			printable++
		}
	}
	ratio := float64(printable) / float64(len(runes))
	return ratio > minPrintableRatio
}
