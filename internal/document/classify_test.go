package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTextEmpty(t *testing.T) {
	assert.False(t, ClassifyText(""))
}

func TestClassifyTextTooShort(t *testing.T) {
	// 49 printable characters: under the length floor even though the
	// printable ratio is perfect.
	assert.False(t, ClassifyText(strings.Repeat("a", 49)))
}

func TestClassifyTextAtLengthFloor(t *testing.T) {
	assert.True(t, ClassifyText(strings.Repeat("a", 50)))
}

func TestClassifyTextRealisticParagraph(t *testing.T) {
	text := "Invoice 2041\nACME Corp\nTotal due: 1,250.00 EUR\nPayment within 30 days of receipt."
	assert.True(t, ClassifyText(text))
}

func TestClassifyTextMostlyWhitespace(t *testing.T) {
	// Long enough, but printable density is far below the ratio floor.
	// Scanned PDFs often produce this kind of near-empty text layer.
	text := "a" + strings.Repeat(" \n\t", 100)
	assert.False(t, ClassifyText(text))
}

func TestClassifyTextControlCharacters(t *testing.T) {
	text := strings.Repeat("\x00\x01\x02", 40)
	assert.False(t, ClassifyText(text))
}

func TestClassifyTextRatioBoundary(t *testing.T) {
	// 40 printable + 60 spaces = 0.4 ratio, above the 0.3 floor.
	above := strings.Repeat("a", 40) + strings.Repeat(" ", 60)
	assert.True(t, ClassifyText(above))

	// 20 printable + 80 spaces = 0.2 ratio, below the floor.
	below := strings.Repeat("a", 20) + strings.Repeat(" ", 80)
	assert.False(t, ClassifyText(below))
}
