package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPageSystemPrompt(t *testing.T) {
	p := BuildPageSystemPrompt("Focus on invoice totals.", true)
	assert.Contains(t, p, "Focus on invoice totals.")
	assert.Contains(t, p, "JSON Schema")
	assert.Contains(t, p, "Never output null")

	p = BuildPageSystemPrompt("  ", false)
	assert.NotContains(t, p, "JSON Schema")
	assert.Contains(t, p, "plain-text summary")
}

func TestBuildPageUserPrompt(t *testing.T) {
	p := BuildPageUserPrompt(2, "  line one  ", "", "invoice.pdf")
	assert.True(t, strings.HasPrefix(p, "Document: invoice.pdf\n"))
	assert.Contains(t, p, "Page 3 content:\nline one")
	assert.NotContains(t, p, "Full document text")
}

func TestBuildPageUserPromptTruncatesContext(t *testing.T) {
	doc := strings.Repeat("x", maxContextChars+500)
	p := BuildPageUserPrompt(0, "page", doc, "")
	assert.Contains(t, p, "Full document text")
	assert.Contains(t, p, "(truncated)")
	assert.Less(t, len(p), len(doc))
}

func TestBuildAggregateUserPrompt(t *testing.T) {
	p := BuildAggregateUserPrompt([]string{`{"a":1}`, `{"a":2}`}, "raw text", "doc.pdf")
	assert.Contains(t, p, "Page 1 result:\n{\"a\":1}")
	assert.Contains(t, p, "Page 2 result:\n{\"a\":2}")
	assert.Contains(t, p, "Raw document text:\nraw text")

	p = BuildAggregateUserPrompt(nil, "", "")
	assert.Contains(t, p, "No per-page results")
}

func TestBuildAggregateSystemPromptWithoutSchema(t *testing.T) {
	p := BuildAggregateSystemPrompt("", false)
	assert.Contains(t, p, "exactly one document-level result")
	assert.NotContains(t, p, "JSON Schema")
}
