package llm

import (
	"fmt"
	"strings"
)

const maxContextChars = 6000

// BuildPageSystemPrompt composes the system message for formatting one page of
// extracted text into the structured-output contract.
func BuildPageSystemPrompt(instruction string, hasSchema bool) string {
	parts := []string{
		"You extract structured data from one page of a document.",
	}
	if instruction = strings.TrimSpace(instruction); instruction != "" {
		parts = append(parts, instruction)
	}
	if hasSchema {
		parts = append(parts,
			"Return ONLY JSON that matches the provided JSON Schema.",
			"Never output null. If a field is not visible on this page, omit it.",
		)
	} else {
		parts = append(parts, "Return a concise plain-text summary of the page content.")
	}
	return strings.Join(parts, " ")
}

// BuildPageUserPrompt packages one page's text plus optional whole-document
// context and the document label.
func BuildPageUserPrompt(pageIndex int, pageText, documentText, documentLabel string) string {
	var b strings.Builder
	if documentLabel != "" {
		fmt.Fprintf(&b, "Document: %s\n", documentLabel)
	}
	fmt.Fprintf(&b, "Page %d content:\n%s\n", pageIndex+1, strings.TrimSpace(pageText))
	if doc := strings.TrimSpace(documentText); doc != "" {
		b.WriteString("\nFull document text (context, first ~6k chars):\n")
		if len(doc) > maxContextChars {
			b.WriteString(doc[:maxContextChars])
			b.WriteString("\n…(truncated)")
		} else {
			b.WriteString(doc)
		}
	}
	return b.String()
}

// BuildAggregateSystemPrompt composes the system message for reconciling
// per-page results into one document-level instance.
func BuildAggregateSystemPrompt(instruction string, hasSchema bool) string {
	parts := []string{
		"You merge per-page extraction results into exactly one document-level result.",
		"Reconcile duplicate or conflicting values; prefer the most complete and most frequent value.",
	}
	if instruction = strings.TrimSpace(instruction); instruction != "" {
		parts = append(parts, instruction)
	}
	if hasSchema {
		parts = append(parts,
			"Return ONLY JSON that matches the provided JSON Schema.",
			"Never output null. If a field is unknown, omit it.",
		)
	}
	return strings.Join(parts, " ")
}

// BuildAggregateUserPrompt packages the ordered per-page payloads and, when
// the document had a text layer, the raw document text.
func BuildAggregateUserPrompt(pages []string, rawDocumentText, documentLabel string) string {
	var b strings.Builder
	if documentLabel != "" {
		fmt.Fprintf(&b, "Document: %s\n", documentLabel)
	}
	if len(pages) == 0 {
		b.WriteString("No per-page results were produced.\n")
	}
	for i, p := range pages {
		fmt.Fprintf(&b, "\nPage %d result:\n%s\n", i+1, strings.TrimSpace(p))
	}
	if doc := strings.TrimSpace(rawDocumentText); doc != "" {
		b.WriteString("\nRaw document text:\n")
		if len(doc) > maxContextChars {
			b.WriteString(doc[:maxContextChars])
			b.WriteString("\n…(truncated)")
		} else {
			b.WriteString(doc)
		}
	}
	return b.String()
}
