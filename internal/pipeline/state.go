package pipeline

import (
	"context"
	"fmt"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/internal/llm"
	"github.com/mattin-ai/mattin/internal/schema"
)

// AgentConfig is the read-only configuration value the pipeline runs under.
// It is loaded once per invocation and never mutated.
type AgentConfig struct {
	ID                 int
	Name               string
	Provider           constants.Provider
	TextModel          string
	VisionModel        string
	VisionInstruction  string
	TextInstruction    string
	OutputSchema       *schema.Definition // nil when no output parser is configured
	SkipVisionWhenText bool
	Temperature        float32
}

// AgentStore resolves an agent id to its configuration.
type AgentStore interface {
	AgentConfig(ctx context.Context, id int) (*AgentConfig, error)
}

// AgentNotFoundError is fatal: it propagates to the caller (cleanup still runs).
type AgentNotFoundError struct {
	AgentID int
}

func (e *AgentNotFoundError) Error() string {
	return fmt.Sprintf("agent %d not found", e.AgentID)
}

// VisionPage pairs one rendered page image with its vision transcription.
type VisionPage struct {
	ImagePath string
	Text      string
}

// State is the single mutable record threaded through the workflow. Each node
// writes only its own fields (single-writer discipline); the trace is
// append-only and observability-only.
type State struct {
	// inputs, immutable
	DocumentPath string
	WorkDir      string
	Agent        *AgentConfig

	// set once by LoadModels
	textModel   llm.TextModel
	visionModel llm.VisionModel

	// set once by BuildSchema; nil means unstructured fallback
	Contract *schema.Contract

	// set once by ClassifyText
	HasPlainText bool

	// set once by ExtractPlainText; empty on the pure vision path
	RawText string

	// set once by RenderPageImages, in page order
	PageImages []string

	// set once by ExtractVisionText, aligned with PageImages
	VisionPages []VisionPage

	// set once by FormatPages, aligned by page index
	PageResults []map[string]any

	// set once by Aggregate; the pipeline's output, {} on soft failure
	Final map[string]any

	Trace []string
}

func (s *State) trace(format string, args ...any) {
	s.Trace = append(s.Trace, fmt.Sprintf(format, args...))
}
