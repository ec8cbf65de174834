package llm

import "context"

// TextRequest is one text-generation call. When Schema is set the provider is
// asked for JSON conforming to it (structured output); callers validate the
// reply against the compiled contract themselves.
type TextRequest struct {
	System      string
	Prompt      string
	Schema      map[string]any // optional structured-output constraint
	Temperature float32
}

// VisionRequest is one vision call: an instruction plus a page image on disk.
type VisionRequest struct {
	Instruction string
	ImagePath   string
}

// TextModel is the interface the pipeline depends on for text generation.
type TextModel interface {
	Generate(ctx context.Context, req TextRequest) (string, error)
}

// VisionModel accepts an image plus instruction and returns a transcription.
type VisionModel interface {
	Describe(ctx context.Context, req VisionRequest) (string, error)
}
