package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mattin-ai/mattin/internal/llm"
	"github.com/mattin-ai/mattin/internal/schema"
)

// loadModels resolves the agent's text and vision models. Failure here is
// fatal: with no models nothing downstream can run.
func (p *Processor) loadModels(ctx context.Context, s *State) error {
	text, err := p.models.TextModel(s.Agent.Provider, s.Agent.TextModel)
	if err != nil {
		return fmt.Errorf("resolve text model: %w", err)
	}
	visionName := s.Agent.VisionModel
	if visionName == "" {
		// fall back to the text model; agents may configure one multimodal model
		visionName = s.Agent.TextModel
	}
	vision, err := p.models.VisionModel(s.Agent.Provider, visionName)
	if err != nil {
		return fmt.Errorf("resolve vision model: %w", err)
	}
	s.textModel = text
	s.visionModel = vision
	return nil
}

// buildSchema resolves the agent's structured-output contract. A broken
// definition (cycle, missing reference) is swallowed by the runner: the
// pipeline proceeds schema-less and output degrades to plain text.
func (p *Processor) buildSchema(ctx context.Context, s *State) error {
	if s.Agent.OutputSchema == nil {
		return nil
	}
	contract, err := schema.Build(ctx, s.Agent.OutputSchema, p.registry)
	if err != nil {
		return fmt.Errorf("build schema %q: %w", s.Agent.OutputSchema.Name, err)
	}
	s.Contract = contract
	return nil
}

func (p *Processor) classifyText(ctx context.Context, s *State) error {
	s.HasPlainText = p.loader.HasPlainText(ctx, s.DocumentPath)
	return nil
}

// extractPlainText runs only on the text-bearing branch.
func (p *Processor) extractPlainText(ctx context.Context, s *State) error {
	if !s.HasPlainText {
		return nil
	}
	s.RawText = p.loader.ExtractText(ctx, s.DocumentPath)
	return nil
}

// skipVision reports whether the image path is skipped for documents whose
// text layer was successfully extracted, either per agent or deployment-wide.
func (p *Processor) skipVision(s *State) bool {
	return (s.Agent.SkipVisionWhenText || p.skipVisionWhenText) && s.HasPlainText && s.RawText != ""
}

func (p *Processor) renderPages(ctx context.Context, s *State) error {
	if p.skipVision(s) {
		s.trace("RenderPageImages: skipped (plain text present)")
		return nil
	}
	pages, err := p.loader.RenderPages(ctx, s.DocumentPath, s.WorkDir)
	if err != nil {
		return err
	}
	s.PageImages = pages
	return nil
}

// extractVisionText transcribes every page image. Pages are independent, so
// they may run concurrently; results stay aligned by page index. The whole
// step is one failure domain: any page error empties the result set so
// downstream steps operate on zero pages rather than a gap.
func (p *Processor) extractVisionText(ctx context.Context, s *State) error {
	if len(s.PageImages) == 0 {
		return nil
	}

	results := make([]VisionPage, len(s.PageImages))
	g, gctx := errgroup.WithContext(ctx)
	limit := p.pageConcurrency
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, img := range s.PageImages {
		g.Go(func() error {
			text, err := s.visionModel.Describe(gctx, llm.VisionRequest{
				Instruction: s.Agent.VisionInstruction,
				ImagePath:   img,
			})
			if err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}
			results[i] = VisionPage{ImagePath: img, Text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	s.VisionPages = results
	return nil
}

// formatPages turns each unit of extracted text into one structured-output
// instance. Formatting is one failure domain: any unit error fails the whole
// step and the runner records an empty list.
func (p *Processor) formatPages(ctx context.Context, s *State) error {
	units := make([]string, 0, len(s.VisionPages))
	for _, vp := range s.VisionPages {
		units = append(units, vp.Text)
	}
	if len(units) == 0 && s.RawText != "" {
		// skip-vision path: the raw document text is the single unit
		units = append(units, s.RawText)
	}
	if len(units) == 0 {
		return nil
	}

	results := make([]map[string]any, 0, len(units))
	for i, unit := range units {
		instance, err := p.formatOne(ctx, s, i, unit)
		if err != nil {
			return fmt.Errorf("format page %d: %w", i+1, err)
		}
		results = append(results, instance)
	}
	s.PageResults = results
	return nil
}

func (p *Processor) formatOne(ctx context.Context, s *State, pageIndex int, unit string) (map[string]any, error) {
	req := llm.TextRequest{
		System:      llm.BuildPageSystemPrompt(s.Agent.TextInstruction, s.Contract != nil),
		Prompt:      llm.BuildPageUserPrompt(pageIndex, unit, s.RawText, s.documentLabel()),
		Temperature: s.Agent.Temperature,
	}
	if s.Contract != nil {
		req.Schema = s.Contract.JSONSchema()
	}
	reply, err := s.textModel.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.Contract == nil {
		// no output parser configured: wrap the raw reply minimally
		return map[string]any{"text": reply}, nil
	}
	return s.Contract.Decode(llm.ExtractJSON(reply))
}

// aggregate reconciles the per-page instances (or the raw text, when no pages
// were produced) into one document-level instance. The model does the
// reconciliation; this step only assembles the payload. Its soft failure is
// terminal: the caller receives {} rather than an error.
func (p *Processor) aggregate(ctx context.Context, s *State) error {
	pages := make([]string, 0, len(s.PageResults))
	for _, r := range s.PageResults {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal page result: %w", err)
		}
		pages = append(pages, string(b))
	}

	rawText := ""
	if s.HasPlainText {
		rawText = s.RawText
	}

	req := llm.TextRequest{
		System:      llm.BuildAggregateSystemPrompt(s.Agent.TextInstruction, s.Contract != nil),
		Prompt:      llm.BuildAggregateUserPrompt(pages, rawText, s.documentLabel()),
		Temperature: s.Agent.Temperature,
	}
	if s.Contract != nil {
		req.Schema = s.Contract.JSONSchema()
	}
	reply, err := s.textModel.Generate(ctx, req)
	if err != nil {
		return err
	}
	if s.Contract == nil {
		s.Final = map[string]any{"text": reply}
		return nil
	}
	final, err := s.Contract.Decode(llm.ExtractJSON(reply))
	if err != nil {
		return err
	}
	s.Final = final
	return nil
}
