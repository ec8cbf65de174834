package pipeline

import (
	"context"
	"fmt"
)

// node is one step of the workflow. Fatal nodes abort the run; all other
// failures are caught by the runner, trace-logged, and recovered by the
// node's reset so the graph always reaches Aggregate and END.
type node struct {
	name  string
	fatal bool
	run   func(ctx context.Context, s *State) error
	reset func(s *State) // safe default partial state after a soft failure
}

// plan is the node sequence for one run. The DAG is small and fixed, so it is
// a plain slice rather than a graph engine; the two conditional nodes consult
// the classification result at run time. By default page rendering and vision
// extraction run on BOTH branches; classification only adds plain-text
// extraction and tells aggregation whether raw text is worth considering.
// The agent's skip-vision flag is the one short-circuit of the image path.
func (p *Processor) plan() []node {
	return []node{
		{name: "LoadModels", fatal: true, run: p.loadModels},
		{name: "BuildSchema", run: p.buildSchema, reset: func(s *State) { s.Contract = nil }},
		{name: "ClassifyText", run: p.classifyText, reset: func(s *State) { s.HasPlainText = false }},
		{name: "ExtractPlainText", run: p.extractPlainText, reset: func(s *State) { s.RawText = "" }},
		{name: "RenderPageImages", run: p.renderPages, reset: func(s *State) { s.PageImages = nil }},
		{name: "ExtractVisionText", run: p.extractVisionText, reset: func(s *State) { s.VisionPages = nil }},
		{name: "FormatPages", run: p.formatPages, reset: func(s *State) { s.PageResults = nil }},
		{name: "Aggregate", run: p.aggregate, reset: func(s *State) { s.Final = map[string]any{} }},
	}
}

// execute walks the plan start to finish. Only fatal nodes propagate errors.
func (p *Processor) execute(ctx context.Context, s *State) error {
	for _, n := range p.plan() {
		if err := n.run(ctx, s); err != nil {
			if n.fatal {
				s.trace("%s: fatal: %v", n.name, err)
				return fmt.Errorf("%s: %w", n.name, err)
			}
			p.logger.Warn("pipeline.step.soft_failure", "step", n.name, "document", s.DocumentPath, "error", err)
			s.trace("%s: recovered: %v", n.name, err)
			if n.reset != nil {
				n.reset(s)
			}
			stageFailures.WithLabelValues(n.name).Inc()
			continue
		}
		s.trace("%s: ok", n.name)
	}
	return nil
}
