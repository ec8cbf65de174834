package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/internal/llm"
	"github.com/mattin-ai/mattin/internal/schema"
)

// ---- fakes ----

type fakeStore struct {
	agents map[int]*AgentConfig
}

func (f *fakeStore) AgentConfig(_ context.Context, id int) (*AgentConfig, error) {
	a, ok := f.agents[id]
	if !ok {
		return nil, &AgentNotFoundError{AgentID: id}
	}
	return a, nil
}

type fakeLoader struct {
	text      string
	hasText   bool
	pages     int
	renderErr error

	mu           sync.Mutex
	renderCalled bool
}

func (f *fakeLoader) ExtractText(context.Context, string) string { return f.text }

func (f *fakeLoader) HasPlainText(context.Context, string) bool { return f.hasText }

func (f *fakeLoader) RenderPages(_ context.Context, _, outputDir string) ([]string, error) {
	f.mu.Lock()
	f.renderCalled = true
	f.mu.Unlock()
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	out := make([]string, 0, f.pages)
	for i := 1; i <= f.pages; i++ {
		p := filepath.Join(outputDir, fmt.Sprintf("page-%d.png", i))
		if err := os.WriteFile(p, []byte("png"), 0o600); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// fakeText replies per call index and records every request.
type fakeText struct {
	mu      sync.Mutex
	replies []string // cycled; last one repeats
	errAt   int      // 1-based call number that fails; 0 = never
	calls   []llm.TextRequest
}

func (f *fakeText) Generate(_ context.Context, req llm.TextRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	n := len(f.calls)
	if f.errAt != 0 && n == f.errAt {
		return "", errors.New("model unavailable")
	}
	if len(f.replies) == 0 {
		return "{}", nil
	}
	idx := n - 1
	if idx >= len(f.replies) {
		idx = len(f.replies) - 1
	}
	return f.replies[idx], nil
}

// fakeVision transcribes a page image to a marker derived from its filename.
type fakeVision struct {
	failPage string // base name that errors; "" = none
	mu       sync.Mutex
	seen     []string
}

func (f *fakeVision) Describe(_ context.Context, req llm.VisionRequest) (string, error) {
	base := filepath.Base(req.ImagePath)
	f.mu.Lock()
	f.seen = append(f.seen, base)
	f.mu.Unlock()
	if base == f.failPage {
		return "", errors.New("vision refused")
	}
	return "transcript of " + base, nil
}

type fakeResolver struct {
	text    llm.TextModel
	vision  llm.VisionModel
	textErr error

	visionModelName string
}

func (f *fakeResolver) TextModel(_ constants.Provider, _ string) (llm.TextModel, error) {
	if f.textErr != nil {
		return nil, f.textErr
	}
	return f.text, nil
}

func (f *fakeResolver) VisionModel(_ constants.Provider, model string) (llm.VisionModel, error) {
	f.visionModelName = model
	return f.vision, nil
}

type fakeRecorder struct {
	mu       sync.Mutex
	started  int
	finished []JobOutcome
}

func (f *fakeRecorder) Start(context.Context, int, string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started++
	return uuid.New(), nil
}

func (f *fakeRecorder) Finish(_ context.Context, _ uuid.UUID, outcome JobOutcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finished = append(f.finished, outcome)
	return nil
}

// ---- helpers ----

var docSchema = &schema.Definition{
	ID:   1,
	Name: "doc",
	Fields: []schema.FieldSpec{
		{Name: "title", Type: constants.FieldTypeString},
		{Name: "page_count", Type: constants.FieldTypeInt},
	},
}

func testAgent() *AgentConfig {
	return &AgentConfig{
		ID:           7,
		Name:         "invoices",
		Provider:     constants.ProviderOpenAI,
		TextModel:    "gpt-4o-mini",
		VisionModel:  "gpt-4o-mini",
		OutputSchema: docSchema,
	}
}

func emptyRegistry() schema.Registry {
	return schema.RegistryFunc(func(_ context.Context, id int) (*schema.Definition, error) {
		return nil, &schema.NotFoundError{DefinitionID: id}
	})
}

// scratchInputs creates a fake uploaded document and returns its path plus a
// work dir path inside a temp root.
func scratchInputs(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	doc := filepath.Join(root, "upload.pdf")
	require.NoError(t, os.WriteFile(doc, []byte("%PDF-"), 0o600))
	return doc, filepath.Join(root, "pages")
}

// ---- tests ----

func TestProcessDocumentThreePages(t *testing.T) {
	text := &fakeText{replies: []string{
		`{"title":"Q1 Report","page_count":3}`, // page 1
		`{"title":"Q1 Report"}`,                // page 2
		`{"page_count":3}`,                     // page 3
		`{"title":"Q1 Report","page_count":3}`, // aggregate
	}}
	vision := &fakeVision{}
	loader := &fakeLoader{hasText: true, text: "Q1 Report full text body, three pages of numbers and narrative.", pages: 3}
	recorder := &fakeRecorder{}

	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: testAgent()}},
		emptyRegistry(),
		loader,
		&fakeResolver{text: text, vision: vision},
		recorder,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	run, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusSucceeded, run.Status)
	assert.Equal(t, map[string]any{"title": "Q1 Report", "page_count": float64(3)}, run.Final)

	// every page transcribed, in order
	assert.Equal(t, []string{"page-1.png", "page-2.png", "page-3.png"}, vision.seen)

	// 3 page formats + 1 aggregate
	require.Len(t, text.calls, 4)
	for i := 0; i < 3; i++ {
		assert.Contains(t, text.calls[i].Prompt, fmt.Sprintf("transcript of page-%d.png", i+1))
		assert.NotNil(t, text.calls[i].Schema)
	}
	agg := text.calls[3]
	assert.Contains(t, agg.Prompt, "Page 1 result:")
	assert.Contains(t, agg.Prompt, "Page 3 result:")
	assert.Contains(t, agg.Prompt, "Raw document text:")

	// temp files are gone
	assert.NoFileExists(t, doc)
	assert.NoDirExists(t, workDir)

	// recorded outcome
	require.Len(t, recorder.finished, 1)
	out := recorder.finished[0]
	assert.Equal(t, constants.JobStatusSucceeded, out.Status)
	assert.Equal(t, 3, out.Pages)
	assert.True(t, out.HasPlainText)
	assert.NotEmpty(t, out.Trace)
}

func TestProcessDocumentPageOrderUnderConcurrency(t *testing.T) {
	const pages = 8
	text := &fakeText{} // "{}" for everything; we only care about prompt order
	vision := &fakeVision{}
	loader := &fakeLoader{pages: pages}

	agent := testAgent()
	agent.OutputSchema = nil // unstructured keeps the fakes trivial

	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: agent}},
		emptyRegistry(),
		loader,
		&fakeResolver{text: text, vision: vision},
		nil,
		Config{PageConcurrency: 4},
		nil,
	)

	doc, workDir := scratchInputs(t)
	_, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err)

	// pages format calls arrive in page order regardless of vision concurrency
	require.Len(t, text.calls, pages+1)
	for i := 0; i < pages; i++ {
		assert.Contains(t, text.calls[i].Prompt, fmt.Sprintf("Page %d content:", i+1))
		assert.Contains(t, text.calls[i].Prompt, fmt.Sprintf("transcript of page-%d.png", i+1))
	}
}

func TestProcessDocumentAgentNotFound(t *testing.T) {
	recorder := &fakeRecorder{}
	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{}},
		emptyRegistry(),
		&fakeLoader{},
		&fakeResolver{text: &fakeText{}, vision: &fakeVision{}},
		recorder,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	require.NoError(t, os.MkdirAll(workDir, 0o755))

	_, err := p.ProcessDocument(context.Background(), 404, doc, workDir)
	var notFound *AgentNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 404, notFound.AgentID)

	// cleanup runs even when the agent cannot be resolved
	assert.NoFileExists(t, doc)
	assert.NoDirExists(t, workDir)
	assert.Zero(t, recorder.started)
}

func TestProcessDocumentModelResolutionFatal(t *testing.T) {
	recorder := &fakeRecorder{}
	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: testAgent()}},
		emptyRegistry(),
		&fakeLoader{},
		&fakeResolver{textErr: errors.New("unknown provider"), vision: &fakeVision{}},
		recorder,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	_, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LoadModels")

	assert.NoFileExists(t, doc)
	require.Len(t, recorder.finished, 1)
	assert.Equal(t, constants.JobStatusFailed, recorder.finished[0].Status)
}

func TestProcessDocumentVisionModelFallsBackToTextModel(t *testing.T) {
	agent := testAgent()
	agent.VisionModel = ""
	resolver := &fakeResolver{text: &fakeText{}, vision: &fakeVision{}}

	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: agent}},
		emptyRegistry(),
		&fakeLoader{pages: 1},
		resolver,
		nil,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	_, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err)
	assert.Equal(t, agent.TextModel, resolver.visionModelName)
}

func TestProcessDocumentBrokenSchemaDegradesToUnstructured(t *testing.T) {
	// the output schema references a definition the registry cannot resolve
	agent := testAgent()
	nested := 99
	agent.OutputSchema = &schema.Definition{
		ID:   1,
		Name: "broken",
		Fields: []schema.FieldSpec{
			{Name: "ref", Type: constants.FieldTypeObject, NestedSchemaID: &nested},
		},
	}

	text := &fakeText{replies: []string{"summary of the page", "document summary"}}
	recorder := &fakeRecorder{}
	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: agent}},
		emptyRegistry(),
		&fakeLoader{pages: 1},
		&fakeResolver{text: text, vision: &fakeVision{}},
		recorder,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	run, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err)

	// schema-less fallback wraps the model reply
	assert.Equal(t, map[string]any{"text": "document summary"}, run.Final)
	assert.Nil(t, text.calls[0].Schema)

	require.Len(t, recorder.finished, 1)
	assert.True(t, hasTracePrefix(recorder.finished[0].Trace, "BuildSchema: recovered"))
}

func TestProcessDocumentVisionFailureDegradesToTextPath(t *testing.T) {
	// page 2 of 3 fails: the whole vision step is dropped and formatting
	// falls back to the raw document text as a single unit
	text := &fakeText{replies: []string{
		`{"title":"From Text"}`,
		`{"title":"From Text"}`,
	}}
	loader := &fakeLoader{hasText: true, text: strings.Repeat("body text ", 20), pages: 3}
	recorder := &fakeRecorder{}

	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: testAgent()}},
		emptyRegistry(),
		loader,
		&fakeResolver{text: text, vision: &fakeVision{failPage: "page-2.png"}},
		recorder,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	run, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusSucceeded, run.Status)
	assert.Equal(t, "From Text", run.Final["title"])

	// one format call on the raw text unit, one aggregate
	require.Len(t, text.calls, 2)
	assert.Contains(t, text.calls[0].Prompt, "body text")

	require.Len(t, recorder.finished, 1)
	assert.True(t, hasTracePrefix(recorder.finished[0].Trace, "ExtractVisionText: recovered"))
}

func TestProcessDocumentEverythingFailsYieldsEmpty(t *testing.T) {
	// scanned document (no text layer) whose rendering also fails, and whose
	// aggregate reply violates the schema: terminal state is {} with EMPTY
	text := &fakeText{replies: []string{`{"title": 12345}`}} // schema violation
	loader := &fakeLoader{renderErr: errors.New("poppler crashed")}
	recorder := &fakeRecorder{}

	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: testAgent()}},
		emptyRegistry(),
		loader,
		&fakeResolver{text: text, vision: &fakeVision{}},
		recorder,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	run, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err, "soft failures never abort the run")

	assert.Empty(t, run.Final)
	assert.Equal(t, constants.JobStatusEmpty, run.Status)

	trace := recorder.finished[0].Trace
	assert.True(t, hasTracePrefix(trace, "RenderPageImages: recovered"))
	assert.True(t, hasTracePrefix(trace, "Aggregate: recovered"))
}

func TestProcessDocumentSkipVisionWhenText(t *testing.T) {
	agent := testAgent()
	agent.SkipVisionWhenText = true

	text := &fakeText{replies: []string{
		`{"title":"Text Only","page_count":2}`,
		`{"title":"Text Only","page_count":2}`,
	}}
	loader := &fakeLoader{hasText: true, text: "a perfectly extractable text layer with plenty of content", pages: 3}
	vision := &fakeVision{}

	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: agent}},
		emptyRegistry(),
		loader,
		&fakeResolver{text: text, vision: vision},
		nil,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	run, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err)

	assert.False(t, loader.renderCalled, "skip flag short-circuits the image path")
	assert.Empty(t, vision.seen)
	assert.Equal(t, "Text Only", run.Final["title"])
}

func TestProcessDocumentSkipVisionDeploymentWide(t *testing.T) {
	// the config flag applies even when the agent did not opt in
	text := &fakeText{replies: []string{
		`{"title":"Config Flag","page_count":1}`,
		`{"title":"Config Flag","page_count":1}`,
	}}
	loader := &fakeLoader{hasText: true, text: "a text layer long enough to trust", pages: 2}
	vision := &fakeVision{}

	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: testAgent()}},
		emptyRegistry(),
		loader,
		&fakeResolver{text: text, vision: vision},
		nil,
		Config{SkipVisionWhenText: true},
		nil,
	)

	doc, workDir := scratchInputs(t)
	run, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err)

	assert.False(t, loader.renderCalled)
	assert.Empty(t, vision.seen)
	assert.Equal(t, "Config Flag", run.Final["title"])
}

func TestProcessDocumentVisionRunsDespiteTextByDefault(t *testing.T) {
	// without the skip flag, a text-bearing document still goes through vision
	text := &fakeText{replies: []string{`{"title":"Both"}`}}
	loader := &fakeLoader{hasText: true, text: "extractable text", pages: 2}
	vision := &fakeVision{}

	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: testAgent()}},
		emptyRegistry(),
		loader,
		&fakeResolver{text: text, vision: vision},
		nil,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	_, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err)

	assert.True(t, loader.renderCalled)
	assert.Len(t, vision.seen, 2)
}

func TestProcessDocumentUnstructuredAgent(t *testing.T) {
	agent := testAgent()
	agent.OutputSchema = nil

	text := &fakeText{replies: []string{"page summary", "whole-document summary"}}
	p := NewProcessor(
		&fakeStore{agents: map[int]*AgentConfig{7: agent}},
		emptyRegistry(),
		&fakeLoader{pages: 1},
		&fakeResolver{text: text, vision: &fakeVision{}},
		nil,
		Config{},
		nil,
	)

	doc, workDir := scratchInputs(t)
	run, err := p.ProcessDocument(context.Background(), 7, doc, workDir)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"text": "whole-document summary"}, run.Final)
}

func hasTracePrefix(trace []string, prefix string) bool {
	for _, entry := range trace {
		if strings.HasPrefix(entry, prefix) {
			return true
		}
	}
	return false
}

// sanity check that JobOutcome.Result round-trips as JSON the way the job
// repository stores it
func TestJobOutcomeResultIsJSONSerializable(t *testing.T) {
	out := JobOutcome{
		Status: constants.JobStatusSucceeded,
		Result: map[string]any{"title": "x", "tags": []any{"a", "b"}},
	}
	b, err := json.Marshal(out.Result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"x","tags":["a","b"]}`, string(b))
}
