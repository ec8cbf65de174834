package factory

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mattin-ai/mattin/constants"
	"github.com/mattin-ai/mattin/internal/llm"
	"github.com/mattin-ai/mattin/internal/llm/anthropic"
	"github.com/mattin-ai/mattin/internal/llm/mistral"
	"github.com/mattin-ai/mattin/internal/llm/ollama"
	"github.com/mattin-ai/mattin/internal/llm/openai"
)

// Config carries the per-deployment credentials and knobs shared by every
// model the factory hands out. Model names come from the agent configuration.
type Config struct {
	OpenAIKey    string
	AnthropicKey string
	MistralKey   string
	OllamaURL    string
	Temperature  float32
	CallTimeout  time.Duration
}

// Factory resolves (provider, model) pairs from agent configurations into
// concrete clients. Every client implements both llm.TextModel and
// llm.VisionModel; whether a given model can actually see images is the
// agent author's responsibility.
type Factory struct {
	cfg Config
	log *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 60 * time.Second
	}
	return &Factory{cfg: cfg, log: logger}
}

// TextModel returns a text-generation client for the provider/model pair.
func (f *Factory) TextModel(provider constants.Provider, model string) (llm.TextModel, error) {
	return f.client(provider, model)
}

// VisionModel returns a vision-capable client for the provider/model pair.
func (f *Factory) VisionModel(provider constants.Provider, model string) (llm.VisionModel, error) {
	return f.client(provider, model)
}

type modelClient interface {
	llm.TextModel
	llm.VisionModel
}

func (f *Factory) client(provider constants.Provider, model string) (modelClient, error) {
	if model == "" {
		return nil, fmt.Errorf("empty model name for provider %q", provider)
	}
	switch provider {
	case constants.ProviderOpenAI:
		return openai.NewClient(openai.Config{
			APIKey:      f.cfg.OpenAIKey,
			Model:       model,
			Temperature: f.cfg.Temperature,
			Timeout:     f.cfg.CallTimeout,
		}, f.log), nil
	case constants.ProviderAnthropic:
		return anthropic.NewClient(anthropic.Config{
			APIKey:      f.cfg.AnthropicKey,
			Model:       model,
			Temperature: f.cfg.Temperature,
			Timeout:     f.cfg.CallTimeout,
		}, f.log), nil
	case constants.ProviderMistral:
		return mistral.NewClient(mistral.Config{
			APIKey:      f.cfg.MistralKey,
			Model:       model,
			Temperature: f.cfg.Temperature,
			Timeout:     f.cfg.CallTimeout,
		}, f.log), nil
	case constants.ProviderOllama:
		return ollama.NewClient(ollama.Config{
			BaseURL:     f.cfg.OllamaURL,
			Model:       model,
			Temperature: f.cfg.Temperature,
			Timeout:     f.cfg.CallTimeout,
		}, f.log), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
