package mistral

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mattin-ai/mattin/internal/llm"
)

// Config for the Mistral client. The API is chat/completions compatible, so
// the request shapes mirror the OpenAI client.
type Config struct {
	APIKey      string        // if empty, falls back to env MISTRAL_API_KEY
	BaseURL     string        // default https://api.mistral.ai/v1
	Model       string        // e.g., "mistral-small-latest"; vision needs a pixtral model
	Temperature float32
	Timeout     time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("MISTRAL_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mistral.ai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "mistral-small-latest"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// Generate implements llm.TextModel.
func (c *Client) Generate(ctx context.Context, req llm.TextRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	temp := req.Temperature
	if temp == 0 {
		temp = c.cfg.Temperature
	}

	messages := []map[string]any{
		{"role": "system", "content": req.System},
		{"role": "user", "content": req.Prompt},
	}
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": temp,
		"messages":    messages,
	}
	if req.Schema != nil {
		body["response_format"] = map[string]any{"type": "json_object"}
		messages = append(messages, map[string]any{
			"role": "system", "content": "JSON Schema:\n" + mustJSON(req.Schema),
		})
		body["messages"] = messages
	}

	c.log.Info("mistral.generate.start", "req_id", rid, "model", c.cfg.Model, "prompt_len", len(req.Prompt), "has_schema", req.Schema != nil)

	content, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("mistral.generate.error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	c.log.Info("mistral.generate.ok", "req_id", rid, "reply_len", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}

// Describe implements llm.VisionModel via an inline data URL image_url part.
func (c *Client) Describe(ctx context.Context, req llm.VisionRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	dataURL, err := llm.ReadImageDataURL(req.ImagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": req.Instruction},
					{"type": "image_url", "image_url": dataURL},
				},
			},
		},
	}

	c.log.Info("mistral.describe.start", "req_id", rid, "model", c.cfg.Model, "image", req.ImagePath)

	content, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("mistral.describe.error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	c.log.Info("mistral.describe.ok", "req_id", rid, "reply_len", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}

func (c *Client) chat(ctx context.Context, body map[string]any) (string, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode mistral response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in mistral response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
