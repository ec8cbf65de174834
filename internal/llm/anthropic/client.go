package anthropic

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

const apiVersion = "2023-06-01"

// Config for the Anthropic client.
type Config struct {
	APIKey      string        // if empty, falls back to env ANTHROPIC_API_KEY
	BaseURL     string        // default https://api.anthropic.com/v1
	Model       string        // e.g., "claude-3-5-haiku-latest"
	Temperature float32       // 0..1
	MaxTokens   int           // default 4096
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-3-5-haiku-latest"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
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

// Generate implements llm.TextModel against the messages API. Anthropic has
// no response_format knob, so the schema constraint lives in the system text.
func (c *Client) Generate(ctx context.Context, req llm.TextRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	system := req.System
	if req.Schema != nil {
		system += "\nReturn ONLY JSON that matches this JSON Schema:\n" + mustJSON(req.Schema)
	}
	temp := req.Temperature
	if temp == 0 {
		temp = c.cfg.Temperature
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"max_tokens":  c.cfg.MaxTokens,
		"temperature": temp,
		"system":      system,
		"messages": []map[string]any{
			{"role": "user", "content": req.Prompt},
		},
	}

	c.log.Info("anthropic.generate.start", "req_id", rid, "model", c.cfg.Model, "prompt_len", len(req.Prompt), "has_schema", req.Schema != nil)

	content, err := c.messages(ctx, body)
	if err != nil {
		c.log.Error("anthropic.generate.error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	c.log.Info("anthropic.generate.ok", "req_id", rid, "reply_len", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}

// Describe implements llm.VisionModel with a base64 image source block.
func (c *Client) Describe(ctx context.Context, req llm.VisionRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	data, mediaType, err := llm.ReadImageBase64(req.ImagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": c.cfg.MaxTokens,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "image",
						"source": map[string]any{
							"type":       "base64",
							"media_type": mediaType,
							"data":       data,
						},
					},
					{"type": "text", "text": req.Instruction},
				},
			},
		},
	}

	c.log.Info("anthropic.describe.start", "req_id", rid, "model", c.cfg.Model, "image", req.ImagePath)

	content, err := c.messages(ctx, body)
	if err != nil {
		c.log.Error("anthropic.describe.error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	c.log.Info("anthropic.describe.ok", "req_id", rid, "reply_len", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}

func (c *Client) messages(ctx context.Context, body map[string]any) (string, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/messages"
	headers := map[string]string{
		"x-api-key":         c.cfg.APIKey,
		"anthropic-version": apiVersion,
	}
	raw, _, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if err != nil {
		return "", err
	}

	var mr struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &mr); err != nil {
		return "", fmt.Errorf("decode anthropic response: %w", err)
	}
	var b strings.Builder
	for _, blk := range mr.Content {
		if blk.Type == "text" {
			b.WriteString(blk.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text content in anthropic response")
	}
	return strings.TrimSpace(b.String()), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
