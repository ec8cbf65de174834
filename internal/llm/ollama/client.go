package ollama

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

// Config for the Ollama client. No API key; the daemon is expected local or
// on a trusted network.
type Config struct {
	BaseURL     string // if empty, falls back to env OLLAMA_URL, then localhost
	Model       string // e.g., "llama3.2"; vision needs a multimodal model like "llama3.2-vision"
	Temperature float32
	Timeout     time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("OLLAMA_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3.2"
	}
	if cfg.Timeout <= 0 {
		// local inference is slow; give it more room than hosted APIs
		cfg.Timeout = 120 * time.Second
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

// Generate implements llm.TextModel against /api/chat. With a schema we use
// format=json plus the schema in the system message.
func (c *Client) Generate(ctx context.Context, req llm.TextRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	system := req.System
	temp := req.Temperature
	if temp == 0 {
		temp = c.cfg.Temperature
	}

	body := map[string]any{
		"model":  c.cfg.Model,
		"stream": false,
		"options": map[string]any{
			"temperature": temp,
		},
	}
	if req.Schema != nil {
		body["format"] = "json"
		system += "\nReturn ONLY JSON that matches this JSON Schema:\n" + mustJSON(req.Schema)
	}
	body["messages"] = []map[string]any{
		{"role": "system", "content": system},
		{"role": "user", "content": req.Prompt},
	}

	c.log.Info("ollama.generate.start", "req_id", rid, "model", c.cfg.Model, "prompt_len", len(req.Prompt), "has_schema", req.Schema != nil)

	content, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("ollama.generate.error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	c.log.Info("ollama.generate.ok", "req_id", rid, "reply_len", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}

// Describe implements llm.VisionModel; Ollama takes raw base64 in the images array.
func (c *Client) Describe(ctx context.Context, req llm.VisionRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	data, _, err := llm.ReadImageBase64(req.ImagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	body := map[string]any{
		"model":  c.cfg.Model,
		"stream": false,
		"messages": []map[string]any{
			{
				"role":    "user",
				"content": req.Instruction,
				"images":  []string{data},
			},
		},
	}

	c.log.Info("ollama.describe.start", "req_id", rid, "model", c.cfg.Model, "image", req.ImagePath)

	content, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("ollama.describe.error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	c.log.Info("ollama.describe.ok", "req_id", rid, "reply_len", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}

func (c *Client) chat(ctx context.Context, body map[string]any) (string, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/chat"
	raw, _, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, nil, c.log)
	if err != nil {
		return "", err
	}

	var cr struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	if cr.Message.Content == "" {
		return "", fmt.Errorf("empty message content in ollama response")
	}
	return strings.TrimSpace(cr.Message.Content), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
