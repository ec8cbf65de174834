package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattin-ai/mattin/internal/llm"
)

func newTestServer(t *testing.T, reply string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": reply}},
			},
		})
	}))
}

func testClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gpt-4o-mini",
	}, nil)
}

func TestGeneratePlain(t *testing.T) {
	var captured map[string]any
	srv := newTestServer(t, "  hello reply  ", &captured)
	defer srv.Close()

	got, err := testClient(srv.URL).Generate(context.Background(), llm.TextRequest{
		System: "be terse",
		Prompt: "say hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello reply", got, "reply is trimmed")

	assert.Equal(t, "gpt-4o-mini", captured["model"])
	assert.Nil(t, captured["response_format"], "no schema, no response_format")

	msgs := captured["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "say hello", msgs[1].(map[string]any)["content"])
}

func TestGenerateWithSchema(t *testing.T) {
	var captured map[string]any
	srv := newTestServer(t, `{"title":"x"}`, &captured)
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), llm.TextRequest{
		System: "extract",
		Prompt: "doc text",
		Schema: map[string]any{"type": "object"},
	})
	require.NoError(t, err)

	rf := captured["response_format"].(map[string]any)
	assert.Equal(t, "json_object", rf["type"])

	msgs := captured["messages"].([]any)
	require.Len(t, msgs, 3)
	last := msgs[2].(map[string]any)
	assert.Equal(t, "system", last["role"])
	assert.Contains(t, last["content"], "JSON Schema:")
}

func TestDescribeSendsDataURL(t *testing.T) {
	var captured map[string]any
	srv := newTestServer(t, "a scanned invoice", &captured)
	defer srv.Close()

	img := filepath.Join(t.TempDir(), "page-1.png")
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	require.NoError(t, os.WriteFile(img, pngMagic, 0o600))

	got, err := testClient(srv.URL).Describe(context.Background(), llm.VisionRequest{
		Instruction: "transcribe this page",
		ImagePath:   img,
	})
	require.NoError(t, err)
	assert.Equal(t, "a scanned invoice", got)

	msgs := captured["messages"].([]any)
	require.Len(t, msgs, 1)
	parts := msgs[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	assert.Equal(t, "transcribe this page", parts[0].(map[string]any)["text"])
	url := parts[1].(map[string]any)["image_url"].(map[string]any)["url"].(string)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"), url)
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), llm.TextRequest{Prompt: "p"})
	require.Error(t, err)
}

func TestGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), llm.TextRequest{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
