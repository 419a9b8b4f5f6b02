package translate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/berrythewa/cliplate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestOpenAI_Translate(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/responses", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "resp_1",
			"object": "response",
			"created_at": 1700000000,
			"model": "gpt-4o-mini",
			"status": "completed",
			"output": [{
				"type": "message",
				"id": "msg_1",
				"role": "assistant",
				"status": "completed",
				"content": [{"type": "output_text", "text": " gato\n", "annotations": []}]
			}]
		}`))
	}))
	defer server.Close()

	tr, err := NewOpenAI(config.OpenAIConfig{
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL,
	}, time.Second, zaptest.NewLogger(t))
	require.NoError(t, err)

	got, err := tr.Translate(context.Background(), "cat", "pt")
	require.NoError(t, err)
	assert.Equal(t, "gato", got.Text)
	assert.Equal(t, "openai", got.Provider)
	assert.Equal(t, "pt", got.TargetLang)

	assert.Equal(t, "gpt-4o-mini", body["model"])
	raw, _ := json.Marshal(body["input"])
	assert.Contains(t, string(raw), "Portuguese")
	assert.Contains(t, string(raw), `"cat"`)
}
