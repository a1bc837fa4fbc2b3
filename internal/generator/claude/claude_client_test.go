package claude_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor/internal/config"
	"tailor/internal/domain"
	"tailor/internal/generator"
	"tailor/internal/generator/claude"
	"tailor/internal/port"
)

func newClaudeTestClient(serverURL string) *claude.Client {
	cfg := &config.ProviderConfig{
		Provider:     "claude",
		APIKey:       "test-claude-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  30,
	}
	return claude.NewClientWithEndpoint(cfg, serverURL)
}

func claudeSuccessResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": text},
		},
		"stop_reason": "end_turn",
	}
}

func TestClaudeClient_Generate_Success(t *testing.T) {
	completion := "<RESUME>\nEXPERIENCE\nShipped\n</RESUME>"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-claude-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.NotEmpty(t, reqBody["system"])

		messages := reqBody["messages"].([]interface{})
		assert.Len(t, messages, 1)
		assert.Equal(t, "user", messages[0].(map[string]interface{})["role"])

		_ = json.NewEncoder(w).Encode(claudeSuccessResponse(completion))
	}))
	defer server.Close()

	out, err := newClaudeTestClient(server.URL).Generate(context.Background(),
		generator.BuildTailorInput("resume", "jd"))

	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-20250514", out.Model)
	assert.Equal(t, completion, out.Text)
}

func TestClaudeClient_Generate_SkipsNonTextBlocks(t *testing.T) {
	body := map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "thinking", "thinking": "hmm"},
			{"type": "text", "text": "actual output"},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	out, err := newClaudeTestClient(server.URL).Generate(context.Background(), port.GenerateInput{User: "x"})

	require.NoError(t, err)
	assert.Equal(t, "actual output", out.Text)
}

func TestClaudeClient_Generate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newClaudeTestClient(server.URL).Generate(context.Background(), port.GenerateInput{User: "x"})

	require.Error(t, err)
	var rlErr *generator.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "claude", rlErr.Provider)
}

func TestClaudeClient_Generate_EmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(claudeSuccessResponse("   "))
	}))
	defer server.Close()

	_, err := newClaudeTestClient(server.URL).Generate(context.Background(), port.GenerateInput{User: "x"})

	assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestClaudeClient_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"authentication_error"}}`))
	}))
	defer server.Close()

	_, err := newClaudeTestClient(server.URL).Generate(context.Background(), port.GenerateInput{User: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
