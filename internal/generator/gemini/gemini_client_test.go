package gemini_test

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
	"tailor/internal/generator"
	"tailor/internal/generator/gemini"
	"tailor/internal/port"
)

func newGeminiTestClient(serverURL string) *gemini.Client {
	cfg := &config.ProviderConfig{
		Provider:     "gemini",
		APIKey:       "test-gemini-key",
		DefaultModel: "gemini-1.5-flash",
		TimeoutSecs:  30,
	}
	return gemini.NewClientWithEndpoint(cfg, serverURL)
}

func geminiSuccessResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	completion := "<RESUME>\nSUMMARY\nGo engineer\n</RESUME>\n<MATCH_REPORT>\n- keywords: Go\n</MATCH_REPORT>"
	responseBody := geminiSuccessResponse(completion)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request headers
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Verify request body
		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)

		sys := reqBody["system_instruction"].(map[string]interface{})
		sysParts := sys["parts"].([]interface{})
		assert.Len(t, sysParts, 1)
		assert.Contains(t, sysParts[0].(map[string]interface{})["text"], "ATS")

		contents := reqBody["contents"].([]interface{})
		assert.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		assert.Len(t, parts, 1)
		assert.Contains(t, parts[0].(map[string]interface{})["text"], "[RESUME]")

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
	}))
	defer server.Close()

	c := newGeminiTestClient(server.URL)

	input := generator.BuildTailorInput("resume body", "jd body")
	out, err := c.Generate(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "gemini-1.5-flash", out.Model)
	assert.Equal(t, completion, out.Text)
}

func TestGeminiClient_Generate_MultiPartResponseJoined(t *testing.T) {
	body := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": "first "},
						{"text": "second"},
					},
				},
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	out, err := newGeminiTestClient(server.URL).Generate(context.Background(), port.GenerateInput{User: "x"})

	require.NoError(t, err)
	assert.Equal(t, "first second", out.Text)
}

func TestGeminiClient_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer server.Close()

	out, err := newGeminiTestClient(server.URL).Generate(context.Background(), port.GenerateInput{User: "x"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGeminiClient_Generate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newGeminiTestClient(server.URL).Generate(context.Background(), port.GenerateInput{User: "x"})

	require.Error(t, err)
	var rlErr *generator.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "gemini", rlErr.Provider)
	assert.Equal(t, float64(7), rlErr.RetryAfter.Seconds())
}

func TestGeminiClient_Generate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newGeminiTestClient(server.URL).Generate(context.Background(), port.GenerateInput{User: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
