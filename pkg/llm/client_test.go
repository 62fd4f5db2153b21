package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newspulse/pkg/domain"
)

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "0.75", r.Header.Get(QualityWeightHeader))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-2024-05-13", req.Model)
		assert.Equal(t, 200, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[0].Role)
		assert.Equal(t, "classify me", req.Messages[0].Content)
		assert.Nil(t, req.ResponseFormat)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Model: "router/selected-model",
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: `{"sentiment_score": 4}`}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Options{MaxTokens: 200, Temperature: 0.1, Timeout: 5 * time.Second})
	weight := 0.75
	resp, err := client.Complete(context.Background(), CompletionRequest{
		Prompt:        "classify me",
		Model:         "gpt-4o-2024-05-13",
		Endpoint:      server.URL + "/v1/",
		APIKey:        "test-key",
		QualityWeight: &weight,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"sentiment_score": 4}`, resp.Content)
	assert.Equal(t, "router/selected-model", resp.Model)
}

func TestClient_CompleteNoWeightAndModelFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasWeight := r.Header[QualityWeightHeader]
		assert.False(t, hasWeight)

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, req.ResponseFormat.Type)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "{}"}}},
		})
	}))
	defer server.Close()

	client := NewClient(Options{UseJSONMode: true})
	resp, err := client.Complete(context.Background(), CompletionRequest{
		Prompt: "p", Model: "local-model", Endpoint: server.URL, APIKey: "k",
	})
	require.NoError(t, err)
	assert.Equal(t, "local-model", resp.Model)
	assert.Equal(t, "{}", resp.Content)
}

func TestClient_CompleteErrors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		client := NewClient(Options{})
		for _, req := range []CompletionRequest{
			{Model: "m", APIKey: "k"},
			{Endpoint: "http://localhost", APIKey: "k"},
			{Endpoint: "http://localhost", Model: "m"},
		} {
			_, err := client.Complete(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrModelNotConfigured)
		}
	})

	t.Run("server error", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
		}))
		defer server.Close()

		client := NewClient(Options{})
		_, err := client.Complete(context.Background(), CompletionRequest{
			Prompt: "p", Model: "m", Endpoint: server.URL, APIKey: "k",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm request failed")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"model":"m","choices":[]}`))
		}))
		defer server.Close()

		client := NewClient(Options{})
		_, err := client.Complete(context.Background(), CompletionRequest{
			Prompt: "p", Model: "m", Endpoint: server.URL, APIKey: "k",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no response from llm")
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(domain.Article{
		ID:        42,
		Headline:  "Chipmaker beats estimates",
		Summary:   "Revenue up",
		Category:  "technology",
		URL:       "https://example.com/a",
		Provider:  "Reuters",
		Related:   []string{"NVDA", "AMD"},
		Published: 1700000000,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "You are a news analyst for a financial news company."))
	for _, key := range []string{"sentiment_score", "company_category", "company_ticker", "reasoning"} {
		assert.Contains(t, prompt, key)
	}

	idx := strings.LastIndex(prompt, "**Article:** ")
	require.Positive(t, idx)
	var article map[string]any
	require.NoError(t, json.Unmarshal([]byte(prompt[idx+len("**Article:** "):]), &article))
	assert.InDelta(t, 42, article["id"], 0)
	assert.Equal(t, "Chipmaker beats estimates", article["headline"])
	assert.Equal(t, "NVDA,AMD", article["related"])
	assert.Equal(t, "Reuters", article["source"])
	assert.InDelta(t, 1700000000, article["datetime"], 0)
}
