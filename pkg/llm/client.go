package llm

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newspulse/pkg/domain"
)

// DefaultEndpoint is used by the original dashboard when no LLM url is set
const DefaultEndpoint = "https://api.openai.com/v1"

// QualityWeightHeader carries the routing hint for model routers
const QualityWeightHeader = "X-Router-Quality-Weight"

// Options are static parameters of every completion request
type Options struct {
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	UseJSONMode bool
}

// Client calls an OpenAI-compatible chat completion endpoint. Endpoint and credentials are
// passed per request, so runtime settings changes apply to the next call.
type Client struct {
	opts Options
}

// CompletionRequest is a single prompt to the model
type CompletionRequest struct {
	Prompt        string
	Model         string
	Endpoint      string
	APIKey        string
	QualityWeight *float64 // sent as a header only when set
}

// Completion is the model reply
type Completion struct {
	Content string
	Model   string // model identifier reported by the server
}

// NewClient makes a new model client
func NewClient(opts Options) *Client {
	return &Client{opts: opts}
}

// Complete sends the prompt as a single user message and returns the first choice
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (Completion, error) {
	if req.Endpoint == "" || req.Model == "" || req.APIKey == "" {
		return Completion{}, domain.ErrModelNotConfigured
	}

	clientConfig := openai.DefaultConfig(req.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(req.Endpoint, "/")
	httpClient := &http.Client{Timeout: c.opts.Timeout}
	if req.QualityWeight != nil {
		httpClient.Transport = &headerTransport{
			base:   http.DefaultTransport,
			header: QualityWeightHeader,
			value:  strconv.FormatFloat(*req.QualityWeight, 'f', -1, 64),
		}
	}
	clientConfig.HTTPClient = httpClient
	client := openai.NewClientWithConfig(clientConfig)

	chatReq := openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: float32(c.opts.Temperature),
		MaxTokens:   c.opts.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	}
	if c.opts.UseJSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return Completion{}, fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Completion{}, fmt.Errorf("no response from llm")
	}

	model := resp.Model
	if model == "" {
		model = req.Model
	}
	return Completion{Content: resp.Choices[0].Message.Content, Model: model}, nil
}

// headerTransport adds a fixed header to every outgoing request
type headerTransport struct {
	base   http.RoundTripper
	header string
	value  string
}

func (t *headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set(t.header, t.value)
	return t.base.RoundTrip(r)
}
