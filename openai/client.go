// Package openai provides a docsync.Chatter for OpenAI-compatible chat
// endpoints such as llama.cpp's server or llamactl's proxy.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/docsync"
	"github.com/sashabaranov/go-openai"
)

// Ensure Client implements docsync.Chatter at compile time.
var _ docsync.Chatter = (*Client)(nil)

// Client talks to an OpenAI-compatible endpoint. Every call is a single
// blocking round trip with no retries.
type Client struct {
	client     *openai.Client
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for each request.
// Defaults to docsync.DefaultChatTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its timeout wins over
// WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the endpoint rooted at cfg.BaseURL.
// Requests go to {BaseURL}/v1/...; a bearer token is sent only when
// cfg.APIKey is set.
func NewClient(cfg docsync.ChatConfig, opts ...Option) *Client {
	c := &Client{timeout: cfg.Timeout}
	if c.timeout <= 0 {
		c.timeout = docsync.DefaultChatTimeout
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = APIBaseURL(cfg.BaseURL)
	config.HTTPClient = c.httpClient
	c.client = openai.NewClientWithConfig(config)

	return c
}

// APIBaseURL returns the versioned API root for a server base URL.
func APIBaseURL(baseURL string) string {
	if baseURL == "" {
		baseURL = docsync.DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/v1"
}

// Chat sends one user message and returns choices[0].message.content.
func (c *Client) Chat(ctx context.Context, req docsync.ChatRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: req.Message,
		}},
		Temperature: temperature(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", translateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &docsync.MalformedResponseError{Reason: "response has no choices"}
	}
	msg := resp.Choices[0].Message
	if msg.Content == "" && len(msg.MultiContent) == 0 && len(msg.ToolCalls) == 0 {
		return "", &docsync.MalformedResponseError{Reason: "first choice has no message content"}
	}

	return msg.Content, nil
}

// temperature keeps an explicit zero on the wire. go-openai drops a zero
// temperature, and servers then sample with their own default.
func temperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

// ListModels returns the data array of GET /v1/models.
func (c *Client) ListModels(ctx context.Context) ([]docsync.Model, error) {
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, translateError(err)
	}

	models := make([]docsync.Model, 0, len(list.Models))
	for _, m := range list.Models {
		models = append(models, docsync.Model{
			ID:      m.ID,
			OwnedBy: m.OwnedBy,
			Created: m.CreatedAt,
		})
	}
	return models, nil
}

// translateError maps go-openai failures onto docsync's typed errors.
func translateError(err error) error {
	var apiErr *openai.APIError
	// go-openai decodes JSON error bodies and keeps only the message.
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &docsync.HTTPError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &docsync.HTTPError{StatusCode: reqErr.HTTPStatusCode, Body: string(reqErr.Body)}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &docsync.MalformedResponseError{Reason: err.Error()}
	}

	return &docsync.NetworkError{Err: err}
}
