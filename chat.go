package docsync

import (
	"context"
	"log/slog"
	"math"
	"time"
)

// Chat defaults match a llama.cpp server started on its default port.
const (
	DefaultBaseURL     = "http://localhost:8080"
	DefaultModel       = "proxy-test"
	DefaultTemperature = float32(0.7)
	DefaultMaxTokens   = 1000
	DefaultChatTimeout = 60 * time.Second
)

// ChatConfig configures a chat client.
type ChatConfig struct {
	BaseURL     string        `json:"baseUrl"`
	APIKey      string        `json:"-"`
	Model       string        `json:"model"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"maxTokens"`
	Timeout     time.Duration `json:"timeout"`
}

// DefaultChatConfig returns the configuration used when nothing is overridden.
func DefaultChatConfig() ChatConfig {
	return ChatConfig{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Timeout:     DefaultChatTimeout,
	}
}

// Request builds a single-message chat request from the configuration.
func (c ChatConfig) Request(message string) ChatRequest {
	return ChatRequest{
		Message:     message,
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}
}

// ChatRequest is a single user message sent to a model.
type ChatRequest struct {
	Message     string  `json:"message"`
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
}

// Validate returns an error if the request contains invalid fields.
func (r ChatRequest) Validate() error {
	if r.Message == "" {
		return Errorf(EINVALID, "chat message required")
	}
	if r.Model == "" {
		return Errorf(EINVALID, "chat model required")
	}
	if r.MaxTokens < 0 {
		return Errorf(EINVALID, "max tokens must not be negative")
	}
	if r.MaxTokens > math.MaxInt32 {
		return Errorf(EINVALID, "max tokens must not exceed %d", math.MaxInt32)
	}
	return nil
}

// Model describes a model served by a chat endpoint.
type Model struct {
	ID      string `json:"id"`
	OwnedBy string `json:"ownedBy,omitempty"`
	Created int64  `json:"created,omitempty"`
}

// ModelLister lists the models available on an endpoint.
type ModelLister interface {
	ListModels(ctx context.Context) ([]Model, error)
}

// Chatter sends chat messages to a language model.
type Chatter interface {
	ModelLister

	// Chat sends one user message and returns the model's reply.
	// Fails with *HTTPError, *MalformedResponseError or *NetworkError.
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// ListModelsOrEmpty lists models, logging any failure and returning an
// empty slice in its place.
func ListModelsOrEmpty(ctx context.Context, lister ModelLister, logger *slog.Logger) []Model {
	models, err := lister.ListModels(ctx)
	if err != nil {
		logger.Error("error fetching models", "err", err)
		return []Model{}
	}
	return models
}
