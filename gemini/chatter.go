// Package gemini provides a docsync.Chatter backed by Google Gemini.
package gemini

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/fwojciec/docsync"
	"google.golang.org/genai"
)

// Ensure Chatter implements docsync.Chatter at compile time.
var _ docsync.Chatter = (*Chatter)(nil)

// Chatter implements docsync.Chatter using Google Gemini.
type Chatter struct {
	client *genai.Client
}

// NewChatter creates a new Chatter.
func NewChatter(client *genai.Client) *Chatter {
	return &Chatter{client: client}
}

// Chat sends one user message and returns the text of the first candidate.
func (c *Chatter) Chat(ctx context.Context, req docsync.ChatRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	result, err := c.client.Models.GenerateContent(ctx, req.Model,
		[]*genai.Content{genai.NewContentFromText(req.Message, genai.RoleUser)},
		BuildConfig(req),
	)
	if err != nil {
		return "", translateError(err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", &docsync.MalformedResponseError{Reason: "gemini returned no candidates"}
	}

	return result.Text(), nil
}

// ListModels returns the models visible to the configured API key.
func (c *Chatter) ListModels(ctx context.Context) ([]docsync.Model, error) {
	page, err := c.client.Models.List(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}

	models := make([]docsync.Model, 0, len(page.Items))
	for _, m := range page.Items {
		models = append(models, docsync.Model{ID: ModelID(m.Name), OwnedBy: "google"})
	}
	return models, nil
}

// BuildConfig returns the GenerateContentConfig for a chat request.
func BuildConfig(req docsync.ChatRequest) *genai.GenerateContentConfig {
	temp := req.Temperature
	maxTokens := min(req.MaxTokens, math.MaxInt32)
	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(maxTokens),
	}
}

// ModelID strips the "models/" resource prefix from a Gemini model name.
func ModelID(name string) string {
	return strings.TrimPrefix(name, "models/")
}

func translateError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &docsync.HTTPError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	return &docsync.NetworkError{Err: err}
}
