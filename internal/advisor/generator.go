package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrEmptyCompletion indicates the model returned no usable text.
var ErrEmptyCompletion = errors.New("model returned empty completion")

// GenRequest is a single text-generation call.
type GenRequest struct {
	System      string
	Prompt      string
	MaxTokens   int32
	Temperature float32
}

// Generator produces a completion for a request. Implementations must be
// safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, req GenRequest) (string, error)
}

// googleGenerator calls the Gemini API.
type googleGenerator struct {
	client *genai.Client
	model  string
}

// NewGoogleGenerator creates a Generator backed by the Gemini API.
func NewGoogleGenerator(ctx context.Context, apiKey, model string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &googleGenerator{client: client, model: model}, nil
}

func (g *googleGenerator) Generate(ctx context.Context, req GenRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxTokens,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
