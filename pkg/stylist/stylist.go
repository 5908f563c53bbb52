package stylist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Persona is the fixed system instruction sent with every prompt.
const Persona = "You are a sophisticated Personalized Fashion Stylist AI, designed specifically for a Pakistani audience."

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// Client produces one stateless text completion per call.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds generation service settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiClient calls the hosted Gemini model. It never retries.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient builds a client. A missing API key is not fatal here: every
// Generate call then fails, which callers report as a generation error.
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	g := &GeminiClient{model: model, timeout: cfg.Timeout}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

// Generate sends prompt with the stylist persona and returns the reply text.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", errors.New("GOOGLE_API_KEY is not configured")
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(Persona, genai.RoleUser),
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("model returned an empty response")
	}
	return text, nil
}

// StaticClient returns a fixed reply or error. It stands in for the hosted model
// in tests and local development.
type StaticClient struct {
	Reply string
	Err   error

	Prompts []string
}

func (s *StaticClient) Generate(_ context.Context, prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}
