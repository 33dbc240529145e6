// Package gemini supplies greetings from the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultTemperature = 0.9
)

// ErrMissingAPIKey is returned when no API key was configured.
var ErrMissingAPIKey = errors.New("gemini: missing API key")

// Provider asks a Gemini model for a greeting. The zero value is not usable;
// fill APIKey and Prompt, or use NewProvider.
type Provider struct {
	APIKey      string
	Model       string
	Prompt      string
	Temperature float32

	mu     sync.Mutex
	client *genai.Client
}

// NewProvider returns a provider with the default model and temperature.
func NewProvider(apiKey, prompt string) *Provider {
	return &Provider{
		APIKey:      apiKey,
		Model:       DefaultModel,
		Prompt:      prompt,
		Temperature: DefaultTemperature,
	}
}

// APIKeyFromEnv returns GEMINI_API_KEY, falling back to API_KEY.
func APIKeyFromEnv() string {
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		return k
	}
	return os.Getenv("API_KEY")
}

// Greeting implements arix.GreetingProvider.
func (p *Provider) Greeting(ctx context.Context) (string, error) {
	if strings.TrimSpace(p.Prompt) == "" {
		return "", errors.New("gemini: empty prompt")
	}
	client, err := p.getClient(ctx)
	if err != nil {
		return "", err
	}

	model := p.Model
	if model == "" {
		model = DefaultModel
	}
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(p.Temperature),
	}
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(p.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// getClient creates the client on first use.
func (p *Provider) getClient(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if p.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	p.client = client
	return client, nil
}
