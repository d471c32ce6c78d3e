package llm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Client is an abstraction over LLM providers
type Client interface {
	// Generate sends req using the profile configured for req.Purpose and returns
	// the raw response so callers can read both text and grounding metadata.
	Generate(ctx context.Context, req *Request) (*genai.GenerateContentResponse, error)
	// GetModel returns the model name used for a purpose
	GetModel(purpose Purpose) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey, nil)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client. httpClient may be nil.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string, httpClient *http.Client) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Generate calls GenerateContent with the purpose's model, temperature and tools.
func (c *GeminiClient) Generate(ctx context.Context, req *Request) (*genai.GenerateContentResponse, error) {
	profile, ok := c.config.GetProfile(req.Purpose)
	if !ok {
		return nil, fmt.Errorf("no model configured for %s", req.Purpose)
	}

	resp, err := c.client.Models.GenerateContent(ctx, profile.Model, req.Contents(), generateConfig(profile))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	return resp, nil
}

// GetModel returns the model name for a purpose
func (c *GeminiClient) GetModel(purpose Purpose) string {
	p, _ := c.config.GetProfile(purpose)
	return p.Model
}

// Close releases resources held by the client. The genai client holds none.
func (c *GeminiClient) Close() error {
	return nil
}

func generateConfig(p Profile) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(p.Temperature),
	}
	if p.Grounding {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

// ResponseText returns the concatenated text of the first candidate.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text parts in response")
	}
	return text, nil
}
