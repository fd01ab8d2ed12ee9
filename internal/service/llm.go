package service

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pageza/recipestream/config"
)

// ContentGenerator is the text-generation backend used to produce recipes
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

// LLMService handles interactions with the Gemini API
type LLMService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewLLMService creates a Gemini client for the configured model
func NewLLMService(ctx context.Context, cfg *config.Config) (*LLMService, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.GeminiAPIKey)}
	if cfg.GeminiEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.GeminiEndpoint))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	if cfg.Temperature != nil {
		model.SetTemperature(*cfg.Temperature)
	}
	if cfg.MaxOutputTokens != nil {
		model.SetMaxOutputTokens(*cfg.MaxOutputTokens)
	}

	return &LLMService{
		client: client,
		model:  model,
	}, nil
}

// GenerateContent sends prompt to the model as a single user turn.
// Errors are returned as produced by the client so their message reaches the caller intact.
func (s *LLMService) GenerateContent(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	return s.model.GenerateContent(ctx, genai.Text(prompt))
}

// Close releases the underlying client
func (s *LLMService) Close() error {
	return s.client.Close()
}
