package mocks

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/mock"
)

// MockContentGenerator is a mock implementation of the text-generation backend
type MockContentGenerator struct {
	mock.Mock
}

// GenerateContent mocks the GenerateContent method
func (m *MockContentGenerator) GenerateContent(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

// TextResponse builds a backend response with one candidate holding text
func TextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(text)}}},
		},
	}
}
