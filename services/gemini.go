package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// GeminiClient wraps the generative-language model behind langchaingo's
// OpenAI adapter, pointed at Gemini's OpenAI-compatible endpoint.
type GeminiClient struct {
	Chat llms.Model
}

func NewGeminiClient(apiKey, apiEndpoint string) (*GeminiClient, error) {
	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel("gemini-1.5-flash"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		Chat: model,
	}, nil
}
