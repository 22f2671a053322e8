package factory

import (
	"context"
	"fmt"

	"ashram-bot/pkg/llm"
	"ashram-bot/pkg/llm/anthropic"
	"ashram-bot/pkg/llm/gemini"
	"ashram-bot/pkg/llm/ollama"
)

// Settings selects and configures one backend.
type Settings struct {
	Provider      string // "anthropic", "gemini" or "ollama"
	Model         string
	AnthropicKey  string
	GeminiKey     string
	OllamaBaseURL string
}

func NewLLMProvider(ctx context.Context, s Settings) (llm.LLMProvider, error) {
	switch s.Provider {
	case "anthropic", "":
		if s.AnthropicKey == "" {
			return nil, fmt.Errorf("anthropic provider requires ANTHROPIC_API_KEY")
		}
		return anthropic.NewAnthropicProvider(s.AnthropicKey, s.Model), nil
	case "gemini":
		if s.GeminiKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		return gemini.NewGeminiProvider(ctx, s.GeminiKey, s.Model)
	case "ollama":
		baseURL := s.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		model := s.Model
		if model == "" {
			model = "llama3"
		}
		return ollama.NewOllamaProvider(baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
