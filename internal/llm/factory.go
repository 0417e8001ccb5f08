package llm

import (
	"fmt"

	"draftsmith/internal/config"
)

// NewProvider creates the text-generation provider named by the config.
//
// Supported providers:
//   - "openai" - chat completions via the OpenAI API (or a compatible gateway)
//   - "static" - deterministic offline provider, no API key required
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.LLMProvider {
	case "openai":
		return NewOpenAIProvider(OpenAISettings{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})

	case "static":
		return NewStaticProvider(), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.LLMProvider)
	}
}
