package ai

import (
	"context"
	"fmt"

	"github.com/airai75/harubot/internal/config"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Provider interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// NewProvider builds the provider selected by AI_PROVIDER.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.AIProvider {
	case "gemini", "":
		return NewGeminiProvider(cfg.GeminiAPIKey, cfg.AIModel)
	case "pollinations":
		return NewPollinationsProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER: %s", cfg.AIProvider)
	}
}
