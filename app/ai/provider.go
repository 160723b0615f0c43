// Package ai holds the AI provider clients used for note embeddings and
// audio transcription. The provider choice is a closed set: each supported
// provider is its own type carrying the credentials it needs.
package ai

import (
	"context"
	"fmt"
	"io"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/config"
)

// Provider produces embeddings for note content and transcripts for
// recorded audio.
type Provider interface {
	Name() string
	Embed(ctx context.Context, text string) ([]float32, error)
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

// NewProvider builds the configured provider. Unknown provider tags are
// rejected here rather than failing on first use.
func NewProvider(cfg config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel, cfg.EmbedModel), nil
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
		return NewGeminiProvider(cfg.GeminiKey, cfg.GeminiModel, cfg.EmbedModel), nil
	case "":
		return nil, fmt.Errorf("AI_PROVIDER is not set (supported: openai, gemini)")
	default:
		return nil, fmt.Errorf("unsupported AI provider %q (supported: openai, gemini)", cfg.Provider)
	}
}
