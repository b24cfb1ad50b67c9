package llm

import (
	"context"
	"fmt"

	"github.com/luyichen/kaobang/internal/store"
)

// NewProvider builds a Provider from configuration, wrapped with retry
// and (when a sink is given) event logging.
func NewProvider(ctx context.Context, cfg Config, sink store.LLMEventSink) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → vendor
	if sink != nil {
		base = WithLogging(base, sink)
	}
	return WithRetry(base, cfg.Retry), nil
}
