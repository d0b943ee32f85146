package llm

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mantasj/gidas/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging middleware. There is no retry middleware: a failed completion
// is surfaced once and the caller decides whether to try again.
func NewProvider(cfg Config, eventRepo store.EventRepo, log *logrus.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown completion provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, eventRepo, log), nil
}
