package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	t.Run("openrouter requires key", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing openrouter key")
		}
		cfg.OpenRouter.APIKey = "sk-or-test"
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mock needs no key", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = "mock"
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = "spėliojimas"
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for unknown provider")
		}
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GIDAS_LLM_PROVIDER", "openrouter")
	t.Setenv("GIDAS_OPENROUTER_API_KEY", "sk-or-env")
	t.Setenv("GIDAS_OPENROUTER_MODEL", "meta-llama/llama-3-8b")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openrouter" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "sk-or-env" {
		t.Errorf("api key = %q", cfg.OpenRouter.APIKey)
	}
	if cfg.OpenRouter.Model != "meta-llama/llama-3-8b" {
		t.Errorf("model = %q", cfg.OpenRouter.Model)
	}
}
