package factory

import (
	"fmt"

	"campus-assistant-be/pkg/llm"
	"campus-assistant-be/pkg/llm/nvidia"
	"campus-assistant-be/pkg/llm/ollama"
)

// Config carries the provider-specific settings the factory needs.
type Config struct {
	Provider      string
	NvidiaAPIKey  string
	NvidiaBaseURL string
	NvidiaModel   string
	OllamaBaseURL string
	OllamaModel   string
}

// NewLLMProvider builds the configured provider. An unknown provider name
// is a startup error rather than a silent fallback.
func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "nvidia", "":
		return nvidia.NewProvider(cfg.NvidiaAPIKey, cfg.NvidiaBaseURL, cfg.NvidiaModel), nil
	case "ollama":
		return ollama.NewProvider(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
