package llm

import (
	"fmt"

	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/internal/llm/providers"
)

// Factory creates model provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory instance
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// CreateProvider creates a model provider based on the configuration
func (f *Factory) CreateProvider() (Provider, error) {
	switch f.config.LLM.Provider {
	case "gemini":
		return providers.NewGeminiProvider(f.config)
	case "claude":
		return providers.NewClaudeProvider(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", f.config.LLM.Provider)
	}
}

// GetSupportedProviders returns a list of supported model providers
func (f *Factory) GetSupportedProviders() []string {
	return []string{"gemini", "claude"}
}
