package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/internal/logging"
	"github.com/ysqsimon/Remotely/pkg/models"
)

// Manager manages the model provider and its lifecycle. When no API key is
// configured the manager stays in offline mode for the life of the process
// and never creates a provider; callers check Enabled before converse calls.
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	logger   logging.Logger
	mu       sync.RWMutex
	enabled  bool
	healthy  bool
}

// NewManager creates a new model manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the manager. A missing credential is not an error: the
// manager starts in offline mode and stays there.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config.LLM.APIKey == "" {
		m.enabled = false
		m.logger.Warn("No LLM API key configured - assistant runs in offline mode", map[string]interface{}{
			"provider": m.config.LLM.Provider,
		})
		return nil
	}

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
		"model":    m.config.LLM.Model,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider
	m.enabled = true
	m.healthy = true

	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.enabled = false
	m.healthy = false
	return nil
}

// Enabled reports whether a credential was configured at startup. False
// means degraded/offline mode.
func (m *Manager) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enabled
}

// Converse forwards a conversational request to the provider
func (m *Manager) Converse(ctx context.Context, req *models.ConverseRequest) (*models.ModelReply, error) {
	provider, err := m.currentProvider()
	if err != nil {
		return nil, err
	}
	return provider.Converse(ctx, req)
}

// Complete forwards a free-text completion request to the provider
func (m *Manager) Complete(ctx context.Context, prompt string) (string, error) {
	provider, err := m.currentProvider()
	if err != nil {
		return "", err
	}
	return provider.Complete(ctx, prompt)
}

// GetProviderName returns the name of the current provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}

func (m *Manager) currentProvider() (Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.enabled || m.provider == nil {
		return nil, fmt.Errorf("LLM provider not available - no API key configured")
	}
	return m.provider, nil
}
