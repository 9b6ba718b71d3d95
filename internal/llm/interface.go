package llm

import (
	"context"

	"github.com/ysqsimon/Remotely/pkg/models"
)

// Provider defines the interface for model providers
type Provider interface {
	// Converse sends a single user utterance with tool declarations and
	// returns the model's reply, carrying at most one tool call
	Converse(ctx context.Context, req *models.ConverseRequest) (*models.ModelReply, error)

	// Complete sends a plain free-text prompt and returns the model's text
	Complete(ctx context.Context, prompt string) (string, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
