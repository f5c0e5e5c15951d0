package identity

import (
	"context"

	"github.com/KirkDiggler/bonedash/internal/models"
)

// Service defines the per-device player identity operations
type Service interface {
	// GetOrCreatePlayerID returns the stored player ID, generating one on first use
	GetOrCreatePlayerID(ctx context.Context) (string, error)

	// GetStoredUsername returns the saved display name, if any
	GetStoredUsername(ctx context.Context) (string, bool, error)

	// SetStoredUsername validates and saves the display name
	SetStoredUsername(ctx context.Context, username string) (string, error)

	// Identity returns the player ID together with the saved display name
	Identity(ctx context.Context) (*models.PlayerIdentity, error)

	// Degraded reports whether identity is session-only because storage failed
	Degraded() bool
}
