package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/bonedash/internal/repositories/leaderboard Repository

import (
	"context"

	"github.com/KirkDiggler/bonedash/internal/models"
)

// Repository defines the interface for the remote ranked store
type Repository interface {
	// GetEntry retrieves a player's entry
	GetEntry(ctx context.Context, input *GetEntryInput) (*models.LeaderboardEntry, error)

	// SaveEntry inserts or replaces a player's entry
	SaveEntry(ctx context.Context, input *SaveEntryInput) error

	// UpdateEntry applies a mutation to a player's entry atomically
	UpdateEntry(ctx context.Context, input *UpdateEntryInput) (*UpdateEntryOutput, error)

	// GetTopEntries retrieves the highest scoring entries
	GetTopEntries(ctx context.Context, input *GetTopEntriesInput) (*GetTopEntriesOutput, error)

	// GetAllEntries retrieves every entry in rank order
	GetAllEntries(ctx context.Context, input *GetAllEntriesInput) (*GetTopEntriesOutput, error)

	// DeleteEntry removes a player's entry
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) error
}
