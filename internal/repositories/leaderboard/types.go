package leaderboard

import "github.com/KirkDiggler/bonedash/internal/models"

type GetEntryInput struct {
	PlayerID string
}

type SaveEntryInput struct {
	Entry *models.LeaderboardEntry
}

// MutateFunc receives the stored entry (nil when absent) and returns the entry to store.
// Returning nil leaves the store untouched.
type MutateFunc func(existing *models.LeaderboardEntry) (*models.LeaderboardEntry, error)

type UpdateEntryInput struct {
	PlayerID string
	Mutate   MutateFunc
}

type UpdateEntryOutput struct {
	// Entry is the stored entry after the update
	Entry *models.LeaderboardEntry

	// Changed is false when the mutation returned nil
	Changed bool
}

type GetTopEntriesInput struct {
	Limit int
}

type GetTopEntriesOutput struct {
	Entries []*models.LeaderboardEntry
}

type GetAllEntriesInput struct {
}

type DeleteEntryInput struct {
	PlayerID string
}
