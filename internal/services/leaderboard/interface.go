package leaderboard

import (
	"context"

	"github.com/KirkDiggler/bonedash/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bonedash/internal/services/leaderboard Service

// Service keeps the local ranked view in step with the remote store
type Service interface {
	// ValidateScore is the advisory anti-cheat check
	ValidateScore(score int, durationSeconds float64) bool

	// SubmitScore records a finished run, never lowering a stored score
	SubmitScore(ctx context.Context, input *SubmitScoreInput) (*SubmitScoreOutput, error)

	// SubmitWallet attaches a wallet address to the player's entry
	SubmitWallet(ctx context.Context, input *SubmitWalletInput) (*SubmitWalletOutput, error)

	// FetchTopN reads the top n entries; n <= 0 means the qualifying ranks
	FetchTopN(ctx context.Context, n int) (*models.Leaderboard, error)

	// GetEntry returns one player's entry
	GetEntry(ctx context.Context, playerID string) (*models.LeaderboardEntry, error)

	// GetAllEntries returns every entry in rank order
	GetAllEntries(ctx context.Context) ([]*models.LeaderboardEntry, error)

	// Snapshot returns the last fetched qualifying view, nil before the first fetch
	Snapshot() *models.Leaderboard

	// Subscribe registers fn to run whenever the qualifying view changes
	Subscribe(fn Listener) (unsubscribe func())

	// CheckWalletEligibility decides whether to prompt for a wallet
	CheckWalletEligibility(input *CheckEligibilityInput) *CheckEligibilityOutput

	// QualifyingRanks is the size of the qualifying view
	QualifyingRanks() int
}
