package leaderboard

import (
	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/models"
	leaderboardRepo "github.com/KirkDiggler/bonedash/internal/repositories/leaderboard"
	"github.com/decred/slog"
)

const (
	// DefaultQualifyingRanks is how many ranks qualify for a wallet prompt
	DefaultQualifyingRanks = 28

	// ScoreTolerance is the allowed drift between score and duration
	ScoreTolerance = 5

	MinGameSeconds = 1.0
	MaxGameSeconds = 600.0
)

// Listener receives the qualifying view after it changes
type Listener func(board *models.Leaderboard)

// Config holds configuration for the leaderboard service
type Config struct {
	Repository leaderboardRepo.Repository
	Clock      clock.Clock

	// QualifyingRanks defaults to DefaultQualifyingRanks
	QualifyingRanks int

	// ScoreUnitsPerSecond scales durations before comparing them with scores.
	// Zero means 1, scores are then compared with whole seconds.
	ScoreUnitsPerSecond float64

	// AllowUnverifiedEligibility lets runs that fail ValidateScore still
	// receive a wallet prompt
	AllowUnverifiedEligibility bool

	// Logger is optional
	Logger slog.Logger
}

type SubmitScoreInput struct {
	PlayerID string
	Username string
	Score    int

	// GameDuration is the wall-clock run length in seconds
	GameDuration float64
	SessionID    string
}

type SubmitScoreOutput struct {
	// Entry is the stored entry after the submission
	Entry *models.LeaderboardEntry

	// Updated is false when the stored score was already at least as high
	Updated bool

	// Valid is the result of ValidateScore
	Valid bool

	// Leaderboard is the refreshed view, or the last known one when the refresh failed
	Leaderboard *models.Leaderboard

	// Eligibility is evaluated against Leaderboard
	Eligibility *CheckEligibilityOutput
}

type SubmitWalletInput struct {
	PlayerID string
	Wallet   string
}

type SubmitWalletOutput struct {
	Entry       *models.LeaderboardEntry
	Leaderboard *models.Leaderboard
}

type CheckEligibilityInput struct {
	PlayerID string
	Score    int

	// Valid is the ValidateScore result for the run
	Valid bool

	// Entry is the player's stored entry when known; it covers players
	// outside the fetched view
	Entry *models.LeaderboardEntry
}

type CheckEligibilityOutput struct {
	Eligible bool

	// Rank the score holds against the view, 0 when outside it
	Rank int

	// Reason explains a refusal
	Reason string
}
