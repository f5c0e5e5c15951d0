package admin

import (
	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/decred/slog"
)

// Config holds configuration for the admin service
type Config struct {
	Leaderboard leaderboard.Service
	Competition competition.Service
	Clock       clock.Clock

	// AllowList holds admin wallet addresses, compared case-insensitively
	AllowList []string

	// Logger is optional
	Logger slog.Logger
}
