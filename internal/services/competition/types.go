package competition

import (
	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/repositories/localstore"
	"github.com/decred/slog"
)

// Config holds configuration for the competition service
type Config struct {
	// Store persists the end timestamp as unix milliseconds
	Store localstore.Store

	Clock clock.Clock

	// Logger is optional
	Logger slog.Logger
}
