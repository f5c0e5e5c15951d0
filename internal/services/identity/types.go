package identity

import (
	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/uuid"
	"github.com/KirkDiggler/bonedash/internal/repositories/localstore"
	"github.com/decred/slog"
)

const (
	// playerIDPrefix starts every generated player ID
	playerIDPrefix = "player_"

	// suffixLength is the length of the random tail of a player ID
	suffixLength = 9
)

// Config holds configuration for the identity service
type Config struct {
	// Store is the device-local key/value store
	Store localstore.Store

	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional
	Logger slog.Logger
}
