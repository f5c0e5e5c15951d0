package terminal

import (
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/uuid"
	"github.com/KirkDiggler/bonedash/internal/engine"
	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/services/admin"
	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/identity"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/KirkDiggler/bonedash/internal/services/messaging"
	"github.com/decred/slog"
	"github.com/gdamore/tcell/v2"
)

const (
	DefaultFrameInterval   = 16 * time.Millisecond
	DefaultCompetitionPoll = 60 * time.Second
	DefaultAdminPoll       = 5 * time.Second

	// maxFrameDelta caps catch-up after a stall, in frame units
	maxFrameDelta = 3.0

	maxWalletLength = 42
	boardRows       = 10
	resultBuffer    = 64
)

// Config holds configuration for the render loop
type Config struct {
	// Screen must already be initialised; the caller owns Fini
	Screen tcell.Screen

	Session     *engine.Session
	Identity    identity.Service
	Leaderboard leaderboard.Service
	Competition competition.Service
	Admin       admin.Service
	Clock       clock.Clock

	// Messages picks the game over line; defaults to the bundled lines
	Messages messaging.Service

	// UUIDGenerator tags each run; defaults to random UUIDs
	UUIDGenerator uuid.UUID

	// Sprites must be loaded before the loop is created
	Sprites *Sprites

	// ExportDir receives admin wallet exports
	ExportDir string

	FrameInterval   time.Duration
	CompetitionPoll time.Duration
	AdminPoll       time.Duration

	// Logger is optional
	Logger slog.Logger
}

type mode int

const (
	modeUsername mode = iota
	modePlaying
	modeGameOver
)

// Results of background work, handed to the loop through its results channel

type submitDone struct {
	sessionID string
	out       *leaderboard.SubmitScoreOutput
	err       error
}

type walletDone struct {
	out *leaderboard.SubmitWalletOutput
	err error
}

type snapshotChanged struct {
	board *models.Leaderboard
}

type competitionLoaded struct {
	window *models.CompetitionWindow
	err    error
}

type adminLoaded struct {
	isAdmin bool
	err     error
}

type adminDone struct {
	message string
	err     error
}
