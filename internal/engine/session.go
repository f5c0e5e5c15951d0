package engine

import (
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/rng"
	"github.com/decred/slog"
)

// SessionConfig holds configuration for a game session
type SessionConfig struct {
	// Tuning defaults to DefaultConfig when nil
	Tuning *Config

	Random rng.Source
	Clock  clock.Clock

	// Logger is optional
	Logger slog.Logger
}

// FrameResult is reported after every Advance
type FrameResult struct {
	Score    int
	Status   Status
	Collided bool

	// Obstacle is the obstacle that ended the session
	Obstacle *Obstacle
}

// Session runs one game at a time: Idle, then Running, then Ended.
// It is driven from a single loop goroutine.
type Session struct {
	tuning Config
	random rng.Source
	clock  clock.Clock
	log    slog.Logger

	status    Status
	state     *State
	username  string
	startedAt time.Time
	endedAt   time.Time
}

// NewSession creates an idle session
func NewSession(cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	tuning := DefaultConfig()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}

	return &Session{
		tuning: tuning,
		random: cfg.Random,
		clock:  cfg.Clock,
		log:    logging.OrDisabled(cfg.Logger),
		status: StatusIdle,
	}, nil
}

// Start begins a fresh run. A finished session may be started again.
func (s *Session) Start(username string) error {
	if s.status == StatusRunning {
		return ErrSessionRunning
	}

	name, err := models.NormalizeUsername(username)
	if err != nil {
		return err
	}

	s.username = name
	s.state = NewState(s.tuning)
	s.status = StatusRunning
	s.startedAt = s.clock.Now()
	s.endedAt = time.Time{}

	s.log.Debugf("Session started for %s", name)
	return nil
}

// Advance steps the simulation by dt frame units. It does nothing unless running.
func (s *Session) Advance(dt float64) FrameResult {
	if s.status != StatusRunning {
		return s.result(nil)
	}

	res := Step(s.state, s.tuning, s.random, dt)
	if res.HitIndex < 0 {
		return s.result(nil)
	}

	hit := s.state.Obstacles[res.HitIndex]
	s.status = StatusEnded
	s.endedAt = s.clock.Now()

	s.log.Debugf("Session for %s ended: score %d after %.1fs", s.username, s.state.Score(), s.Duration().Seconds())
	return s.result(&hit)
}

// Jump requests a jump and reports whether it was applied
func (s *Session) Jump() bool {
	if s.status != StatusRunning {
		return false
	}
	return ApplyJump(s.state, s.tuning)
}

func (s *Session) result(hit *Obstacle) FrameResult {
	return FrameResult{
		Score:    s.Score(),
		Status:   s.status,
		Collided: hit != nil,
		Obstacle: hit,
	}
}

// Status returns the lifecycle status
func (s *Session) Status() Status {
	return s.status
}

// Score is floor of the elapsed frame units, zero before the first start
func (s *Session) Score() int {
	if s.state == nil {
		return 0
	}
	return s.state.Score()
}

// State returns a copy of the current simulation state, nil before start
func (s *Session) State() *State {
	if s.state == nil {
		return nil
	}
	return s.state.Clone()
}

// Tuning returns the session's tuning
func (s *Session) Tuning() Config {
	return s.tuning
}

func (s *Session) Username() string {
	return s.username
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

func (s *Session) EndedAt() time.Time {
	return s.endedAt
}

// Duration is the wall-clock length of the run so far, or of the finished run
func (s *Session) Duration() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	if s.status == StatusEnded {
		return s.endedAt.Sub(s.startedAt)
	}
	return s.clock.Now().Sub(s.startedAt)
}
