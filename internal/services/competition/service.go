package competition

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/repositories/localstore"
	"github.com/decred/slog"
)

// service implements the Service interface
type service struct {
	store localstore.Store
	clock clock.Clock
	log   slog.Logger
}

// New creates a new competition service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		store: cfg.Store,
		clock: cfg.Clock,
		log:   logging.OrDisabled(cfg.Logger),
	}, nil
}

// Start opens a window ending days from now
func (s *service) Start(ctx context.Context, days float64) (time.Time, error) {
	if !(days > 0) || math.IsInf(days, 0) {
		return time.Time{}, ErrInvalidDuration
	}

	end := s.clock.Now().Add(time.Duration(days * float64(24*time.Hour)))
	if err := s.save(end); err != nil {
		return time.Time{}, err
	}

	s.log.Infof("Competition started, ends at %s", end.UTC().Format(time.RFC3339))
	return end, nil
}

// IsEnded is true when a window exists and now is past its end
func (s *service) IsEnded(ctx context.Context) (bool, error) {
	window, err := s.Window(ctx)
	if err != nil {
		return false, err
	}
	return window.Ended(s.clock.Now()), nil
}

// TimeRemaining splits the time left; nil when no window is set
func (s *service) TimeRemaining(ctx context.Context) (*models.TimeRemaining, error) {
	window, err := s.Window(ctx)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, nil
	}

	remaining := window.Remaining(s.clock.Now())
	return &remaining, nil
}

// EndNow closes the window immediately
func (s *service) EndNow(ctx context.Context) error {
	now := s.clock.Now()
	if err := s.save(now); err != nil {
		return err
	}

	s.log.Infof("Competition ended by admin at %s", now.UTC().Format(time.RFC3339))
	return nil
}

// Window reads the stored end timestamp
func (s *service) Window(ctx context.Context) (*models.CompetitionWindow, error) {
	raw, ok, err := s.store.Get(localstore.KeyCompetitionEndsAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read competition window: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCorruptWindow, raw)
	}

	return &models.CompetitionWindow{
		EndTimestamp: time.UnixMilli(ms),
	}, nil
}

func (s *service) save(end time.Time) error {
	value := strconv.FormatInt(end.UnixMilli(), 10)
	if err := s.store.Set(localstore.KeyCompetitionEndsAt, value); err != nil {
		return fmt.Errorf("failed to save competition window: %w", err)
	}
	return nil
}
