package identity

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/common/uuid"
	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/KirkDiggler/bonedash/internal/repositories/localstore"
	"github.com/decred/slog"
)

// service implements the Service interface
type service struct {
	clock         clock.Clock
	uuidGenerator uuid.UUID
	log           slog.Logger

	mu       sync.Mutex
	store    localstore.Store
	degraded bool
}

// New creates a new identity service
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

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		store:         cfg.Store,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		log:           logging.OrDisabled(cfg.Logger),
	}, nil
}

// GetOrCreatePlayerID returns the stored player ID, generating one on first use
func (s *service) GetOrCreatePlayerID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok, err := s.get(localstore.KeyPlayerID)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}

	id = s.newPlayerID()
	if err := s.set(localstore.KeyPlayerID, id); err != nil {
		return "", err
	}

	s.log.Infof("Created player ID %s", id)
	return id, nil
}

// GetStoredUsername returns the saved display name, if any
func (s *service) GetStoredUsername(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok, err := s.get(localstore.KeyUsername)
	if err != nil || !ok || name == "" {
		return "", false, err
	}
	return name, true, nil
}

// SetStoredUsername validates and saves the display name
func (s *service) SetStoredUsername(ctx context.Context, username string) (string, error) {
	name, err := models.NormalizeUsername(username)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.set(localstore.KeyUsername, name); err != nil {
		return "", err
	}
	return name, nil
}

// Identity returns the player ID together with the saved display name
func (s *service) Identity(ctx context.Context) (*models.PlayerIdentity, error) {
	id, err := s.GetOrCreatePlayerID(ctx)
	if err != nil {
		return nil, err
	}

	name, _, err := s.GetStoredUsername(ctx)
	if err != nil {
		return nil, err
	}

	return &models.PlayerIdentity{
		PlayerID: id,
		Username: name,
	}, nil
}

// Degraded reports whether identity is session-only
func (s *service) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// newPlayerID builds player_<unix-ms>_<random>
func (s *service) newPlayerID() string {
	ms := strconv.FormatInt(s.clock.Now().UnixMilli(), 10)
	return playerIDPrefix + ms + "_" + uuid.Suffix(s.uuidGenerator, suffixLength)
}

// get reads from the store, switching to a memory store when it fails
func (s *service) get(key string) (string, bool, error) {
	v, ok, err := s.store.Get(key)
	if err == nil {
		return v, ok, nil
	}

	s.degrade(fmt.Errorf("read %s: %w", key, err))
	return s.store.Get(key)
}

// set writes to the store, switching to a memory store when it fails
func (s *service) set(key, value string) error {
	err := s.store.Set(key, value)
	if err == nil {
		return nil
	}

	s.degrade(fmt.Errorf("write %s: %w", key, err))
	return s.store.Set(key, value)
}

// degrade swaps in a session-only store; identity no longer survives restarts
func (s *service) degrade(cause error) {
	if s.degraded {
		return
	}
	s.log.Warnf("Local storage unavailable, identity is session-only: %v", cause)
	s.store = localstore.NewMemory()
	s.degraded = true
}
