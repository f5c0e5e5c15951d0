package localstore

import (
	"errors"
	"fmt"

	"github.com/decred/slog"
)

// TieredConfig holds configuration for a shared store backed by a local copy
type TieredConfig struct {
	// Shared is the authoritative store, usually the Redis hash
	Shared Store

	// Local keeps the last value seen or written, usually the JSON file
	Local Store

	// Logger is optional
	Logger slog.Logger
}

// tieredStore reads and writes the shared store and mirrors every value into
// the local one. When the shared store fails the local copy answers instead.
type tieredStore struct {
	shared Store
	local  Store
	log    slog.Logger
}

// NewTiered creates a store that prefers Shared and falls back to Local
func NewTiered(cfg *TieredConfig) (*tieredStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Shared == nil {
		return nil, errors.New("shared store cannot be nil")
	}

	if cfg.Local == nil {
		return nil, errors.New("local store cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Disabled
	}

	return &tieredStore{
		shared: cfg.Shared,
		local:  cfg.Local,
		log:    log,
	}, nil
}

func (t *tieredStore) Get(key string) (string, bool, error) {
	v, ok, err := t.shared.Get(key)
	if err != nil {
		t.log.Warnf("Shared store unavailable, reading %s locally: %v", key, err)
		return t.local.Get(key)
	}

	// keep the local copy in step so an outage shows the last shared value
	if ok {
		err = t.local.Set(key, v)
	} else {
		err = t.local.Delete(key)
	}
	if err != nil {
		t.log.Debugf("Failed to mirror %s locally: %v", key, err)
	}
	return v, ok, nil
}

func (t *tieredStore) Set(key, value string) error {
	sharedErr := t.shared.Set(key, value)
	if sharedErr != nil {
		t.log.Warnf("Shared store unavailable, %s saved locally only: %v", key, sharedErr)
	}

	if err := t.local.Set(key, value); err != nil {
		if sharedErr != nil {
			return fmt.Errorf("failed to set %s: %w", key, errors.Join(sharedErr, err))
		}
		t.log.Debugf("Failed to mirror %s locally: %v", key, err)
	}
	return nil
}

func (t *tieredStore) Delete(key string) error {
	sharedErr := t.shared.Delete(key)
	if sharedErr != nil {
		t.log.Warnf("Shared store unavailable, %s deleted locally only: %v", key, sharedErr)
	}

	if err := t.local.Delete(key); err != nil {
		if sharedErr != nil {
			return fmt.Errorf("failed to delete %s: %w", key, errors.Join(sharedErr, err))
		}
		t.log.Debugf("Failed to mirror %s locally: %v", key, err)
	}
	return nil
}
