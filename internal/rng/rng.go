package rng

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/bonedash/internal/rng Source

// Source provides the random draws used for obstacle generation
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64

	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Rand is a mutex guarded math/rand source
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Rand{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a pseudo-random value in [0, 1)
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Intn returns a pseudo-random value in [0, n). n < 1 is treated as 1.
func (r *Rand) Intn(n int) int {
	if n < 1 {
		n = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Between draws uniformly from [min, max]
func Between(src Source, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + src.Float64()*(max-min)
}
