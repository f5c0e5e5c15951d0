package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/bonedash/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Suffix returns the first n lowercase hex characters of a fresh UUID with dashes removed.
// n is capped at 32.
func Suffix(gen UUID, n int) string {
	raw := strings.ToLower(strings.ReplaceAll(gen.NewUUID(), "-", ""))
	if n > len(raw) {
		n = len(raw)
	}
	return raw[:n]
}
