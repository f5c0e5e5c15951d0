package localstore

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/bonedash/internal/repositories/localstore Store

// Keys used by the client
const (
	KeyPlayerID          = "boneDashPlayerId"
	KeyUsername          = "boneDashUsername"
	KeyCompetitionEndsAt = "boneDashCompetitionEndTime"
)

// Store is a small synchronous key/value store local to one device
type Store interface {
	// Get returns the value and whether the key was present
	Get(key string) (string, bool, error)

	// Set stores a value
	Set(key, value string) error

	// Delete removes a key; missing keys are not an error
	Delete(key string) error
}
