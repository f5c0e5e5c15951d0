package leaderboard

// LeaderboardError is a custom error type for leaderboard errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       LeaderboardError = "config cannot be nil"
	ErrNilRepository   LeaderboardError = "leaderboard repository cannot be nil"
	ErrNilClock        LeaderboardError = "clock cannot be nil"
	ErrInvalidPlayerID LeaderboardError = "player ID cannot be empty"
	ErrInvalidScore    LeaderboardError = "score cannot be negative"
	ErrInvalidWallet   LeaderboardError = "wallet must be 0x followed by 40 hex characters"
	ErrEntryNotFound   LeaderboardError = "no leaderboard entry for player"
)
