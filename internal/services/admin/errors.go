package admin

// AdminError is a custom error type for admin errors
type AdminError string

// Error implements the error interface
func (e AdminError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      AdminError = "config cannot be nil"
	ErrNilLeaderboard AdminError = "leaderboard service cannot be nil"
	ErrNilCompetition AdminError = "competition service cannot be nil"
	ErrNilClock       AdminError = "clock cannot be nil"
	ErrNotAdmin       AdminError = "player is not an admin"
)
