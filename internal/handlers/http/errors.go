package http

// ServerError is a custom error type for server configuration errors
type ServerError string

// Error implements the error interface
func (e ServerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      ServerError = "config cannot be nil"
	ErrNilLeaderboard ServerError = "leaderboard service cannot be nil"
	ErrNilCompetition ServerError = "competition service cannot be nil"
	ErrNilClock       ServerError = "clock cannot be nil"
)
