package terminal

// LoopError is a custom error type for render loop errors
type LoopError string

// Error implements the error interface
func (e LoopError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      LoopError = "config cannot be nil"
	ErrNilScreen      LoopError = "screen cannot be nil"
	ErrNilSession     LoopError = "session cannot be nil"
	ErrNilIdentity    LoopError = "identity service cannot be nil"
	ErrNilLeaderboard LoopError = "leaderboard service cannot be nil"
	ErrNilCompetition LoopError = "competition service cannot be nil"
	ErrNilAdmin       LoopError = "admin service cannot be nil"
	ErrNilClock       LoopError = "clock cannot be nil"
	ErrNilSprites     LoopError = "sprites must be loaded before the loop starts"
	ErrNilAssets      LoopError = "asset filesystem cannot be nil"
	ErrEmptySprite    LoopError = "sprite is empty"
)
