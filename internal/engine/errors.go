package engine

// EngineError is a custom error type for session errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      EngineError = "config cannot be nil"
	ErrNilRandom      EngineError = "random source cannot be nil"
	ErrNilClock       EngineError = "clock cannot be nil"
	ErrSessionRunning EngineError = "session is already running"
)
