package competition

// CompetitionError is a custom error type for competition errors
type CompetitionError string

// Error implements the error interface
func (e CompetitionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       CompetitionError = "config cannot be nil"
	ErrNilStore        CompetitionError = "store cannot be nil"
	ErrNilClock        CompetitionError = "clock cannot be nil"
	ErrInvalidDuration CompetitionError = "duration must be a positive number of days"
	ErrCorruptWindow   CompetitionError = "stored competition end time is not a timestamp"
)
