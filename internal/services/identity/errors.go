package identity

// IdentityError is a custom error type for identity errors
type IdentityError string

// Error implements the error interface
func (e IdentityError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        IdentityError = "config cannot be nil"
	ErrNilStore         IdentityError = "store cannot be nil"
	ErrNilClock         IdentityError = "clock cannot be nil"
	ErrNilUUIDGenerator IdentityError = "UUID generator cannot be nil"
)
