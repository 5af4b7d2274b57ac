package session

// SessionError is a custom error type for sign-in errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidToken       SessionError = "invalid token"
	ErrMissingCredential  SessionError = "no credential received"
	ErrMissingAccessToken SessionError = "response does not contain 'access' token"
	ErrMissingOwner       SessionError = "owner ID is required"

	ErrNilConfig      SessionError = "config cannot be nil"
	ErrNilSessionRepo SessionError = "session repository cannot be nil"
	ErrNilClient      SessionError = "api client cannot be nil"
	ErrNilClock       SessionError = "clock cannot be nil"
)
