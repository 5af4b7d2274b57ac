package auth

import "github.com/KirkDiggler/buddyup/internal/models"

// AuthError is a custom error type for authentication errors
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingFacebookToken AuthError = "Missing Facebook access token"
	ErrCannotVerifyFacebook AuthError = "Cannot verify Facebook token"
	ErrInvalidFacebookToken AuthError = "Invalid Facebook token"
	ErrFacebookUserInfo     AuthError = "Cannot get Facebook user information"
	ErrMissingGoogleToken   AuthError = "Missing Google ID token"
	ErrInvalidGoogleToken   AuthError = "Invalid Google ID token"
	ErrUnsupportedProvider  AuthError = "Unsupported identity provider"
	ErrMissingRefreshToken  AuthError = "Missing refresh token"
	ErrInvalidToken         AuthError = "Token is invalid or expired"

	ErrNilConfig        AuthError = "config cannot be nil"
	ErrNilUserRepo      AuthError = "user repository cannot be nil"
	ErrNilClock         AuthError = "clock cannot be nil"
	ErrNilUUIDGenerator AuthError = "UUID generator cannot be nil"
	ErrMissingSecret    AuthError = "JWT secret cannot be empty"
)

// missingCredential maps a provider to the error for an empty credential
var missingCredential = map[models.Provider]AuthError{
	models.ProviderFacebook: ErrMissingFacebookToken,
	models.ProviderGoogle:   ErrMissingGoogleToken,
}
