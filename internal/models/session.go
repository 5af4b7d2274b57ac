package models

import (
	"time"
)

// Provider identifies a third-party identity provider
type Provider string

const (
	// ProviderFacebook signs in with a Facebook access token
	ProviderFacebook Provider = "facebook"

	// ProviderGoogle signs in with a Google ID token
	ProviderGoogle Provider = "google"
)

// Valid returns true for known providers
func (p Provider) Valid() bool {
	return p == ProviderFacebook || p == ProviderGoogle
}

const (
	// UnknownName is shown when the token carries no username
	UnknownName = "Unknown"

	// NoEmail is shown when the token carries no email
	NoEmail = "No Email Provided"
)

// UserProfile is the identity decoded from an access token
type UserProfile struct {
	UserID  string `json:"userID"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Session is the client-held record of a signed-in user
type Session struct {
	// OwnerID is the front-end user this session belongs to
	OwnerID string `json:"owner_id"`

	// AccessToken is the bearer token sent with authenticated calls
	AccessToken string `json:"access_token,omitempty"`

	// RefreshToken is kept to renew the access token
	RefreshToken string `json:"refresh_token,omitempty"`

	// UserProfile is nil until a token has been decoded
	UserProfile *UserProfile `json:"user_profile,omitempty"`

	// IsSignedIn indicates a token is present
	IsSignedIn bool `json:"is_signed_in"`

	// Provider is the identity provider used to sign in
	Provider Provider `json:"provider,omitempty"`

	// UpdatedAt is when the session was last written
	UpdatedAt time.Time `json:"updated_at"`
}

// UserID returns the signed-in user ID, or empty when signed out
func (s *Session) UserID() string {
	if s == nil || s.UserProfile == nil {
		return ""
	}
	return s.UserProfile.UserID
}
