package auth

import "context"

// Service defines the interface for authentication operations
type Service interface {
	// Login exchanges a provider credential for a BuddyUp token pair
	Login(ctx context.Context, input *LoginInput) (*TokenPair, error)

	// Refresh exchanges a refresh token for a new token pair
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPair, error)

	// ValidateAccessToken checks an access token and returns its claims
	ValidateAccessToken(ctx context.Context, input *ValidateAccessTokenInput) (*Claims, error)
}
