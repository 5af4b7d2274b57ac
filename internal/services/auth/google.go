package auth

import (
	"context"
	"errors"

	"github.com/KirkDiggler/buddyup/internal/models"
	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
)

// ValidateFunc checks a Google ID token against an audience
type ValidateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleConfig holds the configuration for the Google verifier
type GoogleConfig struct {
	// ClientID is the OAuth client the ID token must be issued for
	ClientID string

	// Validate defaults to idtoken.Validate
	Validate ValidateFunc

	Logger *zap.Logger
}

// googleVerifier checks Google ID tokens
type googleVerifier struct {
	clientID string
	validate ValidateFunc
	logger   *zap.Logger
}

// NewGoogleVerifier creates a verifier for Google ID tokens
func NewGoogleVerifier(cfg *GoogleConfig) (*googleVerifier, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ClientID == "" {
		return nil, errors.New("google client ID is required")
	}

	validate := cfg.Validate
	if validate == nil {
		validate = idtoken.Validate
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &googleVerifier{
		clientID: cfg.ClientID,
		validate: validate,
		logger:   logger.Named("google"),
	}, nil
}

// Verify validates the ID token signature, audience and expiry
func (v *googleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, ErrMissingGoogleToken
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		v.logger.Warn("id token rejected", zap.Error(err))
		return nil, ErrInvalidGoogleToken
	}

	if payload.Subject == "" {
		return nil, ErrInvalidGoogleToken
	}

	// Only a verified address may link to an existing account
	email := ""
	if emailVerified(payload.Claims) {
		email = claimString(payload.Claims, "email")
	}

	return &Identity{
		Provider:   models.ProviderGoogle,
		ExternalID: payload.Subject,
		Email:      email,
		Name:       claimString(payload.Claims, "name"),
		FirstName:  claimString(payload.Claims, "given_name"),
		LastName:   claimString(payload.Claims, "family_name"),
		Picture:    claimString(payload.Claims, "picture"),
	}, nil
}

// emailVerified reads email_verified, which arrives as a bool or a string
func emailVerified(claims map[string]interface{}) bool {
	switch v := claims["email_verified"].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
