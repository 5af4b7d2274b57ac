package auth

//go:generate mockgen -package=mocks -destination=mocks/mock_identity_verifier.go github.com/KirkDiggler/buddyup/internal/services/auth IdentityVerifier

import (
	"context"

	"github.com/KirkDiggler/buddyup/internal/models"
)

// Identity is what a provider asserts about the person behind a credential
type Identity struct {
	Provider   models.Provider
	ExternalID string
	Email      string
	Name       string
	FirstName  string
	LastName   string
	Picture    string
}

// IdentityVerifier exchanges a provider credential for a verified identity
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (*Identity, error)
}
