package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/buddyup/internal/services/session Service

import "context"

// Service tracks who is signed in on the front end
type Service interface {
	// Load returns the persisted session for an owner, or an empty one
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Login exchanges a provider credential and persists the new session
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout clears the persisted session
	Logout(ctx context.Context, input *LogoutInput) error
}
