package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/buddyup/internal/repositories/session Repository

import (
	"context"
)

// Repository stores the signed-in state of front-end users
type Repository interface {
	// SaveSession stores a session, replacing any previous one for the owner
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves the session for an owner
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// DeleteSession removes the session for an owner
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
