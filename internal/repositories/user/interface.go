package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/buddyup/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/buddyup/internal/models"
)

// Repository defines the interface for user data persistence
type Repository interface {
	// SaveUser persists a user and its lookup indexes
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// GetUsers retrieves several users, leaving nil where an ID is unknown
	GetUsers(ctx context.Context, input *GetUsersInput) (*GetUsersOutput, error)

	// GetUserByProvider retrieves a user by identity provider account
	GetUserByProvider(ctx context.Context, input *GetUserByProviderInput) (*models.User, error)

	// GetUserByEmail retrieves a user by email address
	GetUserByEmail(ctx context.Context, input *GetUserByEmailInput) (*models.User, error)

	// SaveProfileImage stores the raw avatar bytes for a user
	SaveProfileImage(ctx context.Context, input *SaveProfileImageInput) error

	// GetProfileImage retrieves the raw avatar bytes for a user
	GetProfileImage(ctx context.Context, input *GetProfileImageInput) (*ProfileImage, error)
}
