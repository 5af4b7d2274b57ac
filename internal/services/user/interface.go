package user

import "context"

// Service defines the interface for user profile operations
type Service interface {
	// GetUser returns a user record
	GetUser(ctx context.Context, input *GetUserInput) (*UserOutput, error)

	// UpdateProfile applies a partial profile update for the caller
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UserOutput, error)

	// UploadProfileImage stores a new avatar for the caller
	UploadProfileImage(ctx context.Context, input *UploadProfileImageInput) (*UserOutput, error)

	// GetProfileImage returns a stored avatar
	GetProfileImage(ctx context.Context, input *GetProfileImageInput) (*GetProfileImageOutput, error)

	// UsernamesByIDs maps user IDs to usernames, nil for unknown IDs
	UsernamesByIDs(ctx context.Context, input *UsernamesByIDsInput) (*UsernamesByIDsOutput, error)
}
