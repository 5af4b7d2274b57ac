package user

import "github.com/KirkDiggler/buddyup/internal/models"

// SaveUserInput contains parameters for saving a user
type SaveUserInput struct {
	User *models.User
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}

// GetUsersInput contains parameters for retrieving several users
type GetUsersInput struct {
	UserIDs []string
}

// GetUsersOutput holds one entry per requested ID, nil when unknown
type GetUsersOutput struct {
	Users []*models.User
}

// GetUserByProviderInput contains parameters for a provider account lookup
type GetUserByProviderInput struct {
	Provider   models.Provider
	ExternalID string
}

// GetUserByEmailInput contains parameters for an email lookup
type GetUserByEmailInput struct {
	Email string
}

// SaveProfileImageInput contains parameters for storing an avatar
type SaveProfileImageInput struct {
	UserID      string
	ContentType string
	Data        []byte
}

// GetProfileImageInput contains parameters for retrieving an avatar
type GetProfileImageInput struct {
	UserID string
}

// ProfileImage is a stored avatar
type ProfileImage struct {
	ContentType string
	Data        []byte
}
