package user

import (
	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/models"
	userRepo "github.com/KirkDiggler/buddyup/internal/repositories/user"
	"go.uber.org/zap"
)

// MaxImageBytes caps avatar uploads
const MaxImageBytes = 5 << 20

// Config holds the configuration for the user service
type Config struct {
	UserRepo userRepo.Repository
	Clock    clock.Clock
	Logger   *zap.Logger
}

// GetUserInput contains parameters for reading a user
type GetUserInput struct {
	UserID string
}

// UserOutput contains a single user record
type UserOutput struct {
	User *models.User
}

// ProfileFields carries the editable profile fields; nil means unchanged
type ProfileFields struct {
	Email     *string   `json:"email"`
	Location  *string   `json:"location"`
	Bio       *string   `json:"bio"`
	Interests *[]string `json:"interests"`
}

// UpdateProfileInput contains parameters for a profile update
type UpdateProfileInput struct {
	CallerID string

	// TargetID must equal CallerID when set
	TargetID string

	Fields ProfileFields
}

// UploadProfileImageInput contains parameters for an avatar upload
type UploadProfileImageInput struct {
	CallerID    string
	ContentType string
	Data        []byte
}

// GetProfileImageInput contains parameters for reading an avatar
type GetProfileImageInput struct {
	UserID string
}

// GetProfileImageOutput contains a stored avatar
type GetProfileImageOutput struct {
	ContentType string
	Data        []byte
}

// UsernamesByIDsInput contains parameters for resolving participant names
type UsernamesByIDsInput struct {
	UserIDs []string
}

// UsernamesByIDsOutput holds one entry per requested ID
type UsernamesByIDsOutput struct {
	Usernames []*string
}
