package user

// UserError is a custom error type for user-related errors
type UserError string

// Error implements the error interface
func (e UserError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUserNotFound         UserError = "User not found."
	ErrProfileImageNotFound UserError = "Profile image not found."
	ErrUnauthenticated      UserError = "Authentication credentials were not provided."
	ErrForbidden            UserError = "You can only update your own profile."
	ErrInvalidEmail         UserError = "Enter a valid email address."
	ErrEmailInUse           UserError = "user with this email already exists."
	ErrEmptyParticipants    UserError = "'participants' should not be empty"
	ErrMissingImage         UserError = "No file was submitted."
	ErrNotAnImage           UserError = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	ErrImageTooLarge        UserError = "The image is larger than 5 MiB."

	ErrNilConfig   UserError = "config cannot be nil"
	ErrNilUserRepo UserError = "user repository cannot be nil"
	ErrNilClock    UserError = "clock cannot be nil"
)

// Field returns the request field an error refers to, or empty
func Field(err error) string {
	e, ok := err.(UserError)
	if !ok {
		return ""
	}
	switch e {
	case ErrInvalidEmail, ErrEmailInUse:
		return "email"
	case ErrMissingImage, ErrNotAnImage, ErrImageTooLarge:
		return "profile_image"
	}
	return ""
}
