package user

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/mail"
	"strings"

	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/models"
	userRepo "github.com/KirkDiggler/buddyup/internal/repositories/user"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	userRepo userRepo.Repository
	clock    clock.Clock
	logger   *zap.Logger
}

// New creates a new user service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		userRepo: cfg.UserRepo,
		clock:    cfg.Clock,
		logger:   logger.Named("user_service"),
	}, nil
}

// ProfileImagePath is where the API serves a user's stored avatar
func ProfileImagePath(userID string) string {
	return fmt.Sprintf("/api/users/%s/profile-image/", userID)
}

// GetUser returns a user record
func (s *service) GetUser(ctx context.Context, input *GetUserInput) (*UserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	u, err := s.getUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &UserOutput{User: u}, nil
}

// UpdateProfile applies the provided fields and leaves the rest unchanged
func (s *service) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return nil, ErrUnauthenticated
	}

	if input.TargetID != "" && input.TargetID != input.CallerID {
		return nil, ErrForbidden
	}

	u, err := s.getUser(ctx, input.CallerID)
	if err != nil {
		return nil, err
	}

	f := input.Fields
	if f.Email != nil {
		email := strings.TrimSpace(*f.Email)
		if email != "" {
			if err := validateEmail(email); err != nil {
				return nil, err
			}
		}
		u.Email = email
	}
	if f.Location != nil {
		u.Location = strings.TrimSpace(*f.Location)
	}
	if f.Bio != nil {
		u.Bio = *f.Bio
	}
	if f.Interests != nil {
		u.Interests = normalizeInterests(*f.Interests)
	}

	u.UpdatedAt = s.clock.Now()

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: u}); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	s.logger.Info("profile updated", zap.String("user_id", u.ID))

	return &UserOutput{User: u}, nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at < 1 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}

	return nil
}

// normalizeInterests trims, dedupes and maps known categories to their canonical case
func normalizeInterests(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))

	for _, raw := range in {
		interest := strings.TrimSpace(raw)
		if interest == "" {
			continue
		}
		for _, c := range models.Categories {
			if strings.EqualFold(c, interest) {
				interest = c
				break
			}
		}
		key := strings.ToLower(interest)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, interest)
	}

	return out
}

// UploadProfileImage validates and stores a new avatar for the caller
func (s *service) UploadProfileImage(ctx context.Context, input *UploadProfileImageInput) (*UserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return nil, ErrUnauthenticated
	}

	if len(input.Data) == 0 {
		return nil, ErrMissingImage
	}

	if len(input.Data) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}

	if !strings.HasPrefix(strings.ToLower(input.ContentType), "image/") {
		return nil, ErrNotAnImage
	}

	// The declared type is not trusted; the bytes have to decode
	_, format, err := image.DecodeConfig(bytes.NewReader(input.Data))
	if err != nil {
		return nil, ErrNotAnImage
	}

	u, err := s.getUser(ctx, input.CallerID)
	if err != nil {
		return nil, err
	}

	err = s.userRepo.SaveProfileImage(ctx, &userRepo.SaveProfileImageInput{
		UserID:      u.ID,
		ContentType: "image/" + format,
		Data:        input.Data,
	})
	if err != nil {
		return nil, err
	}

	u.ProfileImage = ProfileImagePath(u.ID)
	u.UpdatedAt = s.clock.Now()

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: u}); err != nil {
		return nil, err
	}

	s.logger.Info("profile image uploaded",
		zap.String("user_id", u.ID),
		zap.String("format", format),
		zap.Int("bytes", len(input.Data)))

	return &UserOutput{User: u}, nil
}

// GetProfileImage returns a stored avatar
func (s *service) GetProfileImage(ctx context.Context, input *GetProfileImageInput) (*GetProfileImageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.UserID == "" {
		return nil, ErrProfileImageNotFound
	}

	img, err := s.userRepo.GetProfileImage(ctx, &userRepo.GetProfileImageInput{UserID: input.UserID})
	if err != nil {
		if errors.Is(err, userRepo.ErrProfileImageNotFound) {
			return nil, ErrProfileImageNotFound
		}
		return nil, err
	}

	return &GetProfileImageOutput{
		ContentType: img.ContentType,
		Data:        img.Data,
	}, nil
}

// UsernamesByIDs resolves user IDs in order
func (s *service) UsernamesByIDs(ctx context.Context, input *UsernamesByIDsInput) (*UsernamesByIDsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Blank IDs keep their position with a nil name
	ids := make([]string, 0, len(input.UserIDs))
	positions := make([]int, 0, len(input.UserIDs))
	for i, id := range input.UserIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
			positions = append(positions, i)
		}
	}

	if len(ids) == 0 {
		return nil, ErrEmptyParticipants
	}

	out, err := s.userRepo.GetUsers(ctx, &userRepo.GetUsersInput{UserIDs: ids})
	if err != nil {
		return nil, err
	}

	names := make([]*string, len(input.UserIDs))
	for j, u := range out.Users {
		if u != nil && j < len(positions) {
			name := u.Username
			names[positions[j]] = &name
		}
	}

	return &UsernamesByIDsOutput{Usernames: names}, nil
}

func (s *service) getUser(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, ErrUserNotFound
	}

	u, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return u, nil
}
