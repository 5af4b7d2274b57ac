package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/common/uuid"
	"github.com/KirkDiggler/buddyup/internal/models"
	userRepo "github.com/KirkDiggler/buddyup/internal/repositories/user"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	userRepo      userRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	verifiers     map[models.Provider]IdentityVerifier
	secret        []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	logger        *zap.Logger
}

// New creates a new auth service
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

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	accessTTL := cfg.AccessTTL
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}

	refreshTTL := cfg.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	verifiers := make(map[models.Provider]IdentityVerifier, len(cfg.Verifiers))
	for p, v := range cfg.Verifiers {
		if v != nil {
			verifiers[p] = v
		}
	}

	return &service{
		userRepo:      cfg.UserRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		verifiers:     verifiers,
		secret:        []byte(cfg.JWTSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		logger:        logger.Named("auth_service"),
	}, nil
}

// Login verifies a provider credential, finds or creates the user and issues tokens
func (s *service) Login(ctx context.Context, input *LoginInput) (*TokenPair, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Credential == "" {
		if err, ok := missingCredential[input.Provider]; ok {
			return nil, err
		}
		return nil, ErrUnsupportedProvider
	}

	verifier, ok := s.verifiers[input.Provider]
	if !ok {
		return nil, ErrUnsupportedProvider
	}

	identity, err := verifier.Verify(ctx, input.Credential)
	if err != nil {
		return nil, err
	}

	u, err := s.findOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed in",
		zap.String("user_id", u.ID),
		zap.String("provider", string(input.Provider)))

	return s.issuePair(u)
}

// Refresh issues a new pair from a valid refresh token, re-reading the user
func (s *service) Refresh(ctx context.Context, input *RefreshInput) (*TokenPair, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.RefreshToken == "" {
		return nil, ErrMissingRefreshToken
	}

	claims, err := s.parse(input.RefreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: claims.UserID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return s.issuePair(u)
}

// ValidateAccessToken checks an access token
func (s *service) ValidateAccessToken(ctx context.Context, input *ValidateAccessTokenInput) (*Claims, error) {
	if input == nil || input.Token == "" {
		return nil, ErrInvalidToken
	}

	return s.parse(input.Token, TokenTypeAccess)
}

// findOrCreate resolves the user for an identity: by provider account, then
// by email (linking the account), else a new user
func (s *service) findOrCreate(ctx context.Context, id *Identity) (*models.User, error) {
	u, err := s.userRepo.GetUserByProvider(ctx, &userRepo.GetUserByProviderInput{
		Provider:   id.Provider,
		ExternalID: id.ExternalID,
	})
	if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, err
	}

	if u == nil && id.Email != "" {
		u, err = s.userRepo.GetUserByEmail(ctx, &userRepo.GetUserByEmailInput{Email: id.Email})
		if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, err
		}
		if u != nil {
			s.logger.Info("linking provider account by email",
				zap.String("user_id", u.ID),
				zap.String("provider", string(id.Provider)))
		}
	}

	now := s.clock.Now()
	changed := false

	if u == nil {
		u = &models.User{
			ID:        s.uuidGenerator.NewUUID(),
			Username:  defaultUsername(id),
			Interests: []string{},
			CreatedAt: now,
		}
		changed = true
	}

	changed = linkProvider(u, id) || changed
	emailFilled := fillEmpty(&u.Email, id.Email)
	changed = emailFilled || changed
	changed = fillEmpty(&u.FirstName, id.FirstName) || changed
	changed = fillEmpty(&u.LastName, id.LastName) || changed
	changed = fillEmpty(&u.ProfileImage, id.Picture) || changed

	if !changed {
		return u, nil
	}

	u.UpdatedAt = now
	err = s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: u})
	if errors.Is(err, userRepo.ErrEmailTaken) && emailFilled {
		// The address belongs to another account; keep this one without it
		s.logger.Warn("provider email belongs to another user",
			zap.String("user_id", u.ID),
			zap.String("provider", string(id.Provider)))
		u.Email = ""
		err = s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: u})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return u, nil
}

func defaultUsername(id *Identity) string {
	if name := strings.TrimSpace(id.Name); name != "" {
		return name
	}

	switch id.Provider {
	case models.ProviderFacebook:
		return "fb_" + id.ExternalID
	case models.ProviderGoogle:
		if id.Email != "" {
			return id.Email
		}
		return "google_" + id.ExternalID
	}

	return id.ExternalID
}

func linkProvider(u *models.User, id *Identity) bool {
	switch id.Provider {
	case models.ProviderFacebook:
		if u.FacebookID != id.ExternalID {
			u.FacebookID = id.ExternalID
			return true
		}
	case models.ProviderGoogle:
		if u.GoogleID != id.ExternalID {
			u.GoogleID = id.ExternalID
			return true
		}
	}
	return false
}

// fillEmpty sets dst when it is empty and value is not
func fillEmpty(dst *string, value string) bool {
	if *dst != "" || value == "" {
		return false
	}
	*dst = value
	return true
}
