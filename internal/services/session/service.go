package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/models"
	sessionRepo "github.com/KirkDiggler/buddyup/internal/repositories/session"
	"go.uber.org/zap"
)

// eventPathPrefix marks the pages a user returns to after signing in
const eventPathPrefix = "/events/"

type service struct {
	sessionRepo sessionRepo.Repository
	client      buddyup.Client
	clock       clock.Clock
	ttl         time.Duration
	logger      *zap.Logger
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		client:      cfg.Client,
		clock:       cfg.Clock,
		ttl:         cfg.TTL,
		logger:      logger.Named("session_service"),
	}, nil
}

// Load seeds a session from storage
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.OwnerID == "" {
		return nil, ErrMissingOwner
	}

	out, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	sess := out.Session
	if sess == nil || sess.AccessToken == "" {
		return &LoadOutput{Session: &models.Session{OwnerID: input.OwnerID}}, nil
	}

	sess.IsSignedIn = true

	if sess.UserProfile == nil {
		claims, err := DecodeToken(sess.AccessToken)
		if err != nil {
			s.logger.Warn("error decoding stored token",
				zap.String("owner_id", input.OwnerID),
				zap.Error(err))
		} else {
			sess.UserProfile = ProfileFromClaims(claims)
		}
	}

	return &LoadOutput{Session: sess}, nil
}

// Login exchanges the credential with the backend and stores the result.
// Failures are logged and returned; callers show no error state.
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.OwnerID == "" {
		return nil, ErrMissingOwner
	}

	logger := s.logger.With(
		zap.String("owner_id", input.OwnerID),
		zap.String("provider", string(input.Provider)))

	if input.Credential == "" {
		logger.Error("no credential received")
		return nil, ErrMissingCredential
	}

	pair, err := s.client.Login(ctx, &buddyup.LoginInput{
		Provider:   input.Provider,
		Credential: input.Credential,
	})
	if err != nil {
		logger.Error("error retrieving token", zap.Error(err))
		return nil, err
	}

	if pair.Access == "" {
		logger.Error("response does not contain access token")
		return nil, ErrMissingAccessToken
	}

	sess := &models.Session{
		OwnerID:      input.OwnerID,
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		IsSignedIn:   true,
		Provider:     input.Provider,
		UpdatedAt:    s.clock.Now(),
	}

	claims, err := DecodeToken(pair.Access)
	if err != nil {
		logger.Error("error decoding token", zap.Error(err))
	} else {
		sess.UserProfile = ProfileFromClaims(claims)
	}

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
		TTL:     s.ttl,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("signed in", zap.String("user_id", sess.UserID()))

	output := &LoginOutput{Session: sess}
	if strings.HasPrefix(input.CurrentPath, eventPathPrefix) {
		output.RedirectPath = input.CurrentPath
	}

	return output, nil
}

// Logout forgets the stored token and profile
func (s *service) Logout(ctx context.Context, input *LogoutInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.OwnerID == "" {
		return ErrMissingOwner
	}

	return s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{OwnerID: input.OwnerID})
}
