package session

import (
	"time"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/models"
	sessionRepo "github.com/KirkDiggler/buddyup/internal/repositories/session"
	"go.uber.org/zap"
)

// Config holds the configuration for the session service
type Config struct {
	SessionRepo sessionRepo.Repository
	Client      buddyup.Client
	Clock       clock.Clock
	Logger      *zap.Logger

	// TTL expires stored sessions; zero keeps them until logout
	TTL time.Duration
}

// LoadInput contains parameters for loading a session
type LoadInput struct {
	OwnerID string
}

// LoadOutput contains the loaded session
type LoadOutput struct {
	Session *models.Session
}

// LoginInput contains parameters for signing in
type LoginInput struct {
	OwnerID    string
	Provider   models.Provider
	Credential string

	// CurrentPath is where the user was when signing in
	CurrentPath string
}

// LoginOutput contains the new session
type LoginOutput struct {
	Session *models.Session

	// RedirectPath is set when the user should return to an event page
	RedirectPath string
}

// LogoutInput contains parameters for signing out
type LogoutInput struct {
	OwnerID string
}
