package auth

import (
	"time"

	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/common/uuid"
	"github.com/KirkDiggler/buddyup/internal/models"
	userRepo "github.com/KirkDiggler/buddyup/internal/repositories/user"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenType distinguishes access tokens from refresh tokens
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Default token lifetimes
const (
	DefaultAccessTTL  = 24 * time.Hour
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Claims is the payload of a BuddyUp token
type Claims struct {
	UserID          string    `json:"user_id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	ProfileImageURL string    `json:"profile_image_url"`
	TokenType       TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// Config holds the configuration for the auth service
type Config struct {
	UserRepo      userRepo.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Verifiers maps each enabled provider to its verifier
	Verifiers map[models.Provider]IdentityVerifier

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	Logger *zap.Logger
}

// LoginInput contains the provider credential to exchange
type LoginInput struct {
	Provider   models.Provider
	Credential string
}

// RefreshInput contains the refresh token to exchange
type RefreshInput struct {
	RefreshToken string
}

// ValidateAccessTokenInput contains the bearer token to check
type ValidateAccessTokenInput struct {
	Token string
}

// TokenPair is the result of a successful login or refresh
type TokenPair struct {
	Access          string       `json:"access"`
	Refresh         string       `json:"refresh"`
	ProfileImageURL string       `json:"profile_image_url"`
	User            *models.User `json:"-"`
}
