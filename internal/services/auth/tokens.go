package auth

import (
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// issue signs a token of the given type for a user
func (s *service) issue(u *models.User, tokenType TokenType, ttl time.Duration) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserID:          u.ID,
		Username:        u.Username,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImage,
		TokenType:       tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ID:        s.uuidGenerator.NewUUID(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// issuePair signs a fresh access and refresh token
func (s *service) issuePair(u *models.User) (*TokenPair, error) {
	access, err := s.issue(u, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := s.issue(u, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		Access:          access,
		Refresh:         refresh,
		ProfileImageURL: u.ProfileImage,
		User:            u,
	}, nil
}

// parse validates a token's signature, expiry and type
func (s *service) parse(tokenString string, expected TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != expected || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
