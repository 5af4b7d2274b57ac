package session

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// DecodeToken returns the payload of a token without verifying its signature
func DecodeToken(token string) (jwt.MapClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, ErrInvalidToken
	}

	// Accept standard base64 characters as well as the URL alphabet
	segment := strings.NewReplacer("+", "-", "/", "_").Replace(parts[1])

	raw, err := jwt.NewParser().DecodeSegment(strings.TrimRight(segment, "="))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ProfileFromClaims maps token claims to a profile, filling placeholders
func ProfileFromClaims(claims jwt.MapClaims) *models.UserProfile {
	profile := &models.UserProfile{
		UserID:  claimString(claims, "user_id"),
		Name:    claimString(claims, "username"),
		Email:   claimString(claims, "email"),
		Picture: claimString(claims, "profile_image_url"),
	}

	if profile.Name == "" {
		profile.Name = models.UnknownName
	}
	if profile.Email == "" {
		profile.Email = models.NoEmail
	}

	return profile
}

func claimString(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
