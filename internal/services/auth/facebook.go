package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
	"go.uber.org/zap"
)

// DefaultGraphURL is the Facebook Graph API base URL
const DefaultGraphURL = "https://graph.facebook.com"

// FacebookConfig holds the configuration for the Facebook verifier
type FacebookConfig struct {
	AppID     string
	AppSecret string

	// GraphURL defaults to DefaultGraphURL
	GraphURL string

	// HTTPClient defaults to a client with a 10 second timeout
	HTTPClient *http.Client

	Logger *zap.Logger
}

// facebookVerifier checks access tokens against the Graph API
type facebookVerifier struct {
	appID      string
	appToken   string
	graphURL   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewFacebookVerifier creates a verifier for Facebook access tokens
func NewFacebookVerifier(cfg *FacebookConfig) (*facebookVerifier, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.AppID == "" || cfg.AppSecret == "" {
		return nil, errors.New("facebook app ID and secret are required")
	}

	graphURL := strings.TrimRight(cfg.GraphURL, "/")
	if graphURL == "" {
		graphURL = DefaultGraphURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &facebookVerifier{
		appID:      cfg.AppID,
		appToken:   cfg.AppID + "|" + cfg.AppSecret,
		graphURL:   graphURL,
		httpClient: httpClient,
		logger:     logger.Named("facebook"),
	}, nil
}

type debugTokenResponse struct {
	Data struct {
		IsValid bool   `json:"is_valid"`
		AppID   string `json:"app_id"`
		UserID  string `json:"user_id"`
	} `json:"data"`
}

type facebookUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Picture   struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// Verify inspects the token with debug_token, then reads the user's profile
func (v *facebookVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	if accessToken == "" {
		return nil, ErrMissingFacebookToken
	}

	var debug debugTokenResponse
	err := v.getJSON(ctx, "/debug_token", url.Values{
		"input_token":  {accessToken},
		"access_token": {v.appToken},
	}, &debug)
	if err != nil {
		v.logger.Warn("debug_token failed", zap.Error(err))
		return nil, ErrCannotVerifyFacebook
	}

	if !debug.Data.IsValid || debug.Data.UserID == "" {
		return nil, ErrInvalidFacebookToken
	}

	if debug.Data.AppID != v.appID {
		v.logger.Warn("token issued to another app", zap.String("app_id", debug.Data.AppID))
		return nil, ErrInvalidFacebookToken
	}

	var fbUser facebookUser
	err = v.getJSON(ctx, "/"+url.PathEscape(debug.Data.UserID), url.Values{
		"fields":       {"id,name,email,first_name,last_name,picture"},
		"access_token": {accessToken},
	}, &fbUser)
	if err != nil {
		v.logger.Warn("user info failed", zap.Error(err), zap.String("facebook_id", debug.Data.UserID))
		return nil, ErrFacebookUserInfo
	}

	return &Identity{
		Provider:   models.ProviderFacebook,
		ExternalID: debug.Data.UserID,
		Email:      fbUser.Email,
		Name:       fbUser.Name,
		FirstName:  fbUser.FirstName,
		LastName:   fbUser.LastName,
		Picture:    fbUser.Picture.Data.URL,
	}, nil
}

func (v *facebookVerifier) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.graphURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call graph API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graph API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode graph response: %w", err)
	}

	return nil
}
