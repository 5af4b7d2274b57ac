package buddyup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
	"go.uber.org/zap"
)

// Config holds the configuration for the API client
type Config struct {
	// BaseURL is the backend root, e.g. http://localhost:8000
	BaseURL string

	// HTTPClient defaults to a client with a 10 second timeout
	HTTPClient *http.Client

	Logger *zap.Logger
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a new API client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger.Named("buddyup_client"),
	}, nil
}

// request describes one call to the backend
type request struct {
	method      string
	path        string
	token       string
	query       url.Values
	body        io.Reader
	contentType string
}

// do sends a request and returns the body of a 2xx response
func (c *client) do(ctx context.Context, r *request) ([]byte, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
		c.logger.Debug("api error",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return nil, apiErr
	}

	return body, nil
}

// doJSON sends an optional JSON body and decodes an optional JSON response
func (c *client) doJSON(ctx context.Context, method, path, token string, query url.Values, in, out interface{}) error {
	r := &request{method: method, path: path, token: token, query: query}

	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		r.body = bytes.NewReader(raw)
		r.contentType = "application/json"
	}

	body, err := c.do(ctx, r)
	if err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	return json.Unmarshal(body, out)
}

// errorMessage pulls a readable message out of an error body
func errorMessage(body []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"error", "detail", "message"} {
			var s string
			if raw, ok := obj[key]; ok && json.Unmarshal(raw, &s) == nil {
				return s
			}
		}

		// Field errors: {"email": ["Enter a valid email address."]}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var parts []string
		for _, k := range keys {
			var msgs []string
			if json.Unmarshal(obj[k], &msgs) == nil && len(msgs) > 0 {
				parts = append(parts, k+": "+strings.Join(msgs, " "))
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}

	return strings.TrimSpace(string(body))
}

// decodeEvents accepts a bare array or an object wrapping one; anything else is empty
func decodeEvents(body []byte) []*models.Event {
	var events []*models.Event
	if err := json.Unmarshal(body, &events); err == nil {
		if events == nil {
			return []*models.Event{}
		}
		return events
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err == nil {
		for _, key := range []string{"results", "attending_events", "hosting_events"} {
			raw, ok := wrapped[key]
			if !ok {
				continue
			}
			if err := json.Unmarshal(raw, &events); err == nil && events != nil {
				return events
			}
		}
	}

	return []*models.Event{}
}

func (c *client) listEvents(ctx context.Context, path, token string, query url.Values) (*ListEventsOutput, error) {
	body, err := c.do(ctx, &request{method: http.MethodGet, path: path, token: token, query: query})
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{Events: decodeEvents(body)}, nil
}

func eventPath(id string, suffix string) string {
	return "/api/events/" + url.PathEscape(id) + "/" + suffix
}

// Login exchanges a provider credential for a token pair
func (c *client) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var (
		path string
		body interface{}
	)
	switch input.Provider {
	case models.ProviderFacebook:
		path = "/api/auth/facebook/"
		body = map[string]string{"access_token": input.Credential}
	case models.ProviderGoogle:
		path = "/api/auth/google/"
		body = map[string]string{"id_token": input.Credential}
	default:
		return nil, fmt.Errorf("unsupported provider %q", input.Provider)
	}

	out := &LoginOutput{}
	if err := c.doJSON(ctx, http.MethodPost, path, "", nil, body, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Refresh exchanges a refresh token for a new token pair
func (c *client) Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out := &LoginOutput{}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/refresh/", "", nil,
		map[string]string{"refresh": input.RefreshToken}, out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SearchEvents lists upcoming events in a city
func (c *client) SearchEvents(ctx context.Context, input *SearchEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	q := url.Values{}
	q.Set("city", input.City)
	if input.Query != "" {
		q.Set("query", input.Query)
	}
	if input.Page != nil {
		q.Set("page", strconv.Itoa(*input.Page))
	}

	return c.listEvents(ctx, "/api/events/search/", "", q)
}

// FilterEvents lists upcoming events matching every pair
func (c *client) FilterEvents(ctx context.Context, input *FilterEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	q := url.Values{}
	for _, f := range input.Filters {
		q.Add("key", f.Key)
		q.Add("name", f.Name)
	}
	if input.Page != nil {
		q.Set("page", strconv.Itoa(*input.Page))
	}

	return c.listEvents(ctx, "/api/events/filter/", "", q)
}

// RandomEvents lists a random sample of events
func (c *client) RandomEvents(ctx context.Context) (*ListEventsOutput, error) {
	return c.listEvents(ctx, "/api/events/fetch/random/", "", nil)
}

// ListCreated lists hosted events
func (c *client) ListCreated(ctx context.Context, input *ListMyEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return c.listEvents(ctx, "/api/events/created/", input.Token, nil)
}

// ListJoined lists joined events
func (c *client) ListJoined(ctx context.Context, input *ListMyEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return c.listEvents(ctx, "/api/events/joined/", input.Token, nil)
}

// GetEvent reads a single event
func (c *client) GetEvent(ctx context.Context, input *GetEventInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e := &models.Event{}
	if err := c.doJSON(ctx, http.MethodGet, eventPath(input.EventID, ""), input.Token, nil, nil, e); err != nil {
		return nil, err
	}

	return &EventOutput{Event: e}, nil
}

// CreateEvent hosts a new event
func (c *client) CreateEvent(ctx context.Context, input *CreateEventInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e := &models.Event{}
	if err := c.doJSON(ctx, http.MethodPost, "/api/events/new/", input.Token, nil, input.Fields, e); err != nil {
		return nil, err
	}

	return &EventOutput{Event: e}, nil
}

// UpdateEvent edits an event
func (c *client) UpdateEvent(ctx context.Context, input *UpdateEventInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	method := http.MethodPut
	if input.Partial {
		method = http.MethodPatch
	}

	e := &models.Event{}
	if err := c.doJSON(ctx, method, eventPath(input.EventID, ""), input.Token, nil, input.Fields, e); err != nil {
		return nil, err
	}

	return &EventOutput{Event: e}, nil
}

// DeleteEvent removes an event
func (c *client) DeleteEvent(ctx context.Context, input *EventActionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return c.doJSON(ctx, http.MethodDelete, eventPath(input.EventID, ""), input.Token, nil, nil, nil)
}

func (c *client) eventAction(ctx context.Context, token, path string, query url.Values) (*ActionOutput, error) {
	out := &ActionOutput{}
	if err := c.doJSON(ctx, http.MethodPost, path, token, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// JoinEvent adds the token's user to an event
func (c *client) JoinEvent(ctx context.Context, input *EventActionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return c.eventAction(ctx, input.Token, eventPath(input.EventID, "join/"), nil)
}

// LeaveEvent removes the token's user from an event
func (c *client) LeaveEvent(ctx context.Context, input *EventActionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return c.eventAction(ctx, input.Token, eventPath(input.EventID, "leave/"), nil)
}

// CancelEvent cancels or reactivates an event
func (c *client) CancelEvent(ctx context.Context, input *CancelEventInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var q url.Values
	if input.Reverse {
		q = url.Values{"reverse": {"true"}}
	}

	return c.eventAction(ctx, input.Token, eventPath(input.EventID, "cancel/"), q)
}

// UsernamesByIDs resolves participant IDs to usernames
func (c *client) UsernamesByIDs(ctx context.Context, input *UsernamesByIDsInput) (*UsernamesByIDsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	q := url.Values{"participants": {strings.Join(input.UserIDs, ",")}}

	out := &UsernamesByIDsOutput{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/idtoname/", "", q, nil, out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetUser reads a user record
func (c *client) GetUser(ctx context.Context, input *GetUserInput) (*UserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	u := &models.User{}
	path := "/api/users/" + url.PathEscape(input.UserID) + "/"
	if err := c.doJSON(ctx, http.MethodGet, path, input.Token, nil, nil, u); err != nil {
		return nil, err
	}

	return &UserOutput{User: u}, nil
}

// UpdateProfile sends every staged field in one call
func (c *client) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	u := &models.User{}
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/update/", input.Token, nil, input.Fields, u); err != nil {
		return nil, err
	}

	return &UserOutput{User: u}, nil
}

// UploadProfileImage sends a multipart upload in the profile_image field
func (c *client) UploadProfileImage(ctx context.Context, input *UploadProfileImageInput) (*UserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	filename := input.Filename
	if filename == "" {
		filename = "profile_image"
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="profile_image"; filename=%q`, filename))
	h.Set("Content-Type", input.ContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(input.Data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	body, err := c.do(ctx, &request{
		method:      http.MethodPost,
		path:        "/api/users/upload-profile-image/",
		token:       input.Token,
		body:        &buf,
		contentType: w.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	u := &models.User{}
	if err := json.Unmarshal(body, u); err != nil {
		return nil, err
	}

	return &UserOutput{User: u}, nil
}
