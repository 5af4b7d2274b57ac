package buddyup

import (
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
)

// LoginInput contains a provider credential
type LoginInput struct {
	Provider   models.Provider
	Credential string
}

// LoginOutput is the token pair returned by the backend.
// Access is empty when the backend answered without one.
type LoginOutput struct {
	Access          string `json:"access"`
	Refresh         string `json:"refresh"`
	ProfileImageURL string `json:"profile_image_url"`
}

// RefreshInput contains a refresh token
type RefreshInput struct {
	RefreshToken string
}

// SearchEventsInput contains parameters for a city search
type SearchEventsInput struct {
	City  string
	Query string
	Page  *int
}

// Filter is one key/name pair of a filter request
type Filter struct {
	Key  string
	Name string
}

// FilterEventsInput contains parameters for a filter request
type FilterEventsInput struct {
	Filters []Filter
	Page    *int
}

// ListMyEventsInput contains the caller's token
type ListMyEventsInput struct {
	Token string
}

// ListEventsOutput contains a list of events
type ListEventsOutput struct {
	Events []*models.Event
}

// GetEventInput contains parameters for reading an event
type GetEventInput struct {
	// Token is optional
	Token   string
	EventID string
}

// EventOutput contains a single event
type EventOutput struct {
	Event *models.Event
}

// EventFields carries writable event fields; nil fields are omitted
type EventFields struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	City        *string    `json:"city,omitempty"`
	Location    *string    `json:"location,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
}

// CreateEventInput contains parameters for hosting an event
type CreateEventInput struct {
	Token  string
	Fields EventFields
}

// UpdateEventInput contains parameters for editing an event
type UpdateEventInput struct {
	Token   string
	EventID string
	Fields  EventFields
	Partial bool
}

// EventActionInput identifies an event acted on by the token's user
type EventActionInput struct {
	Token   string
	EventID string
}

// CancelEventInput contains parameters for cancelling an event
type CancelEventInput struct {
	Token   string
	EventID string
	Reverse bool
}

// ActionOutput is the backend's confirmation of a membership action
type ActionOutput struct {
	Message string        `json:"message"`
	Event   *models.Event `json:"event,omitempty"`
}

// UsernamesByIDsInput contains participant IDs
type UsernamesByIDsInput struct {
	UserIDs []string
}

// UsernamesByIDsOutput holds one entry per requested ID, nil when unknown
type UsernamesByIDsOutput struct {
	Usernames []*string `json:"usernames"`
}

// GetUserInput contains parameters for reading a user
type GetUserInput struct {
	Token  string
	UserID string
}

// UserOutput contains a user record
type UserOutput struct {
	User *models.User
}

// ProfileFields carries editable profile fields; nil fields are omitted
type ProfileFields struct {
	Email     *string   `json:"email,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Interests *[]string `json:"interests,omitempty"`
}

// UpdateProfileInput contains parameters for a profile update
type UpdateProfileInput struct {
	Token  string
	Fields ProfileFields
}

// UploadProfileImageInput contains an avatar upload
type UploadProfileImageInput struct {
	Token       string
	Filename    string
	ContentType string
	Data        []byte
}
