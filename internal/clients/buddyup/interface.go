package buddyup

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/buddyup/internal/clients/buddyup Client

import (
	"context"
)

// Client talks to the BuddyUp REST API
type Client interface {
	// Login exchanges a provider credential for a token pair
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a refresh token for a new token pair
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)

	// SearchEvents lists upcoming events in a city, optionally ranked by a query
	SearchEvents(ctx context.Context, input *SearchEventsInput) (*ListEventsOutput, error)

	// FilterEvents lists upcoming events matching key/name pairs
	FilterEvents(ctx context.Context, input *FilterEventsInput) (*ListEventsOutput, error)

	// RandomEvents lists a random sample of events
	RandomEvents(ctx context.Context) (*ListEventsOutput, error)

	// ListCreated lists the events the token's user hosts
	ListCreated(ctx context.Context, input *ListMyEventsInput) (*ListEventsOutput, error)

	// ListJoined lists the events the token's user joined
	ListJoined(ctx context.Context, input *ListMyEventsInput) (*ListEventsOutput, error)

	// GetEvent reads a single event
	GetEvent(ctx context.Context, input *GetEventInput) (*EventOutput, error)

	// CreateEvent hosts a new event
	CreateEvent(ctx context.Context, input *CreateEventInput) (*EventOutput, error)

	// UpdateEvent edits an event; Partial sends a PATCH
	UpdateEvent(ctx context.Context, input *UpdateEventInput) (*EventOutput, error)

	// DeleteEvent removes an event
	DeleteEvent(ctx context.Context, input *EventActionInput) error

	// JoinEvent adds the token's user to an event
	JoinEvent(ctx context.Context, input *EventActionInput) (*ActionOutput, error)

	// LeaveEvent removes the token's user from an event
	LeaveEvent(ctx context.Context, input *EventActionInput) (*ActionOutput, error)

	// CancelEvent cancels, or with Reverse reactivates, an event
	CancelEvent(ctx context.Context, input *CancelEventInput) (*ActionOutput, error)

	// UsernamesByIDs resolves participant IDs to usernames
	UsernamesByIDs(ctx context.Context, input *UsernamesByIDsInput) (*UsernamesByIDsOutput, error)

	// GetUser reads a user record
	GetUser(ctx context.Context, input *GetUserInput) (*UserOutput, error)

	// UpdateProfile sends a partial profile update
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UserOutput, error)

	// UploadProfileImage sends a new avatar
	UploadProfileImage(ctx context.Context, input *UploadProfileImageInput) (*UserOutput, error)
}
