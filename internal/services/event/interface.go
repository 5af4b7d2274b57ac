package event

import "context"

// Service defines the interface for event operations
type Service interface {
	// CreateEvent hosts a new event for the caller
	CreateEvent(ctx context.Context, input *CreateEventInput) (*EventOutput, error)

	// GetEvent returns a single event with its derived status
	GetEvent(ctx context.Context, input *GetEventInput) (*EventOutput, error)

	// UpdateEvent replaces or patches an event the caller hosts
	UpdateEvent(ctx context.Context, input *UpdateEventInput) (*EventOutput, error)

	// DeleteEvent removes an event the caller hosts
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error

	// JoinEvent adds the caller to an event
	JoinEvent(ctx context.Context, input *JoinEventInput) (*EventOutput, error)

	// LeaveEvent removes the caller from an event
	LeaveEvent(ctx context.Context, input *LeaveEventInput) (*EventOutput, error)

	// CancelEvent cancels, or with Reverse reactivates, an event the caller hosts
	CancelEvent(ctx context.Context, input *CancelEventInput) (*EventOutput, error)

	// ListCreated returns the events the caller hosts
	ListCreated(ctx context.Context, input *ListCreatedInput) (*ListEventsOutput, error)

	// ListJoined returns the events the caller joined
	ListJoined(ctx context.Context, input *ListJoinedInput) (*ListEventsOutput, error)

	// SearchEvents returns upcoming events in a city, ranked by a query when given
	SearchEvents(ctx context.Context, input *SearchEventsInput) (*ListEventsOutput, error)

	// FilterEvents returns upcoming events matching every key/name pair
	FilterEvents(ctx context.Context, input *FilterEventsInput) (*ListEventsOutput, error)

	// RandomEvents returns a uniform sample of events
	RandomEvents(ctx context.Context, input *RandomEventsInput) (*ListEventsOutput, error)
}
