package event

import (
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
)

// SaveEventInput contains parameters for saving an event
type SaveEventInput struct {
	Event *models.Event
}

// GetEventInput contains parameters for retrieving an event
type GetEventInput struct {
	EventID string
}

// GetEventsInput contains parameters for retrieving several events
type GetEventsInput struct {
	EventIDs []string
}

// DeleteEventInput contains parameters for deleting an event
type DeleteEventInput struct {
	EventID string
}

// ListEventsInput contains parameters for listing events by start time
type ListEventsInput struct {
	// City restricts the listing to one city, matched case-insensitively (optional)
	City string

	// StartsAfter excludes events starting before this time (optional)
	StartsAfter time.Time
}

// ListEventsOutput contains a list of events
type ListEventsOutput struct {
	Events []*models.Event
}

type ListEventIDsInput struct {
}

type ListEventIDsOutput struct {
	EventIDs []string
}

// ListEventsByCreatorInput contains parameters for listing hosted events
type ListEventsByCreatorInput struct {
	CreatorID string
}

// ListEventsByParticipantInput contains parameters for listing joined events
type ListEventsByParticipantInput struct {
	UserID string
}

// AddParticipantInput contains parameters for joining an event
type AddParticipantInput struct {
	EventID string
	UserID  string

	// UpdatedAt is stamped on the event when the join succeeds
	UpdatedAt time.Time
}

// RemoveParticipantInput contains parameters for leaving an event
type RemoveParticipantInput struct {
	EventID string
	UserID  string

	// UpdatedAt is stamped on the event when the leave succeeds
	UpdatedAt time.Time
}

// UpdateEventInput contains parameters for changing a stored event
type UpdateEventInput struct {
	EventID string

	// Mutate edits the current event in place. An error aborts the update
	// and is returned unchanged.
	Mutate func(e *models.Event) error
}
