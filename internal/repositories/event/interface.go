package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/buddyup/internal/repositories/event Repository

import (
	"context"

	"github.com/KirkDiggler/buddyup/internal/models"
)

// Repository defines the interface for event data persistence
type Repository interface {
	// SaveEvent persists an event and maintains its indexes
	SaveEvent(ctx context.Context, input *SaveEventInput) error

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error)

	// GetEvents retrieves several events by ID, skipping missing ones
	GetEvents(ctx context.Context, input *GetEventsInput) (*ListEventsOutput, error)

	// DeleteEvent removes an event and its index entries
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error

	// ListEvents retrieves events ordered by start time, optionally scoped to a city
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// ListEventIDs retrieves the IDs of every stored event
	ListEventIDs(ctx context.Context, input *ListEventIDsInput) (*ListEventIDsOutput, error)

	// ListEventsByCreator retrieves the events a user hosts
	ListEventsByCreator(ctx context.Context, input *ListEventsByCreatorInput) (*ListEventsOutput, error)

	// ListEventsByParticipant retrieves the events a user joined
	ListEventsByParticipant(ctx context.Context, input *ListEventsByParticipantInput) (*ListEventsOutput, error)

	// AddParticipant atomically adds a user to an event, enforcing capacity
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*models.Event, error)

	// RemoveParticipant atomically removes a user from an event
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*models.Event, error)

	// UpdateEvent atomically applies a change to the stored event
	UpdateEvent(ctx context.Context, input *UpdateEventInput) (*models.Event, error)
}
