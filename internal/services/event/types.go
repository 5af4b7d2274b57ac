package event

import (
	"time"

	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/common/uuid"
	"github.com/KirkDiggler/buddyup/internal/models"
	eventRepo "github.com/KirkDiggler/buddyup/internal/repositories/event"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is the number of events in one page of search or filter results
	DefaultPageSize = 20

	// DefaultRandomCount is the size of the random feed
	DefaultRandomCount = 20
)

// Sampler picks distinct indexes out of a population
type Sampler interface {
	Sample(total, n int) []int
}

// Config holds the configuration for the event service
type Config struct {
	EventRepo     eventRepo.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Sampler       Sampler
	Logger        *zap.Logger

	// PageSize defaults to DefaultPageSize
	PageSize int

	// RandomCount defaults to DefaultRandomCount
	RandomCount int
}

// EventFields carries the writable fields of an event; nil means not provided
type EventFields struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	City        *string    `json:"city"`
	Location    *string    `json:"location"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Capacity    *int       `json:"capacity"`
}

// CreateEventInput contains parameters for hosting an event
type CreateEventInput struct {
	CallerID string
	Fields   EventFields
}

// EventOutput contains a single event with its status derived
type EventOutput struct {
	Event *models.Event
}

// GetEventInput contains parameters for reading an event
type GetEventInput struct {
	EventID string
}

// UpdateEventInput contains parameters for editing an event
type UpdateEventInput struct {
	CallerID string
	EventID  string
	Fields   EventFields

	// Partial allows omitted fields; a full update requires every required field
	Partial bool
}

// DeleteEventInput contains parameters for deleting an event
type DeleteEventInput struct {
	CallerID string
	EventID  string
}

// JoinEventInput contains parameters for joining an event
type JoinEventInput struct {
	CallerID string
	EventID  string
}

// LeaveEventInput contains parameters for leaving an event
type LeaveEventInput struct {
	CallerID string
	EventID  string
}

// CancelEventInput contains parameters for cancelling an event
type CancelEventInput struct {
	CallerID string
	EventID  string

	// Reverse reactivates a cancelled event
	Reverse bool
}

// ListCreatedInput contains parameters for listing hosted events
type ListCreatedInput struct {
	CallerID string
}

// ListJoinedInput contains parameters for listing joined events
type ListJoinedInput struct {
	CallerID string
}

// SearchEventsInput contains parameters for a city search
type SearchEventsInput struct {
	City  string
	Query string

	// Page is zero-based; nil returns every match
	Page *int
}

// FilterEventsInput contains parameters for a key/name filter
type FilterEventsInput struct {
	Keys  []string
	Names []string

	// Page is zero-based; nil returns every match
	Page *int
}

type RandomEventsInput struct {
}

// ListEventsOutput contains a list of events with derived statuses
type ListEventsOutput struct {
	Events []*models.Event
}
