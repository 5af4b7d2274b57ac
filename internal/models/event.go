package models

import (
	"time"
)

// EventStatus represents the derived availability of an event
type EventStatus string

const (
	// EventStatusActive indicates an event still has open spots
	EventStatusActive EventStatus = "active"

	// EventStatusFull indicates an event has reached its capacity
	EventStatusFull EventStatus = "full"

	// EventStatusExpired indicates an event has already ended
	EventStatusExpired EventStatus = "expire"
)

// IsExpired returns true if the event has ended
func (s EventStatus) IsExpired() bool {
	return s == EventStatusExpired
}

// Event represents a hostable, joinable social gathering
type Event struct {
	// ID is the unique identifier for the event
	ID string `json:"id"`

	// Title is the display name of the event
	Title string `json:"title"`

	// Description is the free-form description of the event
	Description string `json:"description"`

	// Category is the event category (Food, Sports, ...)
	Category string `json:"category"`

	// City is the city the event takes place in
	City string `json:"city"`

	// Location is the venue or address within the city
	Location string `json:"location"`

	// StartTime is when the event starts
	StartTime time.Time `json:"start_time"`

	// EndTime is when the event ends
	EndTime time.Time `json:"end_time"`

	// Capacity is the maximum number of participants
	Capacity int `json:"capacity"`

	// Attendance is the number of participants, kept equal to len(Participants)
	Attendance int `json:"attendance"`

	// Participants contains the user IDs of everyone who joined
	Participants []string `json:"participants"`

	// Creator is the user ID of the host
	Creator string `json:"creator"`

	// Status is derived from capacity and end time when the event is served
	Status EventStatus `json:"status,omitempty"`

	// Cancelled indicates the host cancelled the event
	Cancelled bool `json:"cancelled"`

	// CreatedAt is when the event was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the event was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// HasParticipant returns true if the user has joined the event
func (e *Event) HasParticipant(userID string) bool {
	if userID == "" {
		return false
	}
	for _, p := range e.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// SpotsLeft returns the remaining capacity, which may be negative for overbooked events
func (e *Event) SpotsLeft() int {
	return e.Capacity - len(e.Participants)
}

// DeriveStatus computes the status of the event at the given time
func (e *Event) DeriveStatus(now time.Time) EventStatus {
	if !now.Before(e.EndTime) {
		return EventStatusExpired
	}
	if len(e.Participants) >= e.Capacity {
		return EventStatusFull
	}
	return EventStatusActive
}

// ExpiredAt reports whether the event has ended, preferring the status it was served with
func (e *Event) ExpiredAt(now time.Time) bool {
	if e.Status != "" {
		return e.Status.IsExpired()
	}
	return e.DeriveStatus(now).IsExpired()
}

// Categories lists the event categories, which double as user interests
var Categories = []string{
	"Social",
	"Community",
	"Entertainment",
	"Sports",
	"Food",
	"Outdoor",
	"Gaming",
	"Carpool",
}
