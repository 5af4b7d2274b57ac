package event

// EventError is a custom error type for event-related errors
type EventError string

// Error implements the error interface
func (e EventError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEventNotFound      EventError = "event not found"
	ErrUnauthenticated    EventError = "Authentication credentials were not provided."
	ErrNoEditPermission   EventError = "No permission to edit this event."
	ErrNoDeletePermission EventError = "No permission to delete this event."
	ErrNoCancelPermission EventError = "No permission to cancel this event."
	ErrEventFull          EventError = "The event is already at full capacity."
	ErrAlreadyJoined      EventError = "You have already joined this event."
	ErrEventCancelled     EventError = "This event has been cancelled."
	ErrNotParticipant     EventError = "You are not a participant of this event."
	ErrBusy               EventError = "The event is busy, please try again."

	ErrMissingCity      EventError = "Missing 'city' parameter"
	ErrInvalidPage      EventError = "Invalid page parameter"
	ErrFilterMismatch   EventError = "The number of 'key' and 'name' parameters must match."
	ErrFilterEmpty      EventError = "At least one pair of (key, name) is required."
	ErrUnsupportedKey   EventError = "Unsupported key"
	ErrUnsupportedValue EventError = "Unsupported status value"

	ErrMissingTitle     EventError = "title: This field is required."
	ErrMissingCategory  EventError = "category: This field is required."
	ErrMissingLocation  EventError = "location: This field is required."
	ErrMissingStartTime EventError = "start_time: This field is required."
	ErrMissingEndTime   EventError = "end_time: This field is required."
	ErrInvalidTimeRange EventError = "end_time: must be after start_time."
	ErrInvalidCapacity  EventError = "capacity: must be at least 1."
	ErrCapacityTooLow   EventError = "capacity: cannot be less than current attendance."

	ErrNilConfig        EventError = "config cannot be nil"
	ErrNilEventRepo     EventError = "event repository cannot be nil"
	ErrNilClock         EventError = "clock cannot be nil"
	ErrNilUUIDGenerator EventError = "UUID generator cannot be nil"
	ErrNilSampler       EventError = "sampler cannot be nil"
)

// IsValidationError reports whether err describes bad input rather than state
func IsValidationError(err error) bool {
	e, ok := err.(EventError)
	if !ok {
		return false
	}
	switch e {
	case ErrMissingTitle, ErrMissingCategory, ErrMissingCity, ErrMissingLocation,
		ErrMissingStartTime, ErrMissingEndTime, ErrInvalidTimeRange, ErrInvalidCapacity,
		ErrCapacityTooLow:
		return true
	}
	return false
}
