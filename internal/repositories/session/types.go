package session

import (
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
)

// SaveSessionInput contains parameters for saving a session
type SaveSessionInput struct {
	Session *models.Session

	// TTL expires the session after the given duration, zero keeps it forever
	TTL time.Duration
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	// OwnerID is the front-end user the session belongs to
	OwnerID string
}

// GetSessionOutput contains the result of retrieving a session
type GetSessionOutput struct {
	// Session is the stored session, or nil if none exists
	Session *models.Session
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	OwnerID string
}
