package search

import (
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
)

// SaveSearchInput contains parameters for stashing a search state
type SaveSearchInput struct {
	ID    string
	State *models.SearchState

	// TTL expires the state after the given duration, zero keeps it forever
	TTL time.Duration
}

// GetSearchInput contains parameters for retrieving a search state
type GetSearchInput struct {
	ID string
}

// GetSearchOutput contains the result of retrieving a search state
type GetSearchOutput struct {
	// State is the stashed search, or nil if it expired
	State *models.SearchState
}
