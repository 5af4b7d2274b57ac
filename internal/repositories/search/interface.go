package search

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/buddyup/internal/repositories/search Repository

import (
	"context"
)

// Repository stashes search states too long to travel inside a component ID
type Repository interface {
	// SaveSearch stores a search state under a short ID
	SaveSearch(ctx context.Context, input *SaveSearchInput) error

	// GetSearch retrieves a stashed search state
	GetSearch(ctx context.Context, input *GetSearchInput) (*GetSearchOutput, error)
}
