package directory

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/buddyup/internal/services/directory Service

import "context"

// Service lists events for the front end
type Service interface {
	// Home returns the first page of upcoming events in a city
	Home(ctx context.Context, input *HomeInput) (*ListOutput, error)

	// Search returns a page of events by query, or by city and category
	Search(ctx context.Context, input *SearchInput) (*ListOutput, error)

	// MyEvents returns one tab of the caller's events
	MyEvents(ctx context.Context, input *MyEventsInput) (*ListOutput, error)
}
