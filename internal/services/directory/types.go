package directory

import (
	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/models"
	"go.uber.org/zap"
)

// DefaultPageSize matches the backend page size
const DefaultPageSize = 20

// Tab selects a "my events" view
type Tab string

const (
	TabAttending Tab = "attending"
	TabHosting   Tab = "hosting"
	TabCancelled Tab = "cancelled"
	TabPast      Tab = "past"
)

// Tabs lists the views in display order
var Tabs = []Tab{TabAttending, TabHosting, TabCancelled, TabPast}

// Label returns the display name of a tab
func (t Tab) Label() string {
	switch t {
	case TabAttending:
		return "Attending"
	case TabHosting:
		return "Hosting"
	case TabCancelled:
		return "Cancelled"
	case TabPast:
		return "Past"
	}
	return string(t)
}

// Config holds the configuration for the directory service
type Config struct {
	Client buddyup.Client
	Clock  clock.Clock
	Logger *zap.Logger

	// PageSize defaults to DefaultPageSize
	PageSize int
}

// HomeInput contains parameters for the home feed
type HomeInput struct {
	City string
}

// SearchInput contains parameters for a search
type SearchInput struct {
	City     string
	Category string
	Query    string
	Page     int
}

// MyEventsInput contains parameters for a "my events" tab
type MyEventsInput struct {
	Token string
	Tab   Tab
}

// ListOutput contains one page of events
type ListOutput struct {
	Events []*models.Event

	// NextPage is set when another page may follow
	NextPage *int
}
