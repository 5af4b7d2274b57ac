package membership

import (
	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/models"
	"go.uber.org/zap"
)

// Config holds the configuration for the membership service
type Config struct {
	Client buddyup.Client
	Logger *zap.Logger
}

// ActionInput identifies the event a signed-in user acts on
type ActionInput struct {
	Token  string
	UserID string

	// Event is the caller's copy; it is never modified
	Event *models.Event
}

// ActionOutput holds the locally updated copy of the event
type ActionOutput struct {
	Event   *models.Event
	Message string
}
