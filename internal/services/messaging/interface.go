package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/buddyup/internal/services/messaging Service

import "context"

// Service builds the notices shown after user actions
type Service interface {
	// GetNotice returns a success or error notice for an action
	GetNotice(ctx context.Context, input *GetNoticeInput) (*GetNoticeOutput, error)
}
