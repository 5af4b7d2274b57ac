package membership

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/buddyup/internal/services/membership Service

import "context"

// Service performs membership actions and updates the local copy on success
type Service interface {
	Join(ctx context.Context, input *ActionInput) (*ActionOutput, error)
	Leave(ctx context.Context, input *ActionInput) (*ActionOutput, error)
	Cancel(ctx context.Context, input *ActionInput) (*ActionOutput, error)
	Reactivate(ctx context.Context, input *ActionInput) (*ActionOutput, error)
}
