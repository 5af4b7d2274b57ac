package membership

import (
	"context"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/models"
	"go.uber.org/zap"
)

type service struct {
	client buddyup.Client
	logger *zap.Logger
}

// New creates a new membership service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		client: cfg.Client,
		logger: logger.Named("membership_service"),
	}, nil
}

func validate(input *ActionInput) error {
	if input == nil || input.Event == nil {
		return ErrNoEvent
	}
	if input.Token == "" || input.UserID == "" {
		return ErrNotSignedIn
	}
	return nil
}

// clone copies an event so the caller's copy stays untouched
func clone(e *models.Event) *models.Event {
	c := *e
	c.Participants = append([]string(nil), e.Participants...)
	return &c
}

func (s *service) fail(action string, input *ActionInput, err error) error {
	s.logger.Warn("membership action failed",
		zap.String("action", action),
		zap.String("event_id", input.Event.ID),
		zap.String("user_id", input.UserID),
		zap.Error(err))
	return err
}

// Join adds the user to the local copy once the backend accepts
func (s *service) Join(ctx context.Context, input *ActionInput) (*ActionOutput, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	out, err := s.client.JoinEvent(ctx, &buddyup.EventActionInput{
		Token:   input.Token,
		EventID: input.Event.ID,
	})
	if err != nil {
		return nil, s.fail("join", input, err)
	}

	e := clone(input.Event)
	if !e.HasParticipant(input.UserID) {
		e.Participants = append(e.Participants, input.UserID)
	}
	e.Attendance = len(e.Participants)

	return &ActionOutput{Event: e, Message: out.Message}, nil
}

// Leave removes the user from the local copy once the backend accepts
func (s *service) Leave(ctx context.Context, input *ActionInput) (*ActionOutput, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	out, err := s.client.LeaveEvent(ctx, &buddyup.EventActionInput{
		Token:   input.Token,
		EventID: input.Event.ID,
	})
	if err != nil {
		return nil, s.fail("leave", input, err)
	}

	e := clone(input.Event)
	kept := e.Participants[:0]
	for _, p := range e.Participants {
		if p != input.UserID {
			kept = append(kept, p)
		}
	}
	e.Participants = kept
	e.Attendance = len(e.Participants)

	return &ActionOutput{Event: e, Message: out.Message}, nil
}

// Cancel marks the local copy cancelled once the backend accepts
func (s *service) Cancel(ctx context.Context, input *ActionInput) (*ActionOutput, error) {
	return s.setCancelled(ctx, input, false)
}

// Reactivate clears the cancelled flag once the backend accepts
func (s *service) Reactivate(ctx context.Context, input *ActionInput) (*ActionOutput, error) {
	return s.setCancelled(ctx, input, true)
}

func (s *service) setCancelled(ctx context.Context, input *ActionInput, reverse bool) (*ActionOutput, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	out, err := s.client.CancelEvent(ctx, &buddyup.CancelEventInput{
		Token:   input.Token,
		EventID: input.Event.ID,
		Reverse: reverse,
	})
	if err != nil {
		action := "cancel"
		if reverse {
			action = "reactivate"
		}
		return nil, s.fail(action, input, err)
	}

	e := clone(input.Event)
	e.Cancelled = !reverse

	return &ActionOutput{Event: e, Message: out.Message}, nil
}
