package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"go.uber.org/zap"
)

var ErrUnknownAction = errors.New("unknown notice action")

type texts struct {
	title   string
	success []string
	failure []string
}

var catalog = map[Action]texts{
	ActionLogin: {
		title:   "Signed in",
		success: []string{"Welcome back!", "You're signed in.", "Good to see you again!"},
		failure: []string{"Sign in failed."},
	},
	ActionLogout: {
		title:   "Signed out",
		success: []string{"You've been signed out.", "See you next time!"},
		failure: []string{"Sign out failed."},
	},
	ActionJoin: {
		title:   "Joined",
		success: []string{"Successfully joined the event.", "You're in! See you there.", "Spot saved. Have fun!"},
		failure: []string{"Could not join the event."},
	},
	ActionLeave: {
		title:   "Left",
		success: []string{"Successfully left the event.", "You've given up your spot."},
		failure: []string{"Could not leave the event."},
	},
	ActionCancel: {
		title:   "Cancelled",
		success: []string{"Event cancelled.", "Your event has been called off."},
		failure: []string{"Could not cancel the event."},
	},
	ActionReactivate: {
		title:   "Reactivated",
		success: []string{"Event reactivated.", "Your event is back on!"},
		failure: []string{"Could not reactivate the event."},
	},
	ActionUpdateProfile: {
		title:   "Profile",
		success: []string{"Profile updated successfully!"},
		failure: []string{"Error updating profile."},
	},
	ActionInterests: {
		title:   "Interests",
		success: []string{"Update user interests successfully"},
		failure: []string{"Error updating interests"},
	},
	ActionUploadImage: {
		title:   "Profile image",
		success: []string{"Profile image uploaded successfully!"},
		failure: []string{"Error uploading image."},
	},
	ActionLoadEvents: {
		title:   "Events",
		success: []string{"Events loaded."},
		failure: []string{"Could not load events."},
	},
}

// service implements the Service interface
type service struct {
	mu       sync.Mutex
	rand     *rand.Rand
	autoHide time.Duration
	logger   *zap.Logger
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	autoHide := cfg.AutoHide
	if autoHide <= 0 {
		autoHide = DefaultAutoHide
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		rand:     rand.New(rand.NewSource(seed)),
		autoHide: autoHide,
		logger:   logger.Named("messaging_service"),
	}, nil
}

// GetNotice returns a success notice, or an error notice when input.Err is set
func (s *service) GetNotice(ctx context.Context, input *GetNoticeInput) (*GetNoticeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	t, ok := catalog[input.Action]
	if !ok {
		return nil, ErrUnknownAction
	}

	notice := &Notice{
		Severity: SeveritySuccess,
		Title:    t.title,
		AutoHide: s.autoHide,
		open:     true,
	}

	if input.Err != nil {
		notice.Severity = SeverityError
		notice.Title = "Something went wrong"
		notice.Message = s.pick(t.failure)
		var apiErr *buddyup.APIError
		if errors.As(input.Err, &apiErr) && apiErr.Message != "" {
			notice.Message = fmt.Sprintf("%s %s", notice.Message, apiErr.Message)
		}
		s.logger.Debug("error notice",
			zap.String("action", string(input.Action)),
			zap.Error(input.Err))
	} else {
		notice.Message = s.pick(t.success)
	}

	if input.Subject != "" {
		notice.Title = fmt.Sprintf("%s: %s", notice.Title, input.Subject)
	}

	return &GetNoticeOutput{Notice: notice}, nil
}

// Info returns an informational notice with the given text
func Info(title, message string) *Notice {
	return &Notice{
		Severity: SeverityInfo,
		Title:    title,
		Message:  message,
		AutoHide: DefaultAutoHide,
		open:     true,
	}
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
