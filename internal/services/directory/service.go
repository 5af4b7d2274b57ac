package directory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/models"
	"go.uber.org/zap"
)

var (
	ErrMissingCity = errors.New("a city is required")
	ErrUnknownTab  = errors.New("unknown tab")
	ErrNotSignedIn = errors.New("sign in to see your events")
	ErrInvalidPage = errors.New("page must not be negative")

	errNilConfig = errors.New("config cannot be nil")
	errNilClient = errors.New("api client cannot be nil")
	errNilClock  = errors.New("clock cannot be nil")
)

type service struct {
	client   buddyup.Client
	clock    clock.Clock
	pageSize int
	logger   *zap.Logger
}

// New creates a new directory service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	if cfg.Client == nil {
		return nil, errNilClient
	}

	if cfg.Clock == nil {
		return nil, errNilClock
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		client:   cfg.Client,
		clock:    cfg.Clock,
		pageSize: pageSize,
		logger:   logger.Named("directory_service"),
	}, nil
}

// Home returns page zero of the city search
func (s *service) Home(ctx context.Context, input *HomeInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.Search(ctx, &SearchInput{City: input.City})
}

// Search uses the search endpoint for a query, otherwise the city/category filter
func (s *service) Search(ctx context.Context, input *SearchInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		return nil, ErrMissingCity
	}

	if input.Page < 0 {
		return nil, ErrInvalidPage
	}

	page := input.Page

	var (
		out *buddyup.ListEventsOutput
		err error
	)
	if query := strings.TrimSpace(input.Query); query != "" {
		out, err = s.client.SearchEvents(ctx, &buddyup.SearchEventsInput{
			City:  city,
			Query: query,
			Page:  &page,
		})
	} else {
		filters := []buddyup.Filter{{Key: "city", Name: city}}
		if category := strings.TrimSpace(input.Category); category != "" {
			filters = append(filters, buddyup.Filter{Key: "category", Name: category})
		}
		out, err = s.client.FilterEvents(ctx, &buddyup.FilterEventsInput{
			Filters: filters,
			Page:    &page,
		})
	}
	if err != nil {
		s.logger.Error("error loading events",
			zap.String("city", city),
			zap.Int("page", page),
			zap.Error(err))
		return nil, err
	}

	output := &ListOutput{Events: out.Events}
	if len(out.Events) >= s.pageSize {
		next := page + 1
		output.NextPage = &next
	}

	return output, nil
}

// MyEvents splits the caller's events into attending, hosting, cancelled and past
func (s *service) MyEvents(ctx context.Context, input *MyEventsInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Token == "" {
		return nil, ErrNotSignedIn
	}

	var (
		events  []*models.Event
		err     error
		now     = s.clock.Now()
		listing = &buddyup.ListMyEventsInput{Token: input.Token}
	)

	switch input.Tab {
	case TabAttending:
		var joined *buddyup.ListEventsOutput
		if joined, err = s.client.ListJoined(ctx, listing); err != nil {
			return nil, err
		}
		events = keep(joined.Events, func(e *models.Event) bool {
			return !e.ExpiredAt(now) && !e.Cancelled
		})

	case TabHosting:
		var created *buddyup.ListEventsOutput
		if created, err = s.client.ListCreated(ctx, listing); err != nil {
			return nil, err
		}
		events = keep(created.Events, func(e *models.Event) bool {
			return !e.ExpiredAt(now) && !e.Cancelled
		})

	case TabCancelled:
		if events, err = s.both(ctx, listing); err != nil {
			return nil, err
		}
		events = keep(events, func(e *models.Event) bool {
			return !e.ExpiredAt(now) && e.Cancelled
		})

	case TabPast:
		if events, err = s.both(ctx, listing); err != nil {
			return nil, err
		}
		events = keep(events, func(e *models.Event) bool {
			return e.ExpiredAt(now)
		})

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTab, input.Tab)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})

	return &ListOutput{Events: events}, nil
}

// both returns joined and created events without duplicates
func (s *service) both(ctx context.Context, listing *buddyup.ListMyEventsInput) ([]*models.Event, error) {
	joined, err := s.client.ListJoined(ctx, listing)
	if err != nil {
		return nil, err
	}
	created, err := s.client.ListCreated(ctx, listing)
	if err != nil {
		return nil, err
	}
	return dedupe(append(joined.Events, created.Events...)), nil
}

func keep(events []*models.Event, match func(*models.Event) bool) []*models.Event {
	out := make([]*models.Event, 0, len(events))
	for _, e := range events {
		if e != nil && match(e) {
			out = append(out, e)
		}
	}
	return out
}

func dedupe(events []*models.Event) []*models.Event {
	seen := make(map[string]struct{}, len(events))
	out := make([]*models.Event, 0, len(events))
	for _, e := range events {
		if e == nil {
			continue
		}
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}
