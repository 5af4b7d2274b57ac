package event

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/common/uuid"
	"github.com/KirkDiggler/buddyup/internal/models"
	eventRepo "github.com/KirkDiggler/buddyup/internal/repositories/event"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	eventRepo     eventRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	sampler       Sampler
	logger        *zap.Logger
	pageSize      int
	randomCount   int
}

// New creates a new event service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Sampler == nil {
		return nil, ErrNilSampler
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	randomCount := cfg.RandomCount
	if randomCount <= 0 {
		randomCount = DefaultRandomCount
	}

	return &service{
		eventRepo:     cfg.EventRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		sampler:       cfg.Sampler,
		logger:        logger.Named("event_service"),
		pageSize:      pageSize,
		randomCount:   randomCount,
	}, nil
}

// ParsePage reads an optional zero-based page parameter
func ParsePage(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return nil, ErrInvalidPage
	}

	return &page, nil
}

// CreateEvent hosts a new event for the caller
func (s *service) CreateEvent(ctx context.Context, input *CreateEventInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return nil, ErrUnauthenticated
	}

	now := s.clock.Now()
	e := &models.Event{
		ID:           s.uuidGenerator.NewUUID(),
		Participants: []string{},
		Creator:      input.CallerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := applyFields(e, &input.Fields, false); err != nil {
		return nil, err
	}

	if err := validateEvent(e); err != nil {
		return nil, err
	}

	if err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: e}); err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		zap.String("event_id", e.ID),
		zap.String("creator", e.Creator),
		zap.String("city", e.City))

	return &EventOutput{Event: s.withStatus(e, now)}, nil
}

// GetEvent returns a single event
func (s *service) GetEvent(ctx context.Context, input *GetEventInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	e, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	return &EventOutput{Event: s.withStatus(e, s.clock.Now())}, nil
}

// UpdateEvent replaces or patches an event the caller hosts. Permission and
// validation run against the stored event inside the repository transaction.
func (s *service) UpdateEvent(ctx context.Context, input *UpdateEventInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return nil, ErrUnauthenticated
	}

	if input.EventID == "" {
		return nil, ErrEventNotFound
	}

	now := s.clock.Now()
	e, err := s.eventRepo.UpdateEvent(ctx, &eventRepo.UpdateEventInput{
		EventID: input.EventID,
		Mutate: func(e *models.Event) error {
			if e.Creator != input.CallerID {
				return ErrNoEditPermission
			}
			if err := applyFields(e, &input.Fields, input.Partial); err != nil {
				return err
			}
			if err := validateEvent(e); err != nil {
				return err
			}
			e.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &EventOutput{Event: s.withStatus(e, now)}, nil
}

// DeleteEvent removes an event the caller hosts
func (s *service) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return ErrUnauthenticated
	}

	e, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return err
	}

	if e.Creator != input.CallerID {
		return ErrNoDeletePermission
	}

	err = s.eventRepo.DeleteEvent(ctx, &eventRepo.DeleteEventInput{EventID: e.ID})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	s.logger.Info("event deleted", zap.String("event_id", e.ID))

	return nil
}

// JoinEvent adds the caller to an event
func (s *service) JoinEvent(ctx context.Context, input *JoinEventInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return nil, ErrUnauthenticated
	}

	if input.EventID == "" {
		return nil, ErrEventNotFound
	}

	now := s.clock.Now()
	e, err := s.eventRepo.AddParticipant(ctx, &eventRepo.AddParticipantInput{
		EventID:   input.EventID,
		UserID:    input.CallerID,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &EventOutput{Event: s.withStatus(e, now)}, nil
}

// LeaveEvent removes the caller from an event
func (s *service) LeaveEvent(ctx context.Context, input *LeaveEventInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return nil, ErrUnauthenticated
	}

	if input.EventID == "" {
		return nil, ErrEventNotFound
	}

	now := s.clock.Now()
	e, err := s.eventRepo.RemoveParticipant(ctx, &eventRepo.RemoveParticipantInput{
		EventID:   input.EventID,
		UserID:    input.CallerID,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &EventOutput{Event: s.withStatus(e, now)}, nil
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, eventRepo.ErrEventNotFound):
		return ErrEventNotFound
	case errors.Is(err, eventRepo.ErrEventFull):
		return ErrEventFull
	case errors.Is(err, eventRepo.ErrAlreadyParticipant):
		return ErrAlreadyJoined
	case errors.Is(err, eventRepo.ErrEventCancelled):
		return ErrEventCancelled
	case errors.Is(err, eventRepo.ErrNotParticipant):
		return ErrNotParticipant
	case errors.Is(err, eventRepo.ErrConflict):
		return ErrBusy
	}
	return err
}

// CancelEvent sets or clears the cancelled flag of an event the caller hosts
func (s *service) CancelEvent(ctx context.Context, input *CancelEventInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return nil, ErrUnauthenticated
	}

	if input.EventID == "" {
		return nil, ErrEventNotFound
	}

	now := s.clock.Now()
	e, err := s.eventRepo.UpdateEvent(ctx, &eventRepo.UpdateEventInput{
		EventID: input.EventID,
		Mutate: func(e *models.Event) error {
			if e.Creator != input.CallerID {
				return ErrNoCancelPermission
			}
			e.Cancelled = !input.Reverse
			e.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("event cancellation changed",
		zap.String("event_id", e.ID),
		zap.Bool("cancelled", e.Cancelled))

	return &EventOutput{Event: s.withStatus(e, now)}, nil
}

// ListCreated returns the events the caller hosts, ordered by start time
func (s *service) ListCreated(ctx context.Context, input *ListCreatedInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return nil, ErrUnauthenticated
	}

	out, err := s.eventRepo.ListEventsByCreator(ctx, &eventRepo.ListEventsByCreatorInput{
		CreatorID: input.CallerID,
	})
	if err != nil {
		return nil, err
	}

	return s.byStartTime(out.Events), nil
}

// ListJoined returns the events the caller joined, ordered by start time
func (s *service) ListJoined(ctx context.Context, input *ListJoinedInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CallerID == "" {
		return nil, ErrUnauthenticated
	}

	out, err := s.eventRepo.ListEventsByParticipant(ctx, &eventRepo.ListEventsByParticipantInput{
		UserID: input.CallerID,
	})
	if err != nil {
		return nil, err
	}

	return s.byStartTime(out.Events), nil
}

// SearchEvents returns upcoming events in a city
func (s *service) SearchEvents(ctx context.Context, input *SearchEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		return nil, ErrMissingCity
	}

	if input.Page != nil && *input.Page < 0 {
		return nil, ErrInvalidPage
	}

	now := s.clock.Now()
	out, err := s.eventRepo.ListEvents(ctx, &eventRepo.ListEventsInput{
		City:        city,
		StartsAfter: now,
	})
	if err != nil {
		return nil, err
	}

	events := out.Events
	if query := strings.TrimSpace(input.Query); query != "" {
		events = rankByQuery(events, query)
	}

	events = s.page(events, input.Page)

	s.logger.Debug("search events",
		zap.String("city", city),
		zap.String("query", input.Query),
		zap.Int("results", len(events)))

	return s.withStatuses(events, now), nil
}

// filterPredicate matches one key/name pair against an event
type filterPredicate func(e *models.Event) bool

// FilterEvents returns upcoming events matching every key/name pair
func (s *service) FilterEvents(ctx context.Context, input *FilterEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Keys) != len(input.Names) {
		return nil, ErrFilterMismatch
	}

	if len(input.Keys) == 0 {
		return nil, ErrFilterEmpty
	}

	if input.Page != nil && *input.Page < 0 {
		return nil, ErrInvalidPage
	}

	// The first city pair narrows the scan to that city's index
	var indexCity string
	predicates := make([]filterPredicate, 0, len(input.Keys))
	for i, key := range input.Keys {
		name := input.Names[i]
		switch strings.ToLower(key) {
		case "city":
			if indexCity == "" {
				indexCity = name
			}
			predicates = append(predicates, func(e *models.Event) bool {
				return strings.EqualFold(e.City, name)
			})
		case "category":
			predicates = append(predicates, func(e *models.Event) bool {
				return strings.EqualFold(e.Category, name)
			})
		case "status":
			switch strings.ToLower(name) {
			case string(models.EventStatusActive):
				predicates = append(predicates, func(e *models.Event) bool {
					return len(e.Participants) < e.Capacity
				})
			case string(models.EventStatusFull):
				predicates = append(predicates, func(e *models.Event) bool {
					return len(e.Participants) >= e.Capacity
				})
			default:
				return nil, fmt.Errorf("%w: %s. Allowed: active, full.", ErrUnsupportedValue, name)
			}
		default:
			return nil, fmt.Errorf("%w: %s. Allowed keys: city, category, status.", ErrUnsupportedKey, key)
		}
	}

	now := s.clock.Now()
	out, err := s.eventRepo.ListEvents(ctx, &eventRepo.ListEventsInput{
		City:        indexCity,
		StartsAfter: now,
	})
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Event, 0, len(out.Events))
	for _, e := range out.Events {
		ok := true
		for _, p := range predicates {
			if !p(e) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, e)
		}
	}

	return s.withStatuses(s.page(matched, input.Page), now), nil
}

// RandomEvents returns up to the configured number of events, sampled uniformly
func (s *service) RandomEvents(ctx context.Context, input *RandomEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := s.eventRepo.ListEventIDs(ctx, &eventRepo.ListEventIDsInput{})
	if err != nil {
		return nil, err
	}

	picked := ids.EventIDs
	if len(picked) > s.randomCount {
		indexes := s.sampler.Sample(len(ids.EventIDs), s.randomCount)
		picked = make([]string, len(indexes))
		for i, idx := range indexes {
			picked[i] = ids.EventIDs[idx]
		}
	}

	out, err := s.eventRepo.GetEvents(ctx, &eventRepo.GetEventsInput{EventIDs: picked})
	if err != nil {
		return nil, err
	}

	return s.withStatuses(out.Events, s.clock.Now()), nil
}

func (s *service) getEvent(ctx context.Context, eventID string) (*models.Event, error) {
	if eventID == "" {
		return nil, ErrEventNotFound
	}

	e, err := s.eventRepo.GetEvent(ctx, &eventRepo.GetEventInput{EventID: eventID})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return e, nil
}

// page slices a zero-based page out of events; nil returns everything
func (s *service) page(events []*models.Event, page *int) []*models.Event {
	if page == nil {
		return events
	}

	start := *page * s.pageSize
	if start >= len(events) {
		return []*models.Event{}
	}

	end := start + s.pageSize
	if end > len(events) {
		end = len(events)
	}

	return events[start:end]
}

func (s *service) byStartTime(events []*models.Event) *ListEventsOutput {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return s.withStatuses(events, s.clock.Now())
}

func (s *service) withStatus(e *models.Event, now time.Time) *models.Event {
	e.Attendance = len(e.Participants)
	e.Status = e.DeriveStatus(now)
	return e
}

func (s *service) withStatuses(events []*models.Event, now time.Time) *ListEventsOutput {
	for _, e := range events {
		s.withStatus(e, now)
	}
	return &ListEventsOutput{Events: events}
}

// applyFields copies provided fields onto an event. A full update requires
// every required field.
func applyFields(e *models.Event, f *EventFields, partial bool) error {
	if !partial {
		switch {
		case f.Title == nil:
			return ErrMissingTitle
		case f.Category == nil:
			return ErrMissingCategory
		case f.City == nil:
			return ErrMissingCity
		case f.Location == nil:
			return ErrMissingLocation
		case f.StartTime == nil:
			return ErrMissingStartTime
		case f.EndTime == nil:
			return ErrMissingEndTime
		case f.Capacity == nil:
			return ErrInvalidCapacity
		}
	}

	if f.Title != nil {
		e.Title = strings.TrimSpace(*f.Title)
	}
	if f.Description != nil {
		e.Description = *f.Description
	}
	if f.Category != nil {
		e.Category = strings.TrimSpace(*f.Category)
	}
	if f.City != nil {
		e.City = strings.TrimSpace(*f.City)
	}
	if f.Location != nil {
		e.Location = strings.TrimSpace(*f.Location)
	}
	if f.StartTime != nil {
		e.StartTime = f.StartTime.UTC()
	}
	if f.EndTime != nil {
		e.EndTime = f.EndTime.UTC()
	}
	if f.Capacity != nil {
		e.Capacity = *f.Capacity
	}

	return nil
}

func validateEvent(e *models.Event) error {
	switch {
	case e.Title == "":
		return ErrMissingTitle
	case e.Category == "":
		return ErrMissingCategory
	case e.City == "":
		return ErrMissingCity
	case e.Location == "":
		return ErrMissingLocation
	case e.StartTime.IsZero():
		return ErrMissingStartTime
	case e.EndTime.IsZero():
		return ErrMissingEndTime
	case !e.EndTime.After(e.StartTime):
		return ErrInvalidTimeRange
	case e.Capacity < 1:
		return ErrInvalidCapacity
	case e.Capacity < len(e.Participants):
		return ErrCapacityTooLow
	}
	return nil
}
