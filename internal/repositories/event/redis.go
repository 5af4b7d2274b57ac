package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	eventKeyPrefix       = "event:"
	cityIndexPrefix      = "city:events:"    // Sorted set of event IDs by start time per city
	creatorIndexPrefix   = "creator:events:" // Set of event IDs hosted by a user
	participantIdxPrefix = "joined:events:"  // Set of event IDs a user joined
	startIndexKey        = "events:by_start" // Sorted set of every event ID by start time

	// maxTxRetries bounds optimistic retries when a watched event changes mid-update
	maxTxRetries = 5
)

var (
	// ErrEventNotFound is returned when an event is not found
	ErrEventNotFound = errors.New("event not found")

	// ErrEventFull is returned when joining an event that is at capacity
	ErrEventFull = errors.New("event is full")

	// ErrAlreadyParticipant is returned when a user joins an event twice
	ErrAlreadyParticipant = errors.New("user already joined event")

	// ErrNotParticipant is returned when a user leaves an event they never joined
	ErrNotParticipant = errors.New("user is not a participant")

	// ErrEventCancelled is returned when joining a cancelled event
	ErrEventCancelled = errors.New("event is cancelled")

	// ErrConflict is returned when an event kept changing during an atomic update
	ErrConflict = errors.New("event changed concurrently")
)

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func eventKey(id string) string {
	return eventKeyPrefix + id
}

func cityKey(city string) string {
	return cityIndexPrefix + strings.ToLower(strings.TrimSpace(city))
}

// SaveEvent persists an event to Redis
func (r *redisRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	if input.Event.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	// A city change has to drop the event from the old city index
	existing, err := r.GetEvent(ctx, &GetEventInput{EventID: input.Event.ID})
	if err != nil && !errors.Is(err, ErrEventNotFound) {
		return err
	}

	eventJSON, err := json.Marshal(input.Event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := r.client.TxPipeline()

	if existing != nil && cityKey(existing.City) != cityKey(input.Event.City) {
		pipe.ZRem(ctx, cityKey(existing.City), input.Event.ID)
	}

	pipe.Set(ctx, eventKey(input.Event.ID), eventJSON, 0)
	writeIndexes(ctx, pipe, input.Event)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

// writeIndexes queues the index updates for an event
func writeIndexes(ctx context.Context, pipe redis.Pipeliner, e *models.Event) {
	score := float64(e.StartTime.UnixMilli())
	pipe.ZAdd(ctx, startIndexKey, redis.Z{Score: score, Member: e.ID})
	pipe.ZAdd(ctx, cityKey(e.City), redis.Z{Score: score, Member: e.ID})

	if e.Creator != "" {
		pipe.SAdd(ctx, creatorIndexPrefix+e.Creator, e.ID)
	}

	for _, userID := range e.Participants {
		pipe.SAdd(ctx, participantIdxPrefix+userID, e.ID)
	}
}

// GetEvent retrieves an event by ID from Redis
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	eventJSON, err := r.client.Get(ctx, eventKey(input.EventID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return decodeEvent(eventJSON)
}

func decodeEvent(raw string) (*models.Event, error) {
	var e models.Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if e.Participants == nil {
		e.Participants = []string{}
	}
	return &e, nil
}

// GetEvents retrieves several events by ID, preserving order and skipping missing ones
func (r *redisRepository) GetEvents(ctx context.Context, input *GetEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.EventIDs) == 0 {
		return &ListEventsOutput{Events: []*models.Event{}}, nil
	}

	keys := make([]string, len(input.EventIDs))
	for i, id := range input.EventIDs {
		keys[i] = eventKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events := make([]*models.Event, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Missing key, the index is stale
			continue
		}
		e, err := decodeEvent(raw)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return &ListEventsOutput{Events: events}, nil
}

// DeleteEvent removes an event from Redis
func (r *redisRepository) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	// Get the event first so its index entries can be removed
	e, err := r.GetEvent(ctx, &GetEventInput{EventID: input.EventID})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, eventKey(e.ID))
	pipe.ZRem(ctx, startIndexKey, e.ID)
	pipe.ZRem(ctx, cityKey(e.City), e.ID)
	if e.Creator != "" {
		pipe.SRem(ctx, creatorIndexPrefix+e.Creator, e.ID)
	}
	for _, userID := range e.Participants {
		pipe.SRem(ctx, participantIdxPrefix+userID, e.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// ListEvents retrieves events ordered by start time
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := startIndexKey
	if strings.TrimSpace(input.City) != "" {
		key = cityKey(input.City)
	}

	minScore := "-inf"
	if !input.StartsAfter.IsZero() {
		minScore = strconv.FormatInt(input.StartsAfter.UnixMilli(), 10)
	}

	ids, err := r.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min: minScore,
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return r.GetEvents(ctx, &GetEventsInput{EventIDs: ids})
}

// ListEventIDs retrieves every stored event ID
func (r *redisRepository) ListEventIDs(ctx context.Context, input *ListEventIDsInput) (*ListEventIDsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.ZRange(ctx, startIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list event IDs: %w", err)
	}

	return &ListEventIDsOutput{EventIDs: ids}, nil
}

// ListEventsByCreator retrieves the events a user hosts
func (r *redisRepository) ListEventsByCreator(ctx context.Context, input *ListEventsByCreatorInput) (*ListEventsOutput, error) {
	if input == nil || input.CreatorID == "" {
		return nil, errors.New("input and creator ID cannot be empty")
	}

	return r.listFromSet(ctx, creatorIndexPrefix+input.CreatorID)
}

// ListEventsByParticipant retrieves the events a user joined
func (r *redisRepository) ListEventsByParticipant(ctx context.Context, input *ListEventsByParticipantInput) (*ListEventsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	return r.listFromSet(ctx, participantIdxPrefix+input.UserID)
}

func (r *redisRepository) listFromSet(ctx context.Context, key string) (*ListEventsOutput, error) {
	ids, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return r.GetEvents(ctx, &GetEventsInput{EventIDs: ids})
}

// AddParticipant atomically adds a user to an event
func (r *redisRepository) AddParticipant(ctx context.Context, input *AddParticipantInput) (*models.Event, error) {
	if input == nil || input.EventID == "" || input.UserID == "" {
		return nil, errors.New("input, event ID and user ID cannot be empty")
	}

	return r.mutateEvent(ctx, input.EventID, func(e *models.Event) error {
		if e.Cancelled {
			return ErrEventCancelled
		}
		if e.SpotsLeft() <= 0 {
			return ErrEventFull
		}
		if e.HasParticipant(input.UserID) {
			return ErrAlreadyParticipant
		}

		e.Participants = append(e.Participants, input.UserID)
		e.Attendance = len(e.Participants)
		e.UpdatedAt = input.UpdatedAt
		return nil
	}, func(ctx context.Context, pipe redis.Pipeliner, e *models.Event) {
		pipe.SAdd(ctx, participantIdxPrefix+input.UserID, e.ID)
	})
}

// RemoveParticipant atomically removes a user from an event
func (r *redisRepository) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*models.Event, error) {
	if input == nil || input.EventID == "" || input.UserID == "" {
		return nil, errors.New("input, event ID and user ID cannot be empty")
	}

	return r.mutateEvent(ctx, input.EventID, func(e *models.Event) error {
		if !e.HasParticipant(input.UserID) {
			return ErrNotParticipant
		}

		remaining := make([]string, 0, len(e.Participants))
		for _, p := range e.Participants {
			if p != input.UserID {
				remaining = append(remaining, p)
			}
		}
		e.Participants = remaining
		e.Attendance = len(e.Participants)
		e.UpdatedAt = input.UpdatedAt
		return nil
	}, func(ctx context.Context, pipe redis.Pipeliner, e *models.Event) {
		pipe.SRem(ctx, participantIdxPrefix+input.UserID, e.ID)
	})
}

// UpdateEvent applies input.Mutate to the stored event under WATCH and
// rewrites its indexes. Mutate runs again on a fresh copy after a conflict.
func (r *redisRepository) UpdateEvent(ctx context.Context, input *UpdateEventInput) (*models.Event, error) {
	if input == nil || input.EventID == "" || input.Mutate == nil {
		return nil, errors.New("input, event ID and mutate cannot be empty")
	}

	var oldCity string
	return r.mutateEvent(ctx, input.EventID, func(e *models.Event) error {
		oldCity = e.City
		return input.Mutate(e)
	}, func(ctx context.Context, pipe redis.Pipeliner, e *models.Event) {
		if cityKey(oldCity) != cityKey(e.City) {
			pipe.ZRem(ctx, cityKey(oldCity), e.ID)
		}
		writeIndexes(ctx, pipe, e)
	})
}

// mutateEvent applies a change under WATCH so concurrent writers cannot interleave
func (r *redisRepository) mutateEvent(
	ctx context.Context,
	eventID string,
	mutate func(e *models.Event) error,
	index func(ctx context.Context, pipe redis.Pipeliner, e *models.Event),
) (*models.Event, error) {
	key := eventKey(eventID)
	var updated *models.Event

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrEventNotFound
			}
			return fmt.Errorf("failed to get event: %w", err)
		}

		e, err := decodeEvent(raw)
		if err != nil {
			return err
		}

		if err := mutate(e); err != nil {
			return err
		}

		eventJSON, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, eventJSON, 0)
			index(ctx, pipe, e)
			return nil
		})
		if err != nil {
			return err
		}

		updated = e
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrConflict
}
