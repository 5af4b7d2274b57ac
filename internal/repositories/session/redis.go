package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	sessionKeyPrefix = "session:"
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSession stores a session under its owner
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return fmt.Errorf("input and session cannot be nil")
	}

	if input.Session.OwnerID == "" {
		return fmt.Errorf("owner ID is required")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = r.client.Set(ctx, sessionKeyPrefix+input.Session.OwnerID, sessionJSON, input.TTL).Err()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// GetSession retrieves the session for an owner
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	if input.OwnerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+input.OwnerID).Result()
	if err != nil {
		if err == redis.Nil {
			// Never signed in, or expired
			return &GetSessionOutput{
				Session: nil,
			}, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &GetSessionOutput{
		Session: &session,
	}, nil
}

// DeleteSession removes the session for an owner
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil {
		return fmt.Errorf("input cannot be nil")
	}

	if input.OwnerID == "" {
		return fmt.Errorf("owner ID is required")
	}

	if err := r.client.Del(ctx, sessionKeyPrefix+input.OwnerID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
