package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "search:"

// Config holds configuration for the Redis search repository
type Config struct {
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed search repository
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

// SaveSearch stores a search state under its ID
func (r *redisRepository) SaveSearch(ctx context.Context, input *SaveSearchInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	if input.ID == "" {
		return errors.New("search ID is required")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal search state: %w", err)
	}

	if err := r.client.Set(ctx, searchKeyPrefix+input.ID, stateJSON, input.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store search state: %w", err)
	}

	return nil
}

// GetSearch retrieves a search state by ID
func (r *redisRepository) GetSearch(ctx context.Context, input *GetSearchInput) (*GetSearchOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.New("search ID is required")
	}

	stateJSON, err := r.client.Get(ctx, searchKeyPrefix+input.ID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &GetSearchOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get search state: %w", err)
	}

	var state models.SearchState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search state: %w", err)
	}

	return &GetSearchOutput{State: &state}, nil
}
