package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix     = "user:"
	providerKeyPrefix = "user:provider:" // provider:external id -> user ID
	emailKeyPrefix    = "user:email:"    // lowercased email -> user ID
	imageKeyPrefix    = "user:image:"    // hash of content type and bytes

	imageFieldType = "content_type"
	imageFieldData = "data"

	// maxTxRetries bounds optimistic retries when a watched key changes mid-save
	maxTxRetries = 5
)

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileImageNotFound is returned when a user has no stored avatar
	ErrProfileImageNotFound = errors.New("profile image not found")

	// ErrEmailTaken is returned when saving a user whose email belongs to another user
	ErrEmailTaken = errors.New("email belongs to another user")
)

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
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

func providerKey(p models.Provider, externalID string) string {
	return fmt.Sprintf("%s%s:%s", providerKeyPrefix, p, externalID)
}

func emailKey(email string) string {
	return emailKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// SaveUser persists a user to Redis. The email index is checked under WATCH;
// an address that belongs to another user returns ErrEmailTaken.
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	u := input.User
	if u.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	userJSON, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	watched := []string{userKeyPrefix + u.ID}
	if u.Email != "" {
		watched = append(watched, emailKey(u.Email))
	}

	txf := func(tx *redis.Tx) error {
		if u.Email != "" {
			owner, err := tx.Get(ctx, emailKey(u.Email)).Result()
			if err != nil && err != redis.Nil {
				return fmt.Errorf("failed to look up email: %w", err)
			}
			if err == nil && owner != u.ID {
				return ErrEmailTaken
			}
		}

		var existing *models.User
		raw, err := tx.Get(ctx, userKeyPrefix+u.ID).Result()
		switch {
		case err == nil:
			if existing, err = decodeUser(raw); err != nil {
				return err
			}
		case err != redis.Nil:
			return fmt.Errorf("failed to get user: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, userKeyPrefix+u.ID, userJSON, 0)

			// Drop index entries that no longer point at this user
			if existing != nil {
				if existing.Email != "" && !strings.EqualFold(existing.Email, u.Email) {
					pipe.Del(ctx, emailKey(existing.Email))
				}
				if existing.FacebookID != "" && existing.FacebookID != u.FacebookID {
					pipe.Del(ctx, providerKey(models.ProviderFacebook, existing.FacebookID))
				}
				if existing.GoogleID != "" && existing.GoogleID != u.GoogleID {
					pipe.Del(ctx, providerKey(models.ProviderGoogle, existing.GoogleID))
				}
			}

			if u.Email != "" {
				pipe.Set(ctx, emailKey(u.Email), u.ID, 0)
			}
			if u.FacebookID != "" {
				pipe.Set(ctx, providerKey(models.ProviderFacebook, u.FacebookID), u.ID, 0)
			}
			if u.GoogleID != "" {
				pipe.Set(ctx, providerKey(models.ProviderGoogle, u.GoogleID), u.ID, 0)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, watched...)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrEmailTaken) {
			return err
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	return fmt.Errorf("failed to save user: %w", redis.TxFailedErr)
}

// GetUser retrieves a user by ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, userKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return decodeUser(userJSON)
}

func decodeUser(raw string) (*models.User, error) {
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	if u.Interests == nil {
		u.Interests = []string{}
	}
	return &u, nil
}

// GetUsers retrieves several users in request order
func (r *redisRepository) GetUsers(ctx context.Context, input *GetUsersInput) (*GetUsersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	users := make([]*models.User, len(input.UserIDs))
	if len(input.UserIDs) == 0 {
		return &GetUsersOutput{Users: users}, nil
	}

	keys := make([]string, len(input.UserIDs))
	for i, id := range input.UserIDs {
		keys[i] = userKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		u, err := decodeUser(raw)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}

	return &GetUsersOutput{Users: users}, nil
}

// GetUserByProvider retrieves a user by provider account
func (r *redisRepository) GetUserByProvider(ctx context.Context, input *GetUserByProviderInput) (*models.User, error) {
	if input == nil || input.ExternalID == "" {
		return nil, errors.New("input and external ID cannot be empty")
	}

	if !input.Provider.Valid() {
		return nil, fmt.Errorf("unknown provider %q", input.Provider)
	}

	return r.getByIndex(ctx, providerKey(input.Provider, input.ExternalID))
}

// GetUserByEmail retrieves a user by email, ignoring case
func (r *redisRepository) GetUserByEmail(ctx context.Context, input *GetUserByEmailInput) (*models.User, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	return r.getByIndex(ctx, emailKey(input.Email))
}

func (r *redisRepository) getByIndex(ctx context.Context, key string) (*models.User, error) {
	userID, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return r.GetUser(ctx, &GetUserInput{UserID: userID})
}

// SaveProfileImage stores an avatar, replacing any previous one
func (r *redisRepository) SaveProfileImage(ctx context.Context, input *SaveProfileImageInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if len(input.Data) == 0 {
		return errors.New("image data cannot be empty")
	}

	err := r.client.HSet(ctx, imageKeyPrefix+input.UserID,
		imageFieldType, input.ContentType,
		imageFieldData, input.Data,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to save profile image: %w", err)
	}

	return nil
}

// GetProfileImage retrieves a stored avatar
func (r *redisRepository) GetProfileImage(ctx context.Context, input *GetProfileImageInput) (*ProfileImage, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, imageKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile image: %w", err)
	}

	data, ok := fields[imageFieldData]
	if !ok {
		return nil, ErrProfileImageNotFound
	}

	return &ProfileImage{
		ContentType: fields[imageFieldType],
		Data:        []byte(data),
	}, nil
}
