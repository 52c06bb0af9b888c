package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrNotFound means no session entry exists for the user.
	ErrNotFound = errors.New("session not found")
	// ErrUnavailable wraps connectivity failures talking to the store.
	ErrUnavailable = errors.New("session store unavailable")
)

// Store keeps the single valid refresh token per user in redis, keyed by the
// raw user-id string. The entry TTL always equals the refresh token lifetime,
// so an unused session expires on its own.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Put upserts the session entry and resets its expiry. Overwriting implicitly
// invalidates the previously issued refresh token.
func (s *Store) Put(ctx context.Context, userID, refreshToken string, ttl time.Duration) error {
	if err := s.client.Set(ctx, userID, refreshToken, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, userID string) (string, error) {
	token, err := s.client.Get(ctx, userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return token, nil
}

// Delete removes the entry. Deleting an absent entry is not an error.
func (s *Store) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, userID).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
