package user

import (
	"context"
	"time"

	"todoapi/internal/domain"
)

// UserRepositoryInterface — only the methods the session lifecycle uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SessionStore binds a user id to its single valid refresh token. The redis
// adapter implements it in production; tests substitute an in-memory map.
type SessionStore interface {
	Put(ctx context.Context, userID, refreshToken string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}
