package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"todoapi/internal/domain"
	"todoapi/internal/pkg/hash"
	"todoapi/internal/pkg/jwt"
	"todoapi/internal/repository"
	"todoapi/internal/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tokenCodec interface {
	SignAccess(userID, email, name string) (string, error)
	SignRefresh(userID, email, name string) (string, error)
	VerifyRefresh(token string) (*jwt.Claims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// Service orchestrates the session lifecycle: registration, login, refresh
// rotation and logout. All shared session state lives in the session store.
type Service struct {
	users          UserRepositoryInterface
	sessions       SessionStore
	codec          tokenCodec
	passwordSecret string
}

func NewService(users UserRepositoryInterface, sessions SessionStore, codec tokenCodec, passwordSecret string) *Service {
	return &Service{
		users:          users,
		sessions:       sessions,
		codec:          codec,
		passwordSecret: passwordSecret,
	}
}

// Register creates the user and immediately behaves as Login for the new
// identity, returning a token pair.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	now := time.Now().Unix()
	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash.Sum(req.Password, s.passwordSecret),
		Name:         req.Name,
		Telephone:    req.Telephone,
		Age:          req.Age,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// racing insert on the same email
			return nil, ErrUserExists
		}
		return nil, err
	}

	return s.issue(ctx, Identity{ID: u.ID, Email: u.Email, Name: u.Name})
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !hash.Equal(u.PasswordHash, req.Password, s.passwordSecret) {
		return nil, ErrIncorrectPassword
	}

	return s.issue(ctx, Identity{ID: u.ID, Email: u.Email, Name: u.Name})
}

// Refresh rotates the token pair. The presented refresh token must verify
// against the refresh secret AND exactly match the current session entry;
// verification fails fast on the first error.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*SessionResponse, error) {
	claims, err := s.verifySession(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	return s.issue(ctx, Identity{ID: claims.UserID, Email: claims.Email, Name: claims.Name})
}

// Logout deletes the session entry and returns the user id removed.
func (s *Service) Logout(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.verifySession(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	if err := s.sessions.Delete(ctx, claims.UserID); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return claims.UserID, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*ProfileResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &ProfileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Telephone: u.Telephone,
	}, nil
}

// verifySession checks signature and expiry, then requires the token to be
// the one on file for the claimed user. Enforces single-active-session.
func (s *Service) verifySession(ctx context.Context, refreshToken string) (*jwt.Claims, error) {
	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	stored, err := s.sessions.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if stored != refreshToken {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// issue mints a fresh token pair and persists the refresh token, overwriting
// any prior session entry for the user.
func (s *Service) issue(ctx context.Context, id Identity) (*SessionResponse, error) {
	access, err := s.codec.SignAccess(id.ID, id.Email, id.Name)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.SignRefresh(id.ID, id.Email, id.Name)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Put(ctx, id.ID, refresh, s.codec.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &SessionResponse{
		User: id,
		BackendTokens: BackendTokens{
			Token:        access,
			RefreshToken: refresh,
			ExpiresIn:    time.Now().Add(s.codec.AccessTTL()).UnixMilli(),
		},
	}, nil
}
