package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// GetUserByEmail fetches a user by their (normalized) email address.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, ErrInvalidArgument
	}
	return s.Store.Users().GetUserByEmail(ctx, email)
}

// UpdateProfile applies the non-nil fields of the update to the user's
// profile. Usernames are display names and may collide; email stays the
// identity key and is not updatable here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) (domain.User, error) {
	if userID == "" {
		return domain.User{}, ErrInvalidArgument
	}
	if p.Username != nil {
		trimmed := strings.TrimSpace(*p.Username)
		if trimmed == "" {
			return domain.User{}, ErrInvalidArgument
		}
		p.Username = &trimmed
	}
	if p.Empty() {
		return s.Store.Users().GetUserByID(ctx, userID)
	}

	if err := s.Store.Users().UpdateProfile(ctx, userID, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}
