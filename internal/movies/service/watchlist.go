package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/store"
)

type WatchlistService struct {
	Store store.Store
}

// Toggle flips a movie in and out of the user's watchlist.
func (s *WatchlistService) Toggle(ctx context.Context, userID, movieID string) (domain.ToggleResult, error) {
	movieID = strings.TrimSpace(movieID)
	if userID == "" || movieID == "" {
		return domain.ToggleResult{}, ErrInvalidArgument
	}

	added, size, err := s.Store.Users().ToggleWatchlist(ctx, userID, movieID)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	state := domain.MembershipRemoved
	if added {
		state = domain.MembershipAdded
	}
	return domain.ToggleResult{State: state, Count: size}, nil
}

// SetItem forces a movie's presence in the watchlist to the desired state.
// Applying a state that already holds is a no-op, not an error.
func (s *WatchlistService) SetItem(ctx context.Context, userID, movieID string, present bool) error {
	movieID = strings.TrimSpace(movieID)
	if userID == "" || movieID == "" {
		return ErrInvalidArgument
	}

	if present {
		return s.Store.Users().AddWatchlistItem(ctx, userID, movieID)
	}
	return s.Store.Users().RemoveWatchlistItem(ctx, userID, movieID)
}

// Get returns the user's watchlist as a list of movie identifiers.
func (s *WatchlistService) Get(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, ErrInvalidArgument
	}
	items, err := s.Store.Users().GetWatchlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// ListWatchers returns summaries of every user with the movie on their
// watchlist.
func (s *WatchlistService) ListWatchers(ctx context.Context, movieID string) ([]domain.UserSummary, error) {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return nil, ErrInvalidArgument
	}

	users, err := s.Store.Users().ListUsersByWatchlistItem(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchers: %w", err)
	}

	summaries := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}
