package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/store"
)

func TestUpdateProfile(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	user := createTestUser(t, st, "carol", "carol@example.com")

	t.Run("partial update touches only named fields", func(t *testing.T) {
		bio := "film buff"
		major := "Computer Science"
		got, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{
			Biography: &bio,
			Major:     &major,
		})
		require.NoError(t, err)
		require.Equal(t, "film buff", got.Biography)
		require.Equal(t, "Computer Science", got.Major)
		require.Equal(t, "carol", got.Username, "untouched field survives")
	})

	t.Run("empty update is a read", func(t *testing.T) {
		got, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{})
		require.NoError(t, err)
		require.Equal(t, "film buff", got.Biography)
	})

	t.Run("blank username is rejected", func(t *testing.T) {
		blank := "   "
		_, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{Username: &blank})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown user", func(t *testing.T) {
		bio := "ghost"
		_, err := svc.UpdateProfile(ctx, "no-such-user", domain.ProfileUpdate{Biography: &bio})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestGetUserByEmail(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	createTestUser(t, st, "dave", "dave@example.com")

	got, err := svc.GetUserByEmail(ctx, " Dave@Example.com ")
	require.NoError(t, err)
	require.Equal(t, "dave", got.Username)

	_, err = svc.GetUserByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}
