package store

import (
	"context"
	"errors"

	"github.com/bruinmovies/server/internal/movies/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (mongo, sqlite)
// implement this. Every mutating operation that touches a membership set and
// its counter must apply both in a single atomic update; a concurrent reader
// must never observe the two inconsistent with each other.
type Store interface {
	Users() Users
	Comments() Comments

	// ApplyMigrations prepares the backing store: schema migrations for the
	// relational driver, index creation for the document driver.
	ApplyMigrations() error

	// Close releases the underlying connection.
	Close() error

	// Ping verifies the store connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is already registered.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// SetPendingPasscode overwrites any prior pending passcode. At most one
	// passcode is valid per identity at a time.
	SetPendingPasscode(ctx context.Context, userID string, pc domain.Passcode) error

	// ClearPendingPasscode removes the pending passcode binding (single use).
	ClearPendingPasscode(ctx context.Context, userID string) error

	// UpdateProfile applies a partial profile update and bumps updated_at.
	UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) error

	// ToggleWatchlist flips the presence of movieID in the user's watchlist.
	// The membership test and the mutation are one atomic update.
	ToggleWatchlist(ctx context.Context, userID, movieID string) (added bool, size int, err error)

	// AddWatchlistItem / RemoveWatchlistItem apply one-directional, idempotent
	// membership changes for the explicit add/remove API.
	AddWatchlistItem(ctx context.Context, userID, movieID string) error
	RemoveWatchlistItem(ctx context.Context, userID, movieID string) error

	GetWatchlist(ctx context.Context, userID string) ([]string, error)

	// ListUsersByWatchlistItem is the reverse lookup: every user whose
	// watchlist contains movieID.
	ListUsersByWatchlistItem(ctx context.Context, movieID string) ([]domain.User, error)
}

type Comments interface {
	// CreateComment inserts a comment (id is provided by the app via ULID).
	CreateComment(ctx context.Context, c domain.Comment) error

	GetCommentByID(ctx context.Context, id string) (domain.Comment, error)

	// ListCommentsByMovie returns comments for a movie ordered by likes
	// descending, then newest first.
	ListCommentsByMovie(ctx context.Context, movieName string) ([]domain.Comment, error)

	// ToggleLike flips actor's presence in likedBy and adjusts likes by
	// exactly one, atomically. The returned likes value reflects this commit;
	// later concurrent toggles may supersede it.
	ToggleLike(ctx context.Context, commentID, actor string) (added bool, likes int, err error)
}
