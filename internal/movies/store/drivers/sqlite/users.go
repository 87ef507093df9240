package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/store"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, username, email, password_hash,
	passcode_value, passcode_expires_at,
	biography, profile_picture, genre_interests, major, year,
	created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash,
			biography, profile_picture, genre_interests, major, year,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash,
		u.Biography, u.ProfilePicture, u.GenreInterests, u.Major, u.Year,
		now, now,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE username = ? LIMIT 1`, username)
}

func (r *usersRepo) getUser(ctx context.Context, query string, arg any) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	watchlist, err := r.watchlistFor(ctx, r.db, u.ID)
	if err != nil {
		return domain.User{}, err
	}
	u.Watchlist = watchlist
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u         domain.User
		pcValue   sql.NullString
		pcExpires sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&pcValue, &pcExpires,
		&u.Biography, &u.ProfilePicture, &u.GenreInterests, &u.Major, &u.Year,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	if pcValue.Valid && pcExpires.Valid {
		u.Passcode = &domain.Passcode{Value: pcValue.String, ExpiresAt: pcExpires.Time}
	}
	return u, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *usersRepo) watchlistFor(ctx context.Context, q querier, userID string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT movie_id FROM watchlist_items WHERE user_id = ? ORDER BY created_at, movie_id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	return items, rows.Err()
}

func (r *usersRepo) SetPendingPasscode(ctx context.Context, userID string, pc domain.Passcode) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET passcode_value = ?, passcode_expires_at = ?, updated_at = ?
		WHERE id = ?`,
		pc.Value, pc.ExpiresAt.UTC(), time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireMatch(res)
}

func (r *usersRepo) ClearPendingPasscode(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET passcode_value = NULL, passcode_expires_at = NULL, updated_at = ?
		WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireMatch(res)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	add := func(column string, v *string) {
		if v != nil {
			sets = append(sets, column+" = ?")
			args = append(args, *v)
		}
	}
	add("username", p.Username)
	add("biography", p.Biography)
	add("profile_picture", p.ProfilePicture)
	add("genre_interests", p.GenreInterests)
	add("major", p.Major)
	add("year", p.Year)

	args = append(args, userID)
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	return requireMatch(res)
}

func (r *usersRepo) ToggleWatchlist(ctx context.Context, userID, movieID string) (added bool, size int, err error) {
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			DELETE FROM watchlist_items WHERE user_id = ? AND movie_id = ?`,
			userID, movieID,
		)
		if err != nil {
			return err
		}
		deleted, err := res.RowsAffected()
		if err != nil {
			return err
		}

		if deleted == 0 {
			var exists int
			if err := tx.QueryRowContext(ctx,
				`SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&exists); err != nil {
				return err
			}
			if exists == 0 {
				return store.ErrNotFound
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO watchlist_items (user_id, movie_id, created_at) VALUES (?, ?, ?)`,
				userID, movieID, time.Now().UTC(),
			); err != nil {
				return err
			}
			added = true
		}

		return tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM watchlist_items WHERE user_id = ?`, userID).Scan(&size)
	})
	return added, size, err
}

func (r *usersRepo) AddWatchlistItem(ctx context.Context, userID, movieID string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := userExists(ctx, tx, userID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO watchlist_items (user_id, movie_id, created_at) VALUES (?, ?, ?)`,
			userID, movieID, time.Now().UTC(),
		)
		return err
	})
}

func (r *usersRepo) RemoveWatchlistItem(ctx context.Context, userID, movieID string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := userExists(ctx, tx, userID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			DELETE FROM watchlist_items WHERE user_id = ? AND movie_id = ?`,
			userID, movieID,
		)
		return err
	})
}

func (r *usersRepo) GetWatchlist(ctx context.Context, userID string) ([]string, error) {
	if err := userExists(ctx, r.db, userID); err != nil {
		return nil, err
	}
	return r.watchlistFor(ctx, r.db, userID)
}

func (r *usersRepo) ListUsersByWatchlistItem(ctx context.Context, movieID string) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE id IN (SELECT user_id FROM watchlist_items WHERE movie_id = ?)`,
		movieID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func userExists(ctx context.Context, q rowQuerier, userID string) error {
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func requireMatch(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
