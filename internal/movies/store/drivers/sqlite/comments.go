package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/store"
)

type commentsRepo struct {
	db *sql.DB
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (id, movie_name, body, author, likes, created_at)
		VALUES (?, ?, ?, ?, 0, ?)`,
		c.ID, c.MovieName, c.Body, c.Author, time.Now().UTC(),
	)
	return err
}

func (r *commentsRepo) GetCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, movie_name, body, author, likes, created_at
		FROM comments WHERE id = ?`, id)

	var c domain.Comment
	if err := row.Scan(&c.ID, &c.MovieName, &c.Body, &c.Author, &c.Likes, &c.CreatedAt); err != nil {
		return domain.Comment{}, mapNotFound(err)
	}

	likedBy, err := r.likedByFor(ctx, c.ID)
	if err != nil {
		return domain.Comment{}, err
	}
	c.LikedBy = likedBy
	return c, nil
}

func (r *commentsRepo) ListCommentsByMovie(ctx context.Context, movieName string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, movie_name, body, author, likes, created_at
		FROM comments
		WHERE movie_name = ?
		ORDER BY likes DESC, created_at DESC`, movieName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.MovieName, &c.Body, &c.Author, &c.Likes, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range comments {
		likedBy, err := r.likedByFor(ctx, comments[i].ID)
		if err != nil {
			return nil, err
		}
		comments[i].LikedBy = likedBy
	}
	return comments, nil
}

func (r *commentsRepo) likedByFor(ctx context.Context, commentID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_email FROM comment_likes WHERE comment_id = ? ORDER BY created_at, user_email`,
		commentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

// ToggleLike flips actor's membership in the comment's liked set and keeps
// the likes counter equal to the set size within the same transaction.
func (r *commentsRepo) ToggleLike(ctx context.Context, commentID, actor string) (added bool, likes int, err error) {
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			DELETE FROM comment_likes WHERE comment_id = ? AND user_email = ?`,
			commentID, actor,
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
				`SELECT COUNT(*) FROM comments WHERE id = ?`, commentID).Scan(&exists); err != nil {
				return err
			}
			if exists == 0 {
				return store.ErrNotFound
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO comment_likes (comment_id, user_email, created_at) VALUES (?, ?, ?)`,
				commentID, actor, time.Now().UTC(),
			); err != nil {
				return err
			}
			added = true
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE comments
			SET likes = (SELECT COUNT(*) FROM comment_likes WHERE comment_id = ?)
			WHERE id = ?`,
			commentID, commentID,
		); err != nil {
			return err
		}

		return tx.QueryRowContext(ctx,
			`SELECT likes FROM comments WHERE id = ?`, commentID).Scan(&likes)
	})
	return added, likes, err
}
