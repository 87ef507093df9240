package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/store"
	"github.com/bruinmovies/server/pkg/idx"
)

var ErrInvalidArgument = errors.New("invalid argument")

type CommentService struct {
	Store store.Store
}

// CreateComment posts a comment under a movie. The author is the actor's
// email so liked-by sets and authorship share one key; it may be empty, in
// which case the comment is anonymous.
func (s *CommentService) CreateComment(ctx context.Context, movieName, body, author string) (domain.Comment, error) {
	movieName = strings.TrimSpace(movieName)
	body = strings.TrimSpace(body)
	author = normalizeEmail(author)
	if movieName == "" || body == "" {
		return domain.Comment{}, ErrInvalidArgument
	}

	comment := domain.Comment{
		ID:        idx.New().String(),
		MovieName: movieName,
		Body:      body,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Comments().CreateComment(ctx, comment); err != nil {
		return domain.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// ListComments returns a movie's comments, most liked first, newest breaking
// ties. An unknown movie yields an empty list, not an error.
func (s *CommentService) ListComments(ctx context.Context, movieName string) ([]domain.Comment, error) {
	movieName = strings.TrimSpace(movieName)
	if movieName == "" {
		return nil, ErrInvalidArgument
	}
	comments, err := s.Store.Comments().ListCommentsByMovie(ctx, movieName)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// ToggleLike flips the actor's like on a comment. The returned count always
// equals the size of the liked-by set after the flip.
func (s *CommentService) ToggleLike(ctx context.Context, commentID, actor string) (domain.ToggleResult, error) {
	commentID = strings.TrimSpace(commentID)
	actor = normalizeEmail(actor)
	if commentID == "" || actor == "" {
		return domain.ToggleResult{}, ErrInvalidArgument
	}

	added, likes, err := s.Store.Comments().ToggleLike(ctx, commentID, actor)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	state := domain.MembershipRemoved
	if added {
		state = domain.MembershipAdded
	}
	return domain.ToggleResult{State: state, Count: likes}, nil
}
