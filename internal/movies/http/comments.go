package http

import (
	"net/http"
	"time"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/pkg/httpx"
	"github.com/bruinmovies/server/pkg/slogx"
)

type CommentsHandler struct {
	CommentService *service.CommentService
}

type createCommentRequest struct {
	Comment   string `json:"comment"`
	MovieName string `json:"movieName"`
	User      string `json:"user"`
}

type commentResponse struct {
	CommentID string    `json:"commentId"`
	MovieName string    `json:"movieName"`
	Comment   string    `json:"comment"`
	Author    string    `json:"author,omitempty"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	likedBy := c.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}
	return commentResponse{
		CommentID: c.ID,
		MovieName: c.MovieName,
		Comment:   c.Body,
		Author:    c.Author,
		Likes:     c.Likes,
		LikedBy:   likedBy,
		CreatedAt: c.CreatedAt,
	}
}

// HandleCreate posts a comment under a movie.
//
//	@Summary		Post a comment
//	@Description	Creates a comment under the named movie. New comments start with zero likes.
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createCommentRequest	true	"comment body and movie name"
//	@Success		201		{object}	map[string]string		"message, commentId"
//	@Failure		400		{object}	APIError				"malformed body or empty fields"
//	@Failure		500		{object}	APIError				"store unavailable"
//	@Router			/comments [post].
func (h *CommentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createCommentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	comment, err := h.CommentService.CreateComment(ctx, req.MovieName, req.Comment, req.User)
	if err != nil {
		log.Warn("create comment failed", "movie", req.MovieName, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{
		"message":   "Comment added successfully",
		"commentId": comment.ID,
	})
}

// HandleList returns a movie's comments, most liked first.
//
//	@Summary		List comments for a movie
//	@Tags			Comments
//	@Produce		json
//	@Param			movieName	query		string	true	"movie to list comments for"
//	@Success		200			{array}		commentResponse
//	@Failure		400			{object}	APIError	"missing movieName"
//	@Failure		500			{object}	APIError	"store unavailable"
//	@Router			/comments [get].
func (h *CommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	movieName := r.URL.Query().Get("movieName")
	comments, err := h.CommentService.ListComments(ctx, movieName)
	if err != nil {
		log.Warn("list comments failed", "movie", movieName, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type toggleLikeRequest struct {
	CommentID string `json:"commentId"`
	Email     string `json:"email"`
	// UserID is accepted as a legacy alias for Email.
	UserID string `json:"userId"`
}

// HandleToggleLike flips the caller's like on a comment.
//
//	@Summary		Toggle a like on a comment
//	@Description	Adds the actor to the comment's liked-by set, or removes them if already present. The likes counter always equals the set size.
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		toggleLikeRequest	true	"comment id and actor email"
//	@Success		200		{object}	map[string]any		"message, state, likes"
//	@Failure		400		{object}	APIError			"malformed body or empty actor"
//	@Failure		404		{object}	APIError			"unknown comment"
//	@Failure		500		{object}	APIError			"store unavailable"
//	@Router			/comments [patch].
func (h *CommentsHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req toggleLikeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	actor := req.Email
	if actor == "" {
		actor = req.UserID
	}

	res, err := h.CommentService.ToggleLike(ctx, req.CommentID, actor)
	if err != nil {
		log.Warn("toggle like failed", "comment_id", req.CommentID, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	message := "Comment unliked"
	if res.State == domain.MembershipAdded {
		message = "Comment liked"
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"state":   res.State,
		"likes":   res.Count,
	})
}
