package http

import (
	"net/http"

	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/pkg/httpx"
	"github.com/bruinmovies/server/pkg/slogx"
)

type WatchlistHandler struct {
	WatchlistService *service.WatchlistService
}

type watchlistRequest struct {
	MovieID string `json:"movieId"`
	// Action is "add", "remove", or "" for a plain toggle.
	Action string `json:"action"`
}

// HandlePost mutates the caller's watchlist.
//
//	@Summary		Add, remove, or toggle a watchlist entry
//	@Description	With action "add" or "remove" the entry is forced to that state, idempotently. Without an action the entry is toggled.
//	@Tags			Watchlist
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		watchlistRequest	true	"movie id and optional action"
//	@Success		200		{object}	map[string]any		"message, plus state and count on toggles"
//	@Failure		400		{object}	APIError			"malformed body or unknown action"
//	@Failure		401		{object}	APIError			"missing or invalid bearer token"
//	@Failure		404		{object}	APIError			"unknown user"
//	@Failure		500		{object}	APIError			"store unavailable"
//	@Router			/watchlist [post].
func (h *WatchlistHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		ErrInvalidCredentials.WriteError(w)
		return
	}

	var req watchlistRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	switch req.Action {
	case "add", "remove":
		err := h.WatchlistService.SetItem(ctx, userID, req.MovieID, req.Action == "add")
		if err != nil {
			log.Warn("watchlist update failed", "movie_id", req.MovieID, "action", req.Action, "err", err)
			mapServiceError(err).WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Watchlist updated successfully",
		})
	case "":
		res, err := h.WatchlistService.Toggle(ctx, userID, req.MovieID)
		if err != nil {
			log.Warn("watchlist toggle failed", "movie_id", req.MovieID, "err", err)
			mapServiceError(err).WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Watchlist updated successfully",
			"state":   res.State,
			"count":   res.Count,
		})
	default:
		ErrInvalidRequest.WriteError(w)
	}
}

// HandleGet reads watchlist state.
//
//	@Summary		Read the caller's watchlist, or look up a movie's watchers
//	@Description	Without a query returns the caller's own watchlist. With imdbId returns every user watching that movie.
//	@Tags			Watchlist
//	@Security		BearerAuth
//	@Produce		json
//	@Param			imdbId	query		string				false	"movie to reverse-look up"
//	@Success		200		{object}	map[string]any		"watchlist or users"
//	@Failure		401		{object}	APIError			"missing or invalid bearer token"
//	@Failure		404		{object}	APIError			"unknown user"
//	@Failure		500		{object}	APIError			"store unavailable"
//	@Router			/watchlist [get].
func (h *WatchlistHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		ErrInvalidCredentials.WriteError(w)
		return
	}

	if imdbID := r.URL.Query().Get("imdbId"); imdbID != "" {
		users, err := h.WatchlistService.ListWatchers(ctx, imdbID)
		if err != nil {
			log.Warn("watcher lookup failed", "imdb_id", imdbID, "err", err)
			mapServiceError(err).WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"users": users})
		return
	}

	items, err := h.WatchlistService.Get(ctx, userID)
	if err != nil {
		log.Warn("watchlist read failed", "err", err)
		mapServiceError(err).WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"watchlist": items})
}
