package http

import (
	"net/http"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/pkg/httpx"
	"github.com/bruinmovies/server/pkg/slogx"
)

type ProfileHandler struct {
	UserService *service.UserService
}

type profileResponse struct {
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Biography      string   `json:"biography"`
	ProfilePicture string   `json:"profilePicture"`
	GenreInterests string   `json:"genre_interests"`
	Major          string   `json:"major"`
	Year           string   `json:"year"`
	Watchlist      []string `json:"watchlist"`
}

func toProfileResponse(u domain.User) profileResponse {
	watchlist := u.Watchlist
	if watchlist == nil {
		watchlist = []string{}
	}
	return profileResponse{
		Username:       u.Username,
		Email:          u.Email,
		Biography:      u.Biography,
		ProfilePicture: u.ProfilePicture,
		GenreInterests: u.GenreInterests,
		Major:          u.Major,
		Year:           u.Year,
		Watchlist:      watchlist,
	}
}

// HandleGet returns the caller's own profile.
//
//	@Summary		Get the caller's profile
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	profileResponse
//	@Failure		401	{object}	APIError	"missing or invalid bearer token"
//	@Failure		404	{object}	APIError	"account no longer exists"
//	@Failure		500	{object}	APIError	"store unavailable"
//	@Router			/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		ErrInvalidCredentials.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("profile read failed", "user_id", userID, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(user))
}

type updateProfileRequest struct {
	Username       *string `json:"username"`
	Biography      *string `json:"biography"`
	ProfilePicture *string `json:"profilePicture"`
	GenreInterests *string `json:"genre_interests"`
	Major          *string `json:"major"`
	Year           *string `json:"year"`
}

// HandleUpdate applies a partial update to the caller's profile.
//
//	@Summary		Update the caller's profile
//	@Description	Omitted fields are left untouched.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		updateProfileRequest	true	"fields to change"
//	@Success		200		{object}	profileResponse
//	@Failure		400		{object}	APIError	"malformed body or blank username"
//	@Failure		401		{object}	APIError	"missing or invalid bearer token"
//	@Failure		404		{object}	APIError	"account no longer exists"
//	@Failure		500		{object}	APIError	"store unavailable"
//	@Router			/profile [put].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		ErrInvalidCredentials.WriteError(w)
		return
	}

	var req updateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.UpdateProfile(ctx, userID, domain.ProfileUpdate{
		Username:       req.Username,
		Biography:      req.Biography,
		ProfilePicture: req.ProfilePicture,
		GenreInterests: req.GenreInterests,
		Major:          req.Major,
		Year:           req.Year,
	})
	if err != nil {
		log.Warn("profile update failed", "user_id", userID, "err", err)
		mapServiceError(err).WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(user))
}
