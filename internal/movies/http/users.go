package http

import (
	"net/http"

	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/pkg/httpx"
	"github.com/bruinmovies/server/pkg/slogx"
)

type UserLookupHandler struct {
	UserService *service.UserService
}

// ServeHTTP resolves an email to its display name.
//
//	@Summary		Look up a user's display name by email
//	@Tags			Users
//	@Produce		json
//	@Param			email	query		string				true	"email to resolve"
//	@Success		200		{object}	map[string]string	"username"
//	@Failure		400		{object}	APIError			"missing email"
//	@Failure		404		{object}	APIError			"unknown email"
//	@Failure		500		{object}	APIError			"store unavailable"
//	@Router			/user [get].
func (h *UserLookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email := r.URL.Query().Get("email")
	user, err := h.UserService.GetUserByEmail(ctx, email)
	if err != nil {
		log.Warn("user lookup failed", "err", err)
		mapServiceError(err).WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"username": user.Username})
}
