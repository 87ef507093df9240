package http

import (
	"net/http"

	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/pkg/httpx"
	"github.com/bruinmovies/server/pkg/slogx"
)

type SignInHandler struct {
	AuthService *service.AuthService
}

type signInRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP starts the sign-in exchange. The passcode only ever leaves the
// server through the email channel; the response merely says one is pending.
//
//	@Summary		Start the sign-in exchange
//	@Description	Checks the password and emails a short-lived one-time passcode. Reissuing supersedes any earlier pending passcode.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		signInRequest		true	"email (or username) and password"
//	@Success		200		{object}	map[string]bool		"requiresOTP"
//	@Failure		400		{object}	APIError			"malformed body"
//	@Failure		401		{object}	APIError			"unknown account or wrong password"
//	@Failure		500		{object}	APIError			"store unavailable or email delivery failed"
//	@Router			/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" || req.Password == "" {
		ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.AuthService.InitiateSignIn(ctx, identifier, req.Password); err != nil {
		log.Warn("signin initiation failed", "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"requiresOTP": true})
}
