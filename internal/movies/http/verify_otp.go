package http

import (
	"net/http"

	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/pkg/httpx"
	"github.com/bruinmovies/server/pkg/slogx"
)

type VerifyOTPHandler struct {
	AuthService *service.AuthService
}

type verifyOTPRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	OTP      string `json:"otp"`
}

type verifyOTPResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// ServeHTTP completes the sign-in exchange.
//
//	@Summary		Complete the sign-in exchange
//	@Description	Consumes the emailed one-time passcode and returns a signed session token valid for one hour. Passcodes are single use.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		verifyOTPRequest	true	"email (or username) and the emailed passcode"
//	@Success		200		{object}	verifyOTPResponse	"token, username"
//	@Failure		400		{object}	APIError			"malformed body"
//	@Failure		401		{object}	APIError			"wrong or expired passcode"
//	@Failure		404		{object}	APIError			"no pending passcode"
//	@Failure		500		{object}	APIError			"store unavailable"
//	@Router			/verify-otp [post].
func (h *VerifyOTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req verifyOTPRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" || req.OTP == "" {
		ErrInvalidRequest.WriteError(w)
		return
	}

	token, user, err := h.AuthService.CompleteSignIn(ctx, identifier, req.OTP)
	if err != nil {
		log.Warn("signin completion failed", "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	log.Info("user signed in", "user_id", user.ID)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, verifyOTPResponse{
		Token:    token,
		Username: user.Username,
	})
}
