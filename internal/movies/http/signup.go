package http

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/pkg/httpx"
	"github.com/bruinmovies/server/pkg/slogx"
)

const minPasswordLength = 8

type SignUpHandler struct {
	AuthService *service.AuthService
}

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP registers a new account.
//
//	@Summary		Register a new account
//	@Description	Creates an account. No session token is issued; complete the sign-in exchange to get one.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		signUpRequest		true	"username, email, password"
//	@Success		201		{object}	map[string]string	"message"
//	@Failure		400		{object}	APIError			"malformed body, bad email, or short password"
//	@Failure		409		{object}	APIError			"email already registered"
//	@Failure		500		{object}	APIError			"store unavailable"
//	@Router			/signup [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req signUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	if strings.TrimSpace(req.Username) == "" || len(req.Password) < minPasswordLength {
		ErrInvalidRequest.WriteError(w)
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AuthService.SignUp(ctx, service.SignUpParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		log.Warn("signup failed", "err", err)
		mapServiceError(err).WriteError(w)
		return
	}

	log.Info("user registered", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}
