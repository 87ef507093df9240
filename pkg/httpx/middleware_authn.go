package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/bruinmovies/server/pkg/jwtx"
	"github.com/bruinmovies/server/pkg/slogx"
)

// AuthnMiddleware verifies the bearer session token and injects the caller's
// identity into the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("jwt verify failed", "err", err)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// UserIDFromContext returns the authenticated user's ID, or "" when the
// request did not pass AuthnMiddleware.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// EmailFromContext returns the authenticated user's email, the identity key
// membership sets are keyed by.
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
