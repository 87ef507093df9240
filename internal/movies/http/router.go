package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/internal/movies/store"
	"github.com/bruinmovies/server/pkg/httpx"
	"github.com/bruinmovies/server/pkg/jwtx"
	"github.com/bruinmovies/server/pkg/slogx"

	_ "github.com/bruinmovies/server/api/movies" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService      *service.AuthService
	CommentService   *service.CommentService
	WatchlistService *service.WatchlistService
	UserService      *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerComments()
	r.registerWatchlist()
	r.registerProfile()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			BruinMovies API
//	@version		0.1.0
//	@description	Movie-discovery social backend: comments with idempotent like toggles, per-user watchlists, and a passcode-based sign-in exchange.
//	@description
//	@description				Session tokens are HS256-signed bearer tokens valid for one hour.
//
//	@contact.name				BruinMovies Team
//	@contact.url				https://github.com/bruinmovies/server
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /signup - strict rate limit by IP (public registration endpoint)
	signUpHandler := &SignUpHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /signup",
		httpx.Chain(signUpHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /signin - strict rate limit by IP (password attempts)
	signInHandler := &SignInHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /signin",
		httpx.Chain(signInHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /verify-otp - strict rate limit by IP (passcode guessing)
	verifyHandler := &VerifyOTPHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /verify-otp",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerComments() {
	h := &CommentsHandler{CommentService: r.CommentService}

	// Comments are public endpoints; the actor key rides in the body.
	r.Mux.Handle("POST /comments",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /comments",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /comments",
		httpx.Chain(http.HandlerFunc(h.HandleToggleLike),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerWatchlist() {
	h := &WatchlistHandler{WatchlistService: r.WatchlistService}

	r.Mux.Handle("POST /watchlist",
		httpx.Chain(http.HandlerFunc(h.HandlePost),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /watchlist",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{UserService: r.UserService}

	r.Mux.Handle("GET /profile",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserLookupHandler{UserService: r.UserService}

	r.Mux.Handle("GET /user",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
