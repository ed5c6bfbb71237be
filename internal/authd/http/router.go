package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/keyfold/authd/internal/authd/service"
	"github.com/keyfold/authd/internal/authd/store"
	"github.com/keyfold/authd/pkg/httpx"
	"github.com/keyfold/authd/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AccountService *service.AccountService
	TokenService   *service.TokenService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerTokens()
	r.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	// POST /signup - strict rate limit by IP (public account creation)
	signupHandler := &SignupHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /signin - strict rate limit by IP (credential guessing)
	signinHandler := &SigninHandler{
		AccountService: r.AccountService,
		TokenService:   r.TokenService,
	}
	r.Mux.Handle("POST /signin",
		httpx.Chain(signinHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /verify - strict rate limit by IP (OTP guessing)
	verifyHandler := &VerifyHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTokens() {
	// POST /token/verify - moderate rate limit (resource servers poll this)
	verifyHandler := &TokenVerifyHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /token/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /token/refresh - moderate rate limit
	refreshHandler := &TokenRefreshHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /token/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
