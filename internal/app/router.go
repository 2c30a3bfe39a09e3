package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kamrul-CSE-official/ksa-backend/internal/config"
	"github.com/kamrul-CSE-official/ksa-backend/internal/transport/middleware"
	"github.com/kamrul-CSE-official/ksa-backend/internal/transport/rest"
	"github.com/kamrul-CSE-official/ksa-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (ctxutil.Principal, error)
}

type routerDeps struct {
	cfg       *config.Config
	logger    *slog.Logger
	issues    *rest.IssueHandler
	health    *rest.HealthHandler
	validator tokenValidator
	limiter   *middleware.RateLimiter
}

// newRouter assembles the middleware chain and routes. Health checks sit outside
// authentication and rate limiting.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.logger))
	r.Use(middleware.RequestID)

	d.health.Routes(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS(d.cfg.CORS))
		r.Use(middleware.Auth(d.validator, d.logger))
		r.Use(middleware.Logger(d.logger))
		if d.cfg.RateLimit.Enabled {
			r.Use(d.limiter.Limit(d.cfg.RateLimit.RequestsPerMin))
		}
		r.Route("/api", d.issues.Routes)
	})

	return r
}
