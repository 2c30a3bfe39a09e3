// Package app wires configuration, storage, services and the HTTP surface
// into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kamrul-CSE-official/ksa-backend/internal/adapter/postgres"
	issuerepo "github.com/kamrul-CSE-official/ksa-backend/internal/adapter/postgres/issue"
	reactionrepo "github.com/kamrul-CSE-official/ksa-backend/internal/adapter/postgres/reaction"
	reviewrepo "github.com/kamrul-CSE-official/ksa-backend/internal/adapter/postgres/review"
	solutionrepo "github.com/kamrul-CSE-official/ksa-backend/internal/adapter/postgres/solution"
	userrepo "github.com/kamrul-CSE-official/ksa-backend/internal/adapter/postgres/user"
	"github.com/kamrul-CSE-official/ksa-backend/internal/auth"
	"github.com/kamrul-CSE-official/ksa-backend/internal/config"
	"github.com/kamrul-CSE-official/ksa-backend/internal/refcodec"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/issue"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/reaction"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/stage"
	"github.com/kamrul-CSE-official/ksa-backend/internal/transport/middleware"
	"github.com/kamrul-CSE-official/ksa-backend/internal/transport/rest"
	"github.com/kamrul-CSE-official/ksa-backend/pkg/idgen"
)

// Run loads configuration, connects to the database and serves the API
// until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("codec_mode", cfg.Codec.Mode),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler, err := newHandler(cfg, logger, pool, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// newHandler builds repositories, services and the router on top of pool.
func newHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, limiter *middleware.RateLimiter) (http.Handler, error) {
	codec, err := refcodec.New(cfg.Codec.Secret, refcodec.Mode(cfg.Codec.Mode))
	if err != nil {
		return nil, err
	}
	ids, err := idgen.New(cfg.Snowflake.Node)
	if err != nil {
		return nil, err
	}

	retrier := fetch.New(logger, fetch.Policy{
		MaxRetries:      cfg.Fetch.MaxRetries,
		InitialInterval: cfg.Fetch.InitialInterval,
		MaxInterval:     cfg.Fetch.MaxInterval,
	})
	tx := postgres.NewTxManager(pool)

	solutions := solutionrepo.New(pool)
	reactionSvc := reaction.NewService(logger, reactionrepo.New(pool), tx)
	stageSvc := stage.NewService(logger, solutions, retrier)
	issueSvc := issue.NewService(logger,
		issuerepo.New(pool),
		solutions,
		reviewrepo.New(pool),
		userrepo.New(pool),
		reactionSvc,
		stageSvc,
		codec,
		ids,
		tx,
		retrier,
	)

	return newRouter(routerDeps{
		cfg:       cfg,
		logger:    logger,
		issues:    rest.NewIssueHandler(issueSvc, logger),
		health:    rest.NewHealthHandler(pool, BuildVersion()),
		validator: auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		limiter:   limiter,
	}), nil
}
