package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/juju/clock"
	"github.com/juju/errors"

	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/redis"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/db"
	"crowdfund/internal/telemetry"
)

// ServeCmd runs the HTTP API until the process receives SIGINT or SIGTERM.
type ServeCmd struct {
	SeedDemo bool  `help:"Fill the store with demo campaigns before serving."`
	SeedRand int64 `help:"Random seed for demo data." default:"1"`
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, env *Environment, logger *slog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Env, env.Stderr)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown", slog.Any("error", err))
		}
	}()

	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if c.SeedDemo {
		ids, err := db.Seed(ctx, repo, clock.WallClock.Now(), c.SeedRand)
		if err != nil {
			return err
		}
		logger.Info("demo data seeded", slog.Int("campaigns", len(ids)))
	}

	opts := []usecase.Option{
		usecase.WithClock(clock.WallClock),
		usecase.WithLogger(logger),
		usecase.WithRetry(cfg.Contribute.MaxTries, func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = cfg.Contribute.InitialInterval
			b.MaxInterval = cfg.Contribute.MaxInterval
			return b
		}),
	}
	if cfg.Redis.Enabled() {
		events, err := redis.NewEventPublisher(ctx, cfg.Redis, logger)
		if err != nil {
			return err
		}
		defer events.Close()
		opts = append(opts, usecase.WithEventPublisher(events))
		logger.Info("publishing ledger events", slog.String("channel", cfg.Redis.Channel))
	}
	svc := usecase.NewCampaignUseCase(repo, opts...)

	if cfg.Auth.Secret == "" {
		logger.Warn("AUTH_JWT_SECRET is empty, every write will be rejected")
	}
	handler := httpadapter.NewHandler(svc, httpadapter.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.Issuer), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return errors.Annotate(err, "http server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Annotate(err, "server shutdown")
	}
	logger.Info("server gracefully stopped")
	return nil
}
