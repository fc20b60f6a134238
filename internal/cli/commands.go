package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"

	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/redis"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/db"
)

// MigrateCmd applies pending migrations.
type MigrateCmd struct{}

func (c *MigrateCmd) Run(cfg *config.Config, logger *slog.Logger) error {
	before, err := db.Migrate(cfg.Psql.Addr.String())
	if err != nil {
		return err
	}
	logger.Info("migrations applied", slog.Uint64("from_version", uint64(before)))
	return nil
}

// SeedCmd fills a PostgreSQL store with demo data. The in-memory store is
// seeded with serve --seed-demo instead.
type SeedCmd struct {
	Rand int64 `help:"Random seed for demo contributions." default:"1"`
}

func (c *SeedCmd) Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Store.Driver != configs.StorePostgres {
		return errors.Errorf("seed needs STORE_DRIVER=%s, got %q", configs.StorePostgres, cfg.Store.Driver)
	}
	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	ids, err := db.Seed(ctx, repo, clock.WallClock.Now(), c.Rand)
	if err != nil {
		return err
	}
	logger.Info("demo data seeded", slog.Any("campaign_ids", ids))
	return nil
}

// TokenCmd prints a signed bearer token for Subject.
type TokenCmd struct {
	Subject string        `arg:"" help:"Principal to put in the sub claim."`
	TTL     time.Duration `help:"Token lifetime. Defaults to AUTH_TOKEN_TTL."`
}

func (c *TokenCmd) Run(cfg *config.Config, env *Environment) error {
	if cfg.Auth.Secret == "" {
		return errors.New("AUTH_JWT_SECRET is not set")
	}
	if domain.Principal(c.Subject).IsAnonymous() {
		return errors.New("subject must not be empty")
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = cfg.Auth.TokenTTL
	}
	tok, err := httpadapter.IssueToken(cfg.Auth.Secret, cfg.Auth.Issuer, c.Subject, ttl, clock.WallClock.Now())
	if err != nil {
		return errors.Trace(err)
	}
	_, err = fmt.Fprintln(env.Stdout, tok)
	return err
}

// WatchCmd prints ledger events as JSON lines until interrupted.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx context.Context, cfg *config.Config, env *Environment, logger *slog.Logger) error {
	if !cfg.Redis.Enabled() {
		return errors.New("REDIS_ADDRESS is not set")
	}
	events, err := redis.NewEventPublisher(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer events.Close()

	enc := json.NewEncoder(env.Stdout)
	return events.Subscribe(ctx, func(e domain.LedgerEvent) {
		if err := enc.Encode(e); err != nil {
			logger.Warn("write event", slog.Any("error", err))
		}
	})
}
