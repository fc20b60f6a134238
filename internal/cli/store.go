package cli

import (
	"context"
	"log/slog"

	"github.com/juju/errors"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// openStore returns the registry selected by cfg.Store and a function that
// releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.CampaignRepository, func(), error) {
	switch cfg.Store.Driver {
	case configs.StorePostgres:
		if cfg.Psql.RunMigrations {
			before, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, nil, errors.Annotate(err, "migrate")
			}
			logger.Info("migrations applied", slog.Uint64("from_version", uint64(before)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, errors.Annotate(err, "database connection")
		}
		logger.Info("using postgres store", slog.String("host", cfg.Psql.Addr.Host))
		return postgres.NewCampaignRepository(pool), pool.Close, nil
	default:
		logger.Info("using in-memory store")
		return memory.NewCampaignRepository(), func() {}, nil
	}
}
