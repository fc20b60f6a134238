package db

import (
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/juju/errors"

	"crowdfund/db/migrations"
)

// ErrDirty reports a schema left half-applied by an earlier failed run.
const ErrDirty = errors.ConstError("database is in dirty state")

// Migrate brings the schema at addr to migrations.Version. It returns the
// version found before migrating.
func Migrate(addr string) (uint, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, errors.Trace(err)
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return 0, errors.Annotate(err, "open migrations")
	}
	defer mg.Close()

	before, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, errors.Trace(err)
	}
	if dirty {
		return before, errors.Annotatef(ErrDirty, "version %d", before)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return before, errors.Annotatef(err, "migrate to version %d", migrations.Version)
	}
	return before, nil
}
