package market

import (
	"embed"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5:// database driver
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending marketplace migrations. The migrations are
// embedded in the binary, so provisioning needs nothing but the DSN.
// Applying an already-provisioned schema is a no-op.
func Migrate(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "load embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateDSN(dsn))
	if err != nil {
		return errors.Wrap(err, errors.CodeConnect, "cannot open migration target")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, errors.CodeInternal, "apply migrations")
	}
	return nil
}

// migrateDSN rewrites a postgres:// DSN to the pgx5:// scheme that
// golang-migrate's pgx/v5 database driver registers.
func migrateDSN(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}
