package repository

import (
	"embed"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

const migrationsTable = "notification_schema_migrations"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending migration owned by this service. The
// consultation tables belong to the main backend and are not touched.
func Migrate(cfg PersistentConfig, logger *zap.Logger) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.MigrationURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	logger.Info("database migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))

	return nil
}

// MigrationURL is the connection URL form of the config understood by the
// migrate postgres driver.
func (c PersistentConfig) MigrationURL() string {
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)
	query.Set("x-migrations-table", migrationsTable)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: query.Encode(),
	}
	return u.String()
}
