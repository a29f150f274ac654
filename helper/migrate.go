package helper

import (
	"errors"
	"fmt"
	"hotelops/config"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// source
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DatabaseURL builds the migrate connection string for the write database.
func DatabaseURL(config *config.Config) string {
	write := config.DB.Postgres.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)

	if config.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     getDBName(config, write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func run(config *config.Config, action func(mig *migrate.Migrate) error) error {
	mig, err := migrate.New(migrationSource, DatabaseURL(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if sourceErr, dbErr := mig.Close(); sourceErr != nil || dbErr != nil {
			log.Warn().AnErr("source", sourceErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	if err = action(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Up applies every pending migration.
func Up(config *config.Config) error {
	if err := run(config, func(mig *migrate.Migrate) error { return mig.Up() }); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	log.Info().Msg("Database migrations completed successfully")

	return nil
}

// Down rolls back the latest migration.
func Down(config *config.Config) error {
	if err := run(config, func(mig *migrate.Migrate) error { return mig.Steps(-1) }); err != nil {
		return fmt.Errorf("error rolling back migrations: %w", err)
	}

	log.Info().Msg("Database migration rolled back successfully")

	return nil
}

// StepUp applies the next pending migration.
func StepUp(config *config.Config) error {
	if err := run(config, func(mig *migrate.Migrate) error { return mig.Steps(1) }); err != nil {
		return fmt.Errorf("error running migration: %w", err)
	}

	log.Info().Msg("Database migration applied successfully")

	return nil
}

// Drop rolls back every migration.
func Drop(config *config.Config) error {
	if err := run(config, func(mig *migrate.Migrate) error { return mig.Down() }); err != nil {
		return fmt.Errorf("error rolling back migrations: %w", err)
	}

	log.Info().Msg("Database migrations rolled back successfully")

	return nil
}
