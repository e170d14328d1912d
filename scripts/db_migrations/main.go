package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/carson-networks/cashmind/internal/config"
	"github.com/carson-networks/cashmind/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "db_migrations",
		Usage: "apply the embedded ledger migrations",
		Action: func(c *cli.Context) error {
			return up(c)
		},
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply every pending migration (default)",
				Action: up,
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: down,
			},
			{
				Name:   "version",
				Usage:  "print the applied migration version",
				Action: version,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func newMigrator() (*migrate.Migrate, error) {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, fmt.Errorf("ProcessEnvironmentVariables: %w", err)
	}
	return storage.NewMigrator(env.PostgresURL())
}

func up(*cli.Context) error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	return migrateAndLog(m, m.Up)
}

func down(c *cli.Context) error {
	steps := c.Int("steps")
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	return migrateAndLog(m, func() error { return m.Steps(-steps) })
}

func version(*cli.Context) error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	current, dirty, err := storage.Version(m)
	if err != nil {
		return fmt.Errorf("m.Version: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"version": current,
		"dirty":   dirty,
	}).Info("Migration version")
	return nil
}

func migrateAndLog(m *migrate.Migrate, run func() error) error {
	preMigrationVersion, _, err := storage.Version(m)
	if err != nil {
		return fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	if err := run(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	postMigrationVersion, _, err := storage.Version(m)
	if err != nil {
		return fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
	return nil
}
