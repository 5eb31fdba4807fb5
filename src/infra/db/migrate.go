package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedded embed.FS

// Migrations returns the embedded SQL migrations rooted at their directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// MigrationStatus describes one migration for `migrate status`.
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

func (p *Postgres) provider() (*goose.Provider, func() error, error) {
	sqlDB := stdlib.OpenDBFromPool(p.Pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, Migrations())
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, sqlDB.Close, nil
}

// MigrateUp applies all pending migrations.
func (p *Postgres) MigrateUp(ctx context.Context) error {
	provider, closeDB, err := p.provider()
	if err != nil {
		return err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		p.log.Info("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func (p *Postgres) MigrateDown(ctx context.Context) error {
	provider, closeDB, err := p.provider()
	if err != nil {
		return err
	}
	defer closeDB()

	r, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	if r != nil {
		p.log.Info("migration rolled back", "version", r.Source.Version)
	}
	return nil
}

// MigrationStatuses lists every embedded migration and whether it is applied.
func (p *Postgres) MigrationStatuses(ctx context.Context) ([]MigrationStatus, error) {
	provider, closeDB, err := p.provider()
	if err != nil {
		return nil, err
	}
	defer closeDB()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
