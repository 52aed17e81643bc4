package system

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/migration"
	"github.com/ryancast1/reservations/internal/storage/postgres"
	"github.com/ryancast1/reservations/internal/storage/sqlite"
	"github.com/ryancast1/reservations/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	defer ctx.Store.Close()

	db, migrationFS, err := storeMigrationTarget(ctx)
	if err != nil {
		return err
	}

	runner := migration.NewRunner(db, migrationFS)
	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}

// storeMigrationTarget resolves the backend-specific connection and
// migration set for the configured store.
func storeMigrationTarget(ctx *cli.Context) (*sql.DB, fs.FS, error) {
	switch store := ctx.Store.(type) {
	case *sqlite.Store:
		sub, err := fs.Sub(migrations.FS, "sqlite")
		if err != nil {
			return nil, nil, err
		}
		return store.GetDB(), sub, nil
	case *postgres.Store:
		sub, err := fs.Sub(migrations.FS, "postgres")
		if err != nil {
			return nil, nil, err
		}
		return store.GetDB(), sub, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage backend")
	}
}
