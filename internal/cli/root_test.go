package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ryancast1/reservations/internal/constants"
	"github.com/ryancast1/reservations/internal/storage"
	"github.com/ryancast1/reservations/internal/storage/sqlite"
)

func TestPerformAutomaticBackupSQLite(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "reservations.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := &Context{Store: store}
	ctx.PerformAutomaticBackup()

	entries, err := os.ReadDir(filepath.Join(tempDir, constants.BackupDirName))
	if err != nil {
		t.Fatalf("expected backup directory after automatic backup: %v", err)
	}
	if len(entries) == 0 {
		t.Error("expected a backup file after automatic backup")
	}
}

func TestPerformAutomaticBackupSkipsPostgres(t *testing.T) {
	t.Chdir(t.TempDir())

	store := storage.NewPostgresStore("host=localhost dbname=reservations")
	ctx := &Context{Store: store}
	ctx.PerformAutomaticBackup()

	if _, err := os.Stat(constants.BackupDirName); !os.IsNotExist(err) {
		t.Errorf("automatic backup should be skipped for a non-file backend, stat err = %v", err)
	}
}
