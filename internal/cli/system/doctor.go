package system

import (
	"fmt"
	"time"

	"github.com/ryancast1/reservations/internal/backup"
	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/keyring"
	"github.com/ryancast1/reservations/internal/migration"
	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/storage/sqlite"
	"github.com/ryancast1/reservations/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid (only if DB is reachable)
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Migrations complete (only if DB is reachable)
	if dbReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (database not reachable)\n")
	}

	// Check 4: Backups present (warning only, sqlite only)
	if _, ok := ctx.Store.(*sqlite.Store); ok {
		if err := checkBackupsPresent(ctx); err != nil {
			fmt.Printf("⚠ Backups present: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Backups present: OK\n")
		}
	} else {
		fmt.Printf("⊘ Backups present: SKIPPED (not a sqlite database)\n")
	}

	// Check 5: Settings readable (only if DB is reachable)
	if dbReachable {
		if _, err := ctx.Store.GetSettings(); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (database not reachable)\n")
	}

	// Check 6: Reservation integrity (only if DB is reachable)
	if dbReachable {
		if err := checkReservationIntegrity(ctx); err != nil {
			fmt.Printf("❌ Reservation integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Reservation integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Reservation integrity: SKIPPED (database not reachable)\n")
	}

	// Check 7: Double bookings (warning only, stored data may predate
	// conflict checking)
	if dbReachable {
		if err := checkDoubleBookings(ctx); err != nil {
			fmt.Printf("⚠ Double bookings: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Double bookings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Double bookings: SKIPPED (database not reachable)\n")
	}

	// Check 8: Clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	// Check 9: Keyring availability (warning only, gate falls back to open)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable, passcode gating is disabled\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	db, migrationFS, err := storeMigrationTarget(ctx)
	if err != nil {
		return err
	}
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	runner := migration.NewRunner(db, migrationFS)

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	db, migrationFS, err := storeMigrationTarget(ctx)
	if err != nil {
		return err
	}
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	runner := migration.NewRunner(db, migrationFS)

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", currentVersion, latestVersion)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'reservations backup create'")
	}
	return nil
}

// checkReservationIntegrity verifies the interval invariant and date
// formats on every stored reservation.
func checkReservationIntegrity(ctx *cli.Context) error {
	reservations, err := ctx.Store.GetAllReservations()
	if err != nil {
		return fmt.Errorf("failed to get reservations: %w", err)
	}

	ids := make(map[string]bool)
	for _, res := range reservations {
		if ids[res.ID] {
			return fmt.Errorf("duplicate reservation ID found: %s", res.ID)
		}
		ids[res.ID] = true

		if !utils.ValidateDateFormat(res.CheckIn) || !utils.ValidateDateFormat(res.CheckOut) {
			return fmt.Errorf("reservation %s has malformed dates: %q to %q", res.ID, res.CheckIn, res.CheckOut)
		}
		if res.CheckOut <= res.CheckIn {
			return fmt.Errorf("reservation %s has an empty or reversed interval: %s to %s", res.ID, res.CheckIn, res.CheckOut)
		}
		if res.Room != models.RoomAll && !res.Room.IsBookable() {
			return fmt.Errorf("reservation %s references unknown room %q", res.ID, res.Room)
		}
	}
	return nil
}

// checkDoubleBookings looks for same-room overlaps that slipped past
// conflict checking, typically via imported data.
func checkDoubleBookings(ctx *cli.Context) error {
	reservations, err := ctx.Store.GetAllReservations()
	if err != nil {
		return fmt.Errorf("failed to get reservations: %w", err)
	}

	for i := 0; i < len(reservations); i++ {
		for j := i + 1; j < len(reservations); j++ {
			a, b := reservations[i], reservations[j]
			if a.Room != b.Room || a.Room == models.RoomAll {
				continue
			}
			if models.Overlaps(a.CheckIn, a.CheckOut, b.CheckIn, b.CheckOut) {
				return fmt.Errorf("reservations %s and %s overlap in %s", a.ID, b.ID, a.Room)
			}
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
