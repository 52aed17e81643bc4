package system

import (
	"path/filepath"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/gate"
	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/storage"
)

func setupTestDoctorDB(t *testing.T) (*cli.Context, func()) {
	gokeyring.MockInit()

	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	ctx := &cli.Context{
		Store: store,
		Gate:  gate.Open{},
	}

	cleanup := func() {
		store.Close()
	}

	return ctx, cleanup
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, cleanup := setupTestDoctorDB(t)
	defer cleanup()

	cmd := &DoctorCmd{}
	err := cmd.Run(ctx)

	// A fresh database passes every check; missing backups is a warning
	if err != nil {
		t.Errorf("doctor command failed on healthy database: %v", err)
	}
}

func TestDoctorCmd_DoubleBookingIsWarningOnly(t *testing.T) {
	ctx, cleanup := setupTestDoctorDB(t)
	defer cleanup()

	add := func(id, guest string, room models.Room, in, out string) {
		t.Helper()
		err := ctx.Store.AddReservation(models.Reservation{
			ID:        id,
			GuestName: guest,
			Room:      room,
			CheckIn:   in,
			CheckOut:  out,
		})
		if err != nil {
			t.Fatalf("failed to add reservation %s: %v", id, err)
		}
	}
	add("r1", "Dana", models.RoomMain, "2025-04-01", "2025-04-05")
	add("r2", "Evan", models.RoomMain, "2025-04-03", "2025-04-07")

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("doctor command should not fail on double bookings: %v", err)
	}
}

func TestDoctorCmd_BadDataFails(t *testing.T) {
	ctx, cleanup := setupTestDoctorDB(t)
	defer cleanup()

	err := ctx.Store.AddReservation(models.Reservation{
		ID:        "bad",
		GuestName: "Dana",
		Room:      models.RoomMain,
		CheckIn:   "2025-04-05",
		CheckOut:  "2025-04-01",
	})
	if err != nil {
		t.Fatalf("failed to add reservation: %v", err)
	}

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected doctor to fail on a reversed date range, got nil")
	}
}
