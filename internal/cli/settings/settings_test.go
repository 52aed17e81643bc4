package settings

import (
	"path/filepath"
	"testing"

	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := &cli.Context{
		Store: store,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		List: true,
	}

	err := cmd.Run(ctx)
	if err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_UpdateNotificationsEnabled(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	newValue := !settings.NotificationsEnabled

	cmd := &SettingsCmd{
		NotificationsEnabled: &newValue,
	}

	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings update failed: %v", err)
	}

	updated, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get updated settings: %v", err)
	}
	if updated.NotificationsEnabled != newValue {
		t.Errorf("expected NotificationsEnabled to be %v, got %v", newValue, updated.NotificationsEnabled)
	}
}

func TestSettingsCmd_UpdateNotificationAddresses(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	email := "owner@example.com"
	from := "bookings@example.com"
	cmd := &SettingsCmd{
		NotificationEmail: &email,
		NotificationFrom:  &from,
	}

	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings update failed: %v", err)
	}

	updated, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get updated settings: %v", err)
	}
	if updated.NotificationEmail != email {
		t.Errorf("expected NotificationEmail to be %q, got %q", email, updated.NotificationEmail)
	}
	if updated.NotificationFrom != from {
		t.Errorf("expected NotificationFrom to be %q, got %q", from, updated.NotificationFrom)
	}
}

func TestSettingsCmd_UpdateUnlockTTL(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	newValue := 60
	cmd := &SettingsCmd{
		UnlockTTLMin: &newValue,
	}

	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings update failed: %v", err)
	}

	updated, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get updated settings: %v", err)
	}
	if updated.UnlockTTLMin != newValue {
		t.Errorf("expected UnlockTTLMin to be %d, got %d", newValue, updated.UnlockTTLMin)
	}
}

func TestSettingsCmd_UpdateUnlockTTL_InvalidValue(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	zeroValue := 0
	cmd := &SettingsCmd{
		UnlockTTLMin: &zeroValue,
	}

	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for UnlockTTLMin = 0, got nil")
	}

	negativeValue := -5
	cmd = &SettingsCmd{
		UnlockTTLMin: &negativeValue,
	}

	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for UnlockTTLMin = -5, got nil")
	}
}
