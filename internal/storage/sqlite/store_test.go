package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	apperr "github.com/ryancast1/reservations/internal/errors"
	"github.com/ryancast1/reservations/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "reservations.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func addRes(t *testing.T, s *Store, id, guest string, room models.Room, checkIn, checkOut string) {
	t.Helper()
	err := s.AddReservation(models.Reservation{
		ID:        id,
		GuestName: guest,
		Room:      room,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		t.Fatalf("failed to add reservation %s: %v", id, err)
	}
}

func TestReservationCRUD(t *testing.T) {
	store := newTestStore(t)

	addRes(t, store, "r1", "Dana", models.RoomMain, "2025-03-01", "2025-03-05")

	got, err := store.GetReservation("r1")
	if err != nil {
		t.Fatalf("GetReservation failed: %v", err)
	}
	if got.GuestName != "Dana" || got.Room != models.RoomMain {
		t.Errorf("unexpected reservation: %+v", got)
	}
	if got.CreatedAt == "" {
		t.Error("expected CreatedAt to be set on insert")
	}

	got.GuestName = "Dana L."
	got.CheckOut = "2025-03-06"
	if err := store.UpdateReservation(got); err != nil {
		t.Fatalf("UpdateReservation failed: %v", err)
	}

	updated, err := store.GetReservation("r1")
	if err != nil {
		t.Fatal(err)
	}
	if updated.GuestName != "Dana L." || updated.CheckOut != "2025-03-06" {
		t.Errorf("update not persisted: %+v", updated)
	}

	if err := store.DeleteReservation("r1"); err != nil {
		t.Fatalf("DeleteReservation failed: %v", err)
	}

	if _, err := store.GetReservation("r1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestNotFoundDistinctFromRepositoryError(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetReservation("missing")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if apperr.IsRepository(err) {
		t.Error("NotFound must not be a RepositoryError")
	}

	if err := store.UpdateReservation(models.Reservation{ID: "missing", GuestName: "X", Room: models.RoomMain, CheckIn: "2025-01-01", CheckOut: "2025-01-02"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound on update of missing row, got %v", err)
	}
	if err := store.DeleteReservation("missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound on delete of missing row, got %v", err)
	}
}

func TestFindOverlapping(t *testing.T) {
	store := newTestStore(t)

	addRes(t, store, "main1", "Dana", models.RoomMain, "2025-03-01", "2025-03-05")
	addRes(t, store, "rm2", "Evan", models.RoomTwo, "2025-03-01", "2025-03-05")
	addRes(t, store, "blk", "Blocked", models.RoomAll, "2025-06-10", "2025-06-12")

	tests := []struct {
		name      string
		room      models.Room
		checkIn   string
		checkOut  string
		excludeID string
		wantIDs   []string
	}{
		{
			name:     "overlap same room",
			room:     models.RoomMain,
			checkIn:  "2025-03-04",
			checkOut: "2025-03-08",
			wantIDs:  []string{"main1"},
		},
		{
			name:     "adjacent is not overlap",
			room:     models.RoomMain,
			checkIn:  "2025-03-05",
			checkOut: "2025-03-08",
			wantIDs:  nil,
		},
		{
			name:     "other room does not match",
			room:     models.RoomThree,
			checkIn:  "2025-03-01",
			checkOut: "2025-03-05",
			wantIDs:  nil,
		},
		{
			name:     "blockout matches any room",
			room:     models.RoomTwo,
			checkIn:  "2025-06-11",
			checkOut: "2025-06-13",
			wantIDs:  []string{"blk"},
		},
		{
			name:      "self exclusion",
			room:      models.RoomMain,
			checkIn:   "2025-03-01",
			checkOut:  "2025-03-05",
			excludeID: "main1",
			wantIDs:   nil,
		},
		{
			name:      "self exclusion applies to blockouts too",
			room:      models.RoomTwo,
			checkIn:   "2025-06-10",
			checkOut:  "2025-06-12",
			excludeID: "blk",
			wantIDs:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.FindOverlapping(tt.room, tt.checkIn, tt.checkOut, tt.excludeID)
			if err != nil {
				t.Fatalf("FindOverlapping failed: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d matches, got %d (%+v)", len(tt.wantIDs), len(got), got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("match %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFindInRangeOrdering(t *testing.T) {
	store := newTestStore(t)

	addRes(t, store, "b", "Later", models.RoomMain, "2025-04-20", "2025-04-22")
	addRes(t, store, "a", "Earlier", models.RoomTwo, "2025-04-02", "2025-04-04")
	addRes(t, store, "straddle", "Straddler", models.RoomThree, "2025-03-28", "2025-04-02")
	addRes(t, store, "outside", "Outside", models.RoomMain, "2025-05-01", "2025-05-03")

	got, err := store.FindInRange("2025-04-01", "2025-05-01")
	if err != nil {
		t.Fatalf("FindInRange failed: %v", err)
	}

	wantOrder := []string{"straddle", "a", "b"}
	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d reservations, got %d", len(wantOrder), len(got))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	// Init seeds defaults
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if !settings.NotificationsEnabled {
		t.Error("expected notifications enabled by default")
	}

	settings.NotificationEmail = "owner@example.com"
	settings.NotificationsEnabled = false
	settings.UnlockTTLMin = 15
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.NotificationEmail != "owner@example.com" || got.NotificationsEnabled || got.UnlockTTLMin != 15 {
		t.Errorf("settings not round-tripped: %+v", got)
	}
}
