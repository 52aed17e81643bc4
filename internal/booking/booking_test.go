package booking

import (
	"errors"
	"sort"
	"testing"

	apperr "github.com/ryancast1/reservations/internal/errors"
	"github.com/ryancast1/reservations/internal/models"
)

// memStore is an in-memory Provider for exercising the service without a
// database. FindOverlapping mirrors the SQL predicate exactly.
type memStore struct {
	reservations map[string]models.Reservation
	settings     models.Settings
	failWith     error
	notFoundOnly bool
}

func newMemStore() *memStore {
	return &memStore{
		reservations: make(map[string]models.Reservation),
		settings:     models.Settings{NotificationsEnabled: true},
	}
}

func (m *memStore) Init() error  { return nil }
func (m *memStore) Load() error  { return nil }
func (m *memStore) Close() error { return nil }

func (m *memStore) GetSettings() (models.Settings, error) { return m.settings, nil }
func (m *memStore) SaveSettings(s models.Settings) error  { m.settings = s; return nil }

func (m *memStore) AddReservation(res models.Reservation) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.reservations[res.ID] = res
	return nil
}

func (m *memStore) GetReservation(id string) (models.Reservation, error) {
	if m.failWith != nil && !m.notFoundOnly {
		return models.Reservation{}, m.failWith
	}
	res, ok := m.reservations[id]
	if !ok {
		return models.Reservation{}, apperr.ErrNotFound
	}
	return res, nil
}

func (m *memStore) GetAllReservations() ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range m.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn < out[j].CheckIn })
	return out, nil
}

func (m *memStore) UpdateReservation(res models.Reservation) error {
	if _, ok := m.reservations[res.ID]; !ok {
		return apperr.ErrNotFound
	}
	m.reservations[res.ID] = res
	return nil
}

func (m *memStore) DeleteReservation(id string) error {
	if _, ok := m.reservations[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(m.reservations, id)
	return nil
}

func (m *memStore) FindOverlapping(room models.Room, checkIn, checkOut, excludeID string) ([]models.Reservation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.Reservation
	for _, r := range m.reservations {
		if r.ID == excludeID {
			continue
		}
		if r.Room != room && r.Room != models.RoomAll {
			continue
		}
		if models.Overlaps(r.CheckIn, r.CheckOut, checkIn, checkOut) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) FindInRange(start, end string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range m.reservations {
		if models.Overlaps(r.CheckIn, r.CheckOut, start, end) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn < out[j].CheckIn })
	return out, nil
}

func (m *memStore) GetConfigPath() string { return "" }

type recordingNotifier struct {
	sent []models.Reservation
	err  error
}

func (n *recordingNotifier) NotifyNewBooking(res models.Reservation) error {
	n.sent = append(n.sent, res)
	return n.err
}

func seed(t *testing.T, store *memStore, id, guest string, room models.Room, in, out string) {
	t.Helper()
	store.reservations[id] = models.Reservation{
		ID: id, GuestName: guest, Room: room, CheckIn: in, CheckOut: out,
	}
}

func TestHasConflict(t *testing.T) {
	store := newMemStore()
	seed(t, store, "main1", "Dana", models.RoomMain, "2025-03-01", "2025-03-05")
	seed(t, store, "blk", "Blocked", models.RoomAll, "2025-06-10", "2025-06-12")
	svc := New(store, nil)

	tests := []struct {
		name      string
		room      models.Room
		checkIn   string
		checkOut  string
		excludeID string
		want      bool
	}{
		{"direct overlap", models.RoomMain, "2025-03-03", "2025-03-07", "", true},
		{"containing interval", models.RoomMain, "2025-02-25", "2025-03-10", "", true},
		{"adjacency is not conflict", models.RoomMain, "2025-03-05", "2025-03-08", "", false},
		{"adjacency before is not conflict", models.RoomMain, "2025-02-25", "2025-03-01", "", false},
		{"different room is free", models.RoomTwo, "2025-03-01", "2025-03-05", "", false},
		{"blockout conflicts with any room", models.RoomTwo, "2025-06-11", "2025-06-13", "", true},
		{"blockout conflicts with third room", models.RoomThree, "2025-06-09", "2025-06-11", "", true},
		{"self exclusion", models.RoomMain, "2025-03-01", "2025-03-05", "main1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.HasConflict(tt.room, tt.checkIn, tt.checkOut, tt.excludeID)
			if err != nil {
				t.Fatalf("HasConflict failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasConflict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasConflictValidatesRange(t *testing.T) {
	svc := New(newMemStore(), nil)

	_, err := svc.HasConflict(models.RoomMain, "2025-05-10", "2025-05-10", "")
	if !apperr.IsValidation(err) {
		t.Errorf("equal dates: expected ValidationError, got %v", err)
	}

	_, err = svc.HasConflict(models.RoomMain, "2025-05-12", "2025-05-10", "")
	if !apperr.IsValidation(err) {
		t.Errorf("reversed dates: expected ValidationError, got %v", err)
	}

	_, err = svc.HasConflict(models.RoomMain, "", "2025-05-10", "")
	if !apperr.IsValidation(err) {
		t.Errorf("missing date: expected ValidationError, got %v", err)
	}
}

func TestHasConflictPropagatesRepositoryError(t *testing.T) {
	store := newMemStore()
	store.failWith = apperr.NewRepository("find-overlapping", errors.New("connection refused"))
	svc := New(store, nil)

	_, err := svc.HasConflict(models.RoomMain, "2025-03-01", "2025-03-05", "")
	if !apperr.IsRepository(err) {
		t.Errorf("expected RepositoryError, got %v", err)
	}
}

func TestCreateBooking(t *testing.T) {
	store := newMemStore()
	notifier := &recordingNotifier{}
	svc := New(store, notifier)

	res, err := svc.CreateBooking("Dana", models.RoomMain, "2025-03-01", "2025-03-05")
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if res.ID == "" {
		t.Error("expected a generated ID")
	}
	if res.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0].GuestName != "Dana" {
		t.Errorf("notification has wrong guest: %s", notifier.sent[0].GuestName)
	}

	// Same-day turnover: new booking starting on the previous checkout day
	if _, err := svc.CreateBooking("Evan", models.RoomMain, "2025-03-05", "2025-03-08"); err != nil {
		t.Errorf("same-day turnover should be allowed: %v", err)
	}

	// Overlapping booking is rejected
	if _, err := svc.CreateBooking("Faye", models.RoomMain, "2025-03-02", "2025-03-04"); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	// ALL is not a bookable room
	if _, err := svc.CreateBooking("Faye", models.RoomAll, "2025-03-10", "2025-03-12"); !apperr.IsValidation(err) {
		t.Errorf("expected ValidationError for ALL room, got %v", err)
	}
}

func TestCreateBookingNotificationFailureDoesNotFailWrite(t *testing.T) {
	store := newMemStore()
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	svc := New(store, notifier)

	res, err := svc.CreateBooking("Dana", models.RoomTwo, "2025-03-01", "2025-03-03")
	if err != nil {
		t.Fatalf("notification failure must not fail the booking: %v", err)
	}
	if _, ok := store.reservations[res.ID]; !ok {
		t.Error("reservation was not persisted")
	}
}

func TestCreateBookingNotificationsDisabled(t *testing.T) {
	store := newMemStore()
	store.settings.NotificationsEnabled = false
	notifier := &recordingNotifier{}
	svc := New(store, notifier)

	if _, err := svc.CreateBooking("Dana", models.RoomTwo, "2025-03-01", "2025-03-03"); err != nil {
		t.Fatal(err)
	}
	if len(notifier.sent) != 0 {
		t.Errorf("expected no notifications when disabled, got %d", len(notifier.sent))
	}
}

func TestCreateBlockout(t *testing.T) {
	store := newMemStore()
	notifier := &recordingNotifier{}
	svc := New(store, notifier)

	res, err := svc.CreateBlockout("2025-06-10", "2025-06-12")
	if err != nil {
		t.Fatalf("CreateBlockout failed: %v", err)
	}
	if res.Room != models.RoomAll {
		t.Errorf("expected ALL room, got %s", res.Room)
	}
	if res.GuestName != "Blocked" {
		t.Errorf("expected sentinel guest name, got %q", res.GuestName)
	}
	if len(notifier.sent) != 0 {
		t.Error("blockouts must not trigger notifications")
	}

	// Invalid range still rejected
	if _, err := svc.CreateBlockout("2025-06-12", "2025-06-12"); !apperr.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	store := newMemStore()
	seed(t, store, "r1", "Dana", models.RoomMain, "2025-03-01", "2025-03-05")
	seed(t, store, "r2", "Evan", models.RoomMain, "2025-03-10", "2025-03-12")
	svc := New(store, nil)

	// Saving with unchanged dates does not conflict with itself
	if _, err := svc.Update("r1", "Dana", models.RoomMain, "2025-03-01", "2025-03-05"); err != nil {
		t.Errorf("unchanged update should not conflict: %v", err)
	}

	// Moving onto another reservation conflicts
	if _, err := svc.Update("r1", "Dana", models.RoomMain, "2025-03-09", "2025-03-11"); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	// NotFound passes through
	if _, err := svc.Update("missing", "X", models.RoomMain, "2025-03-01", "2025-03-02"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Full-field replace
	updated, err := svc.Update("r2", "Evan M.", models.RoomTwo, "2025-03-11", "2025-03-13")
	if err != nil {
		t.Fatal(err)
	}
	if updated.GuestName != "Evan M." || updated.Room != models.RoomTwo || updated.CheckOut != "2025-03-13" {
		t.Errorf("update did not replace all fields: %+v", updated)
	}
}

func TestUpdateBlockoutSkipsConflictCheck(t *testing.T) {
	store := newMemStore()
	seed(t, store, "blk", "Blocked", models.RoomAll, "2025-06-10", "2025-06-12")
	seed(t, store, "r1", "Dana", models.RoomMain, "2025-06-15", "2025-06-18")
	svc := New(store, nil)

	// Extending the blockout over an existing booking is allowed
	res, err := svc.Update("blk", "", models.RoomAll, "2025-06-10", "2025-06-20")
	if err != nil {
		t.Fatalf("blockout update failed: %v", err)
	}
	if res.GuestName != "Blocked" {
		t.Errorf("blockout guest name should stay sentinel, got %q", res.GuestName)
	}
}
