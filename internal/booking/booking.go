// Package booking implements the reservation write paths and the conflict
// check they share. Every operation is a sequential check-then-act against
// the repository snapshot; there is no transactional guarantee between the
// check and the act. A conflicting write from another session in that window
// is an accepted race and the last writer wins.
package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ryancast1/reservations/internal/constants"
	apperr "github.com/ryancast1/reservations/internal/errors"
	"github.com/ryancast1/reservations/internal/logger"
	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/storage"
)

// ErrConflict is returned when a candidate interval overlaps an existing
// reservation or blockout on the relevant room(s).
var ErrConflict = errors.New("room is already booked for those dates")

// Notifier receives new-booking notifications. Failures are surfaced as a
// logged warning only; they never roll back or block the reservation write.
type Notifier interface {
	NotifyNewBooking(res models.Reservation) error
}

type Service struct {
	store    storage.Provider
	notifier Notifier
}

// New creates a booking service. notifier may be nil to disable
// notifications entirely.
func New(store storage.Provider, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

// HasConflict reports whether [checkIn, checkOut) on the given room overlaps
// any stored reservation or all-rooms blockout. Two intervals [a1,a2) and
// [b1,b2) overlap iff a1 < b2 && b1 < a2; the strict comparison makes a
// reservation ending exactly when the candidate begins a non-conflict, which
// is what permits same-day turnover. excludeID removes a reservation from
// both the room-specific and the blockout results so an edit never conflicts
// with itself. Read-only; repository errors propagate unchanged.
func (s *Service) HasConflict(room models.Room, checkIn, checkOut, excludeID string) (bool, error) {
	if checkIn == "" || checkOut == "" {
		return false, apperr.NewValidation(apperr.KindMissingFields, "check-in and check-out are required")
	}
	if checkOut <= checkIn {
		return false, apperr.NewValidation(apperr.KindInvalidDateRange, "check-out must be after check-in")
	}

	matches, err := s.store.FindOverlapping(room, checkIn, checkOut, excludeID)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// CreateBooking validates and stores a guest reservation, then notifies
// best-effort.
func (s *Service) CreateBooking(guestName string, room models.Room, checkIn, checkOut string) (models.Reservation, error) {
	if !room.IsBookable() {
		return models.Reservation{}, apperr.NewValidation(apperr.KindUnknownRoom, string(room))
	}

	res := models.Reservation{
		ID:        uuid.New().String(),
		GuestName: guestName,
		Room:      room,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := res.Validate(); err != nil {
		return models.Reservation{}, err
	}

	conflict, err := s.HasConflict(room, checkIn, checkOut, "")
	if err != nil {
		return models.Reservation{}, err
	}
	if conflict {
		return models.Reservation{}, ErrConflict
	}

	if err := s.store.AddReservation(res); err != nil {
		return models.Reservation{}, err
	}

	s.notify(res)
	return res, nil
}

// CreateBlockout stores an all-rooms blockout. Blockouts are not
// conflict-checked against guest bookings on creation; the owner may block
// dates that already hold reservations.
func (s *Service) CreateBlockout(checkIn, checkOut string) (models.Reservation, error) {
	res := models.Reservation{
		ID:        uuid.New().String(),
		GuestName: constants.BlockedGuestName,
		Room:      models.RoomAll,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := res.Validate(); err != nil {
		return models.Reservation{}, err
	}

	if err := s.store.AddReservation(res); err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}

// Update replaces every mutable field of the identified reservation. The
// conflict check excludes the reservation's own ID on both the room-specific
// and blockout sides, so saving with unchanged dates never conflicts.
// Blockout records skip the conflict check.
func (s *Service) Update(id, guestName string, room models.Room, checkIn, checkOut string) (models.Reservation, error) {
	existing, err := s.store.GetReservation(id)
	if err != nil {
		return models.Reservation{}, err
	}

	updated := models.Reservation{
		ID:        id,
		GuestName: guestName,
		Room:      room,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		CreatedAt: existing.CreatedAt,
	}
	if updated.IsBlockout() {
		updated.GuestName = constants.BlockedGuestName
	}
	if err := updated.Validate(); err != nil {
		return models.Reservation{}, err
	}

	if !updated.IsBlockout() {
		conflict, err := s.HasConflict(room, checkIn, checkOut, id)
		if err != nil {
			return models.Reservation{}, err
		}
		if conflict {
			return models.Reservation{}, ErrConflict
		}
	}

	if err := s.store.UpdateReservation(updated); err != nil {
		return models.Reservation{}, err
	}
	return updated, nil
}

// Delete removes a reservation by ID.
func (s *Service) Delete(id string) error {
	return s.store.DeleteReservation(id)
}

// Get returns a single reservation.
func (s *Service) Get(id string) (models.Reservation, error) {
	return s.store.GetReservation(id)
}

// List returns all reservations ordered by check-in ascending.
func (s *Service) List() ([]models.Reservation, error) {
	return s.store.GetAllReservations()
}

// ForMonth returns the reservations intersecting the given month.
func (s *Service) ForMonth(year int, month time.Month) ([]models.Reservation, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return s.store.FindInRange(
		start.Format(constants.DateFormat),
		end.Format(constants.DateFormat),
	)
}

func (s *Service) notify(res models.Reservation) {
	if s.notifier == nil || res.IsBlockout() {
		return
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		logger.Warn("Could not load settings for booking notification", "error", err)
		return
	}
	if !settings.NotificationsEnabled {
		return
	}

	if err := s.notifier.NotifyNewBooking(res); err != nil {
		logger.Warn("Booking notification failed",
			"guest", res.GuestName,
			"room", string(res.Room),
			"error", err)
	}
}
