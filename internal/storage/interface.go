package storage

import "github.com/ryancast1/reservations/internal/models"

// Provider is the reservation repository. Implementations return
// errors.ErrNotFound when a requested reservation does not exist and wrap
// every other storage failure in a RepositoryError. All calls are blocking;
// callers issue them sequentially and there is no transactional guarantee
// across a conflict check and the write that follows it (the accepted
// check-then-act race, last writer wins).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Reservations
	AddReservation(models.Reservation) error
	GetReservation(id string) (models.Reservation, error)
	// GetAllReservations returns every reservation ordered by check-in ascending.
	GetAllReservations() ([]models.Reservation, error)
	// UpdateReservation replaces guest name, room and both dates of the
	// identified reservation. Partial patches are not supported.
	UpdateReservation(models.Reservation) error
	DeleteReservation(id string) error

	// FindOverlapping returns reservations whose half-open interval overlaps
	// [checkIn, checkOut) on the given room, including all-rooms blockouts.
	// excludeID, when non-empty, removes that reservation from consideration
	// so an edit never conflicts with itself.
	FindOverlapping(room models.Room, checkIn, checkOut, excludeID string) ([]models.Reservation, error)
	// FindInRange returns reservations intersecting [start, end), ordered by
	// check-in ascending.
	FindInRange(start, end string) ([]models.Reservation, error)

	// Utils
	GetConfigPath() string
}
