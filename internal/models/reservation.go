package models

import (
	"strings"

	apperr "github.com/ryancast1/reservations/internal/errors"
)

// Room identifies a bookable room, or the special RoomAll overlay which
// blocks every room for its span.
type Room string

const (
	RoomMain  Room = "Main Guest Room"
	RoomTwo   Room = "Guest Room 2"
	RoomThree Room = "Guest Room 3"
	RoomAll   Room = "ALL"
)

// BookableRooms lists the rooms a guest can actually book, in display order.
// RoomAll is deliberately absent: it exists only as a blockout marker.
var BookableRooms = []Room{RoomMain, RoomTwo, RoomThree}

// ShortLabels maps rooms to the compact labels used in calendar legends.
var ShortLabels = map[Room]string{
	RoomMain:  "Main",
	RoomTwo:   "Rm 2",
	RoomThree: "Rm 3",
}

// IsBookable reports whether r is one of the guest-bookable rooms.
func (r Room) IsBookable() bool {
	for _, b := range BookableRooms {
		if r == b {
			return true
		}
	}
	return false
}

// ParseRoom resolves user input to a Room. It accepts the full room name,
// the short label, or "all" (case-insensitive).
func ParseRoom(s string) (Room, error) {
	in := strings.TrimSpace(s)
	if strings.EqualFold(in, string(RoomAll)) {
		return RoomAll, nil
	}
	for _, r := range BookableRooms {
		if strings.EqualFold(in, string(r)) || strings.EqualFold(in, ShortLabels[r]) {
			return r, nil
		}
	}
	return "", apperr.NewValidation(apperr.KindUnknownRoom, s)
}

// Reservation is a half-open date interval [CheckIn, CheckOut) tagged with a
// room. Dates are YYYY-MM-DD strings; lexicographic comparison is date-order
// correct for that format, so no time.Time parsing happens on the hot paths.
// A checkout day is not occupied, which permits same-day turnover.
type Reservation struct {
	ID        string `json:"id"`
	GuestName string `json:"guest_name"`
	Room      Room   `json:"room"`
	CheckIn   string `json:"check_in"` // YYYY-MM-DD
	CheckOut  string `json:"check_out"`
	CreatedAt string `json:"created_at,omitempty"` // RFC3339, informational only
}

// IsBlockout reports whether the reservation is an all-rooms blockout.
func (r Reservation) IsBlockout() bool {
	return r.Room == RoomAll
}

// Validate enforces the interval invariant and required fields. CheckOut must
// be strictly later than CheckIn; a zero-length interval is invalid.
func (r Reservation) Validate() error {
	if r.CheckIn == "" || r.CheckOut == "" {
		return apperr.NewValidation(apperr.KindMissingFields, "check-in and check-out are required")
	}
	if r.Room == "" {
		return apperr.NewValidation(apperr.KindMissingFields, "room is required")
	}
	if !r.IsBlockout() && strings.TrimSpace(r.GuestName) == "" {
		return apperr.NewValidation(apperr.KindMissingFields, "guest name is required")
	}
	if r.CheckOut <= r.CheckIn {
		return apperr.NewValidation(apperr.KindInvalidDateRange, "check-out must be after check-in")
	}
	return nil
}

// Overlaps reports whether two half-open intervals intersect. Intervals that
// merely touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}
