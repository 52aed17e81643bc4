// Package calendar projects a set of reservations onto a month grid for
// display. Projection is a pure function of its inputs; it never touches
// storage.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/ryancast1/reservations/internal/constants"
	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/utils"
)

// Status describes a room's occupancy on a single day.
type Status int

const (
	StatusNone Status = iota
	StatusCheckIn
	StatusCheckOut
	StatusStaying
)

// BlockStatus describes whether a day falls under an all-rooms blockout.
type BlockStatus int

const (
	BlockNone BlockStatus = iota
	BlockCheckIn
	BlockCheckOut
	BlockActive
)

// RoomDay is the rendered state of one room on one day.
type RoomDay struct {
	Status    Status
	GuestName string
	// ShowLabel is set on the check-in day and on the first visible
	// day of a stay that began before the rendered month. It is never
	// set on the check-out day.
	ShowLabel bool
}

// Cell is one day slot in the month grid. Padding cells outside the month
// have InMonth false and carry no date or status.
type Cell struct {
	Date    string
	Day     int
	InMonth bool
	Rooms   map[models.Room]RoomDay
	Blocked BlockStatus
}

// IsBlocked reports whether per-room rendering is suppressed for this
// cell. Any blockout contact, including its check-out day, suppresses the
// rooms; the per-room data is still populated underneath.
func (c Cell) IsBlocked() bool {
	return c.Blocked != BlockNone
}

// Tooltip summarizes the cell's occupancy, one line per occupied room in
// room enumeration order. Blocked cells show only the blocked title.
func (c Cell) Tooltip() string {
	if c.IsBlocked() {
		return constants.BlockedGuestName
	}
	var lines []string
	for _, room := range models.BookableRooms {
		rd, ok := c.Rooms[room]
		if !ok || rd.Status == StatusNone || rd.GuestName == "" {
			continue
		}
		var verb string
		switch rd.Status {
		case StatusCheckIn:
			verb = "arrives"
		case StatusCheckOut:
			verb = "departs"
		default:
			verb = "staying"
		}
		lines = append(lines, fmt.Sprintf("%s %s (%s)", rd.GuestName, verb, room))
	}
	return strings.Join(lines, "\n")
}

// Month is a projected calendar month. Cells is padded to full weeks
// starting on Sunday, so len(Cells) is always a multiple of 7.
type Month struct {
	Year  int
	Month time.Month
	Cells []Cell
	// Warnings lists data-integrity problems found while projecting,
	// such as two reservations occupying the same room on overlapping
	// dates. The grid is still rendered best-effort with the first
	// match winning.
	Warnings []string
}

// ProjectMonth computes the display grid for the given month from a
// snapshot of reservations. Reservations outside the month are ignored
// except where their span reaches into it.
func ProjectMonth(year int, month time.Month, reservations []models.Reservation) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	firstOfMonth := utils.FormatDate(first)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	firstWeekday := int(first.Weekday())

	totalCells := ((firstWeekday + daysInMonth + 6) / 7) * 7

	m := Month{
		Year:     year,
		Month:    month,
		Cells:    make([]Cell, totalCells),
		Warnings: findDoubleBookings(reservations),
	}

	for i := range m.Cells {
		day := i - firstWeekday + 1
		if day < 1 || day > daysInMonth {
			continue
		}
		date := utils.FormatDate(first.AddDate(0, 0, day-1))
		cell := Cell{
			Date:    date,
			Day:     day,
			InMonth: true,
			Rooms:   make(map[models.Room]RoomDay, len(models.BookableRooms)),
			Blocked: blockStatusFor(date, reservations),
		}
		for _, room := range models.BookableRooms {
			cell.Rooms[room] = roomDayFor(date, firstOfMonth, room, reservations)
		}
		m.Cells[i] = cell
	}
	return m
}

// roomDayFor derives the status of one room on one date. The first
// matching reservation wins; overlapping stored data is reported through
// Month.Warnings rather than resolved here.
func roomDayFor(date, firstOfMonth string, room models.Room, reservations []models.Reservation) RoomDay {
	for _, res := range reservations {
		if res.Room != room {
			continue
		}
		switch {
		case date == res.CheckIn:
			return RoomDay{Status: StatusCheckIn, GuestName: res.GuestName, ShowLabel: true}
		case date == res.CheckOut:
			return RoomDay{Status: StatusCheckOut, GuestName: res.GuestName}
		case res.CheckIn < date && date < res.CheckOut:
			firstVisible := utils.MaxDate(res.CheckIn, firstOfMonth)
			return RoomDay{Status: StatusStaying, GuestName: res.GuestName, ShowLabel: date == firstVisible}
		}
	}
	return RoomDay{}
}

func blockStatusFor(date string, reservations []models.Reservation) BlockStatus {
	for _, res := range reservations {
		if res.Room != models.RoomAll {
			continue
		}
		switch {
		case date == res.CheckIn:
			return BlockCheckIn
		case date == res.CheckOut:
			return BlockCheckOut
		case res.CheckIn < date && date < res.CheckOut:
			return BlockActive
		}
	}
	return BlockNone
}

// findDoubleBookings scans the reservation set for same-room overlaps,
// which the write path should have prevented but imported data can still
// contain.
func findDoubleBookings(reservations []models.Reservation) []string {
	var warnings []string
	for i := 0; i < len(reservations); i++ {
		for j := i + 1; j < len(reservations); j++ {
			a, b := reservations[i], reservations[j]
			if a.Room != b.Room || a.Room == models.RoomAll {
				continue
			}
			if models.Overlaps(a.CheckIn, a.CheckOut, b.CheckIn, b.CheckOut) {
				warnings = append(warnings, fmt.Sprintf(
					"double booking in %s: %q [%s, %s) overlaps %q [%s, %s)",
					a.Room, a.GuestName, a.CheckIn, a.CheckOut, b.GuestName, b.CheckIn, b.CheckOut))
			}
		}
	}
	return warnings
}

// Title returns the month heading, e.g. "April 2025".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}
