package cli

import (
	"fmt"
	"strings"

	"github.com/ryancast1/reservations/internal/backup"
	"github.com/ryancast1/reservations/internal/booking"
	"github.com/ryancast1/reservations/internal/gate"
	"github.com/ryancast1/reservations/internal/logger"
	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/storage"
	"github.com/ryancast1/reservations/internal/storage/sqlite"
	"github.com/ryancast1/reservations/internal/utils"
)

type Context struct {
	Store    storage.Provider
	Bookings *booking.Service
	Gate     gate.Validator
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// Only the sqlite backend is file-based, other backends are skipped.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.Create()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatReservation renders a reservation as a single display line.
func FormatReservation(res models.Reservation, showID bool) string {
	var b strings.Builder
	if res.IsBlockout() {
		fmt.Fprintf(&b, "  [blocked] %s to %s (all rooms)", res.CheckIn, res.CheckOut)
	} else {
		nights, _ := utils.Nights(res.CheckIn, res.CheckOut)
		fmt.Fprintf(&b, "  %s in %s: %s to %s (%d nights)",
			res.GuestName, res.Room, res.CheckIn, res.CheckOut, nights)
	}
	if showID {
		fmt.Fprintf(&b, " (ID: %s)", res.ID)
	}
	return b.String()
}

// FormatReservationDetail renders the multi-line detail view used by the
// show command.
func FormatReservationDetail(res models.Reservation) string {
	var b strings.Builder
	if res.IsBlockout() {
		b.WriteString("Blockout (all rooms)\n")
	} else {
		fmt.Fprintf(&b, "Guest:      %s\n", res.GuestName)
		fmt.Fprintf(&b, "Room:       %s\n", res.Room)
	}
	fmt.Fprintf(&b, "Check-in:   %s\n", utils.FormatHuman(res.CheckIn))
	fmt.Fprintf(&b, "Check-out:  %s\n", utils.FormatHuman(res.CheckOut))
	if nights, err := utils.Nights(res.CheckIn, res.CheckOut); err == nil {
		fmt.Fprintf(&b, "Nights:     %d\n", nights)
	}
	fmt.Fprintf(&b, "ID:         %s\n", res.ID)
	if res.CreatedAt != "" {
		fmt.Fprintf(&b, "Created:    %s\n", res.CreatedAt)
	}
	return b.String()
}
