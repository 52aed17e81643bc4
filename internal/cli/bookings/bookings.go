// Package bookings holds the reservation management commands.
package bookings

import (
	"fmt"

	"github.com/ryancast1/reservations/internal/models"
)

// describe names a reservation in confirmation and result messages.
func describe(res models.Reservation) string {
	if res.IsBlockout() {
		return fmt.Sprintf("blockout %s to %s", res.CheckIn, res.CheckOut)
	}
	return fmt.Sprintf("booking for %s (%s, %s to %s)",
		res.GuestName, res.Room, res.CheckIn, res.CheckOut)
}
