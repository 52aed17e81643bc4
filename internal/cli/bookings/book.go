package bookings

import (
	"errors"
	"fmt"

	"github.com/ryancast1/reservations/internal/booking"
	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/utils"
)

type BookCmd struct {
	Guest    string `arg:"" help:"Guest name."`
	Room     string `short:"r" help:"Room name or short label (Main | 'Rm 2' | 'Rm 3')." required:""`
	CheckIn  string `short:"i" help:"Check-in date (YYYY-MM-DD)." required:""`
	CheckOut string `short:"o" help:"Check-out date (YYYY-MM-DD)." required:""`
}

func (c *BookCmd) Validate() error {
	if !utils.ValidateDateFormat(c.CheckIn) {
		return fmt.Errorf("invalid check-in date (expected YYYY-MM-DD): %s", c.CheckIn)
	}
	if !utils.ValidateDateFormat(c.CheckOut) {
		return fmt.Errorf("invalid check-out date (expected YYYY-MM-DD): %s", c.CheckOut)
	}
	return nil
}

func (c *BookCmd) Run(ctx *cli.Context) error {
	room, err := models.ParseRoom(c.Room)
	if err != nil {
		return err
	}
	if room == models.RoomAll {
		return fmt.Errorf("use 'reservations block' to block out all rooms")
	}

	res, err := ctx.Bookings.CreateBooking(c.Guest, room, c.CheckIn, c.CheckOut)
	if err != nil {
		if errors.Is(err, booking.ErrConflict) {
			return fmt.Errorf("%s is already booked between %s and %s", room, c.CheckIn, c.CheckOut)
		}
		return err
	}

	ctx.PerformAutomaticBackup()

	nights, _ := utils.Nights(res.CheckIn, res.CheckOut)
	fmt.Printf("Booked %s for %s, %s to %s (%d nights)\n",
		res.Room, res.GuestName, res.CheckIn, res.CheckOut, nights)
	fmt.Printf("ID: %s\n", res.ID)
	return nil
}
