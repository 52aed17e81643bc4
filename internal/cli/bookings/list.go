package bookings

import (
	"fmt"

	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/utils"
)

type ListCmd struct {
	Room     string `short:"r" help:"Only show reservations for this room."`
	Upcoming bool   `short:"u" help:"Only show reservations that have not ended yet."`
	ShowIDs  bool   `help:"Show reservation IDs." name:"show-ids"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var roomFilter models.Room
	if c.Room != "" {
		room, err := models.ParseRoom(c.Room)
		if err != nil {
			return err
		}
		roomFilter = room
	}

	reservations, err := ctx.Bookings.List()
	if err != nil {
		return fmt.Errorf("failed to get reservations: %w", err)
	}

	today := utils.Today()
	var shown int
	for _, res := range reservations {
		if roomFilter != "" && res.Room != roomFilter {
			continue
		}
		if c.Upcoming && res.CheckOut <= today {
			continue
		}
		if shown == 0 {
			fmt.Println("Reservations:")
		}
		fmt.Println(cli.FormatReservation(res, c.ShowIDs))
		shown++
	}

	if shown == 0 {
		fmt.Println("No reservations found")
	}
	return nil
}
