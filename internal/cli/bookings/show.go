package bookings

import (
	"fmt"

	"github.com/ryancast1/reservations/internal/cli"
)

type ShowCmd struct {
	ID string `arg:"" help:"Reservation ID."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	res, err := ctx.Bookings.Get(c.ID)
	if err != nil {
		return err
	}
	fmt.Print(cli.FormatReservationDetail(res))
	return nil
}
