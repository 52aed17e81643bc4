package bookings

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ryancast1/reservations/internal/cli"
)

type DeleteCmd struct {
	ID  string `arg:"" help:"Reservation ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Gate.Require(); err != nil {
		return err
	}

	res, err := ctx.Bookings.Get(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %s?", describe(res))).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Bookings.Delete(c.ID); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	fmt.Printf("Deleted %s\n", describe(res))
	return nil
}
