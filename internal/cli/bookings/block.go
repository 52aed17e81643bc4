package bookings

import (
	"fmt"

	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/utils"
)

type BlockCmd struct {
	Start string `arg:"" help:"First blocked date (YYYY-MM-DD)."`
	End   string `arg:"" help:"Day the blockout ends, exclusive (YYYY-MM-DD)."`
}

func (c *BlockCmd) Validate() error {
	if !utils.ValidateDateFormat(c.Start) {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %s", c.Start)
	}
	if !utils.ValidateDateFormat(c.End) {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %s", c.End)
	}
	return nil
}

func (c *BlockCmd) Run(ctx *cli.Context) error {
	if err := ctx.Gate.Require(); err != nil {
		return err
	}

	res, err := ctx.Bookings.CreateBlockout(c.Start, c.End)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	fmt.Printf("Blocked all rooms from %s to %s\n", res.CheckIn, res.CheckOut)
	fmt.Printf("ID: %s\n", res.ID)
	return nil
}
