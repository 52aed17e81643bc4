// Package calendar holds the month view command.
package calendar

import (
	"fmt"
	"time"

	"github.com/ryancast1/reservations/internal/calendar"
	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/logger"
)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		parsed, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month (expected YYYY-MM): %s", c.Month)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	reservations, err := ctx.Bookings.ForMonth(year, month)
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	projected := calendar.ProjectMonth(year, month, reservations)
	for _, w := range projected.Warnings {
		logger.Warn("Data integrity issue", "detail", w)
	}
	fmt.Print(projected.Render())
	return nil
}
