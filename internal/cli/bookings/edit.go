package bookings

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ryancast1/reservations/internal/booking"
	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/utils"
)

type EditCmd struct {
	ID       string  `arg:"" help:"Reservation ID."`
	Guest    *string `help:"New guest name."`
	Room     *string `short:"r" help:"New room name or short label."`
	CheckIn  *string `short:"i" help:"New check-in date (YYYY-MM-DD)."`
	CheckOut *string `short:"o" help:"New check-out date (YYYY-MM-DD)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Gate.Require(); err != nil {
		return err
	}

	res, err := ctx.Bookings.Get(c.ID)
	if err != nil {
		return err
	}

	guest := res.GuestName
	room := res.Room
	checkIn := res.CheckIn
	checkOut := res.CheckOut

	if c.Guest == nil && c.Room == nil && c.CheckIn == nil && c.CheckOut == nil {
		// No flags given, fall back to the interactive form
		if err := runEditForm(&guest, &room, &checkIn, &checkOut, res.IsBlockout()); err != nil {
			return err
		}
	} else {
		if c.Guest != nil {
			guest = *c.Guest
		}
		if c.Room != nil {
			parsed, err := models.ParseRoom(*c.Room)
			if err != nil {
				return err
			}
			room = parsed
		}
		if c.CheckIn != nil {
			if !utils.ValidateDateFormat(*c.CheckIn) {
				return fmt.Errorf("invalid check-in date (expected YYYY-MM-DD): %s", *c.CheckIn)
			}
			checkIn = *c.CheckIn
		}
		if c.CheckOut != nil {
			if !utils.ValidateDateFormat(*c.CheckOut) {
				return fmt.Errorf("invalid check-out date (expected YYYY-MM-DD): %s", *c.CheckOut)
			}
			checkOut = *c.CheckOut
		}
	}

	updated, err := ctx.Bookings.Update(c.ID, guest, room, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, booking.ErrConflict) {
			return fmt.Errorf("%s is already booked between %s and %s", room, checkIn, checkOut)
		}
		return err
	}

	ctx.PerformAutomaticBackup()

	fmt.Println("Updated reservation:")
	fmt.Println(cli.FormatReservation(updated, true))
	return nil
}

func runEditForm(guest *string, room *models.Room, checkIn, checkOut *string, isBlockout bool) error {
	dateField := func(title string, value *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			Value(value).
			Validate(func(s string) error {
				if !utils.ValidateDateFormat(s) {
					return fmt.Errorf("expected YYYY-MM-DD")
				}
				return nil
			})
	}

	fields := []huh.Field{}
	if !isBlockout {
		roomStr := string(*room)
		fields = append(fields,
			huh.NewInput().
				Title("Guest name").
				Value(guest).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("guest name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Room").
				Options(
					huh.NewOption(string(models.RoomMain), string(models.RoomMain)),
					huh.NewOption(string(models.RoomTwo), string(models.RoomTwo)),
					huh.NewOption(string(models.RoomThree), string(models.RoomThree)),
				).
				Value(&roomStr),
		)
		defer func() { *room = models.Room(roomStr) }()
	}
	fields = append(fields,
		dateField("Check-in (YYYY-MM-DD)", checkIn),
		dateField("Check-out (YYYY-MM-DD)", checkOut),
	)

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
