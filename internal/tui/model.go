// Package tui implements the interactive month browser.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryancast1/reservations/internal/booking"
	"github.com/ryancast1/reservations/internal/calendar"
	"github.com/ryancast1/reservations/internal/models"
)

type Model struct {
	bookings *booking.Service
	year     int
	month    time.Month

	projected    calendar.Month
	reservations []models.Reservation
	loadErr      error

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

func NewModel(bookings *booking.Service) Model {
	now := time.Now()
	return Model{
		bookings: bookings,
		year:     now.Year(),
		month:    now.Month(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadMonth()
}

type monthLoadedMsg struct {
	projected    calendar.Month
	reservations []models.Reservation
}

type loadFailedMsg struct {
	err error
}

// loadMonth queries the month's reservations and projects the grid off
// the event loop.
func (m Model) loadMonth() tea.Cmd {
	year, month := m.year, m.month
	svc := m.bookings
	return func() tea.Msg {
		reservations, err := svc.ForMonth(year, month)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return monthLoadedMsg{
			projected:    calendar.ProjectMonth(year, month, reservations),
			reservations: reservations,
		}
	}
}
