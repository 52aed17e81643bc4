package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case monthLoadedMsg:
		m.projected = msg.projected
		m.reservations = msg.reservations
		m.loadErr = nil
		return m, nil

	case loadFailedMsg:
		m.loadErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.PrevMonth):
			m.year, m.month = shiftMonth(m.year, m.month, -1)
			return m, m.loadMonth()

		case key.Matches(msg, m.keys.NextMonth):
			m.year, m.month = shiftMonth(m.year, m.month, 1)
			return m, m.loadMonth()

		case key.Matches(msg, m.keys.Today):
			now := time.Now()
			m.year, m.month = now.Year(), now.Month()
			return m, m.loadMonth()

		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadMonth()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m, nil
}

func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}
