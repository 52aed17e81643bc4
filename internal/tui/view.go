package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ryancast1/reservations/internal/models"
	"github.com/ryancast1/reservations/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	if m.loadErr != nil {
		content = errorStyle.Render(fmt.Sprintf("Failed to load reservations: %v", m.loadErr))
	} else {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			m.projected.Render(),
			m.viewBookings(),
		)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.help.View(m.keys),
	))
}

// viewBookings lists the month's reservations under the grid.
func (m Model) viewBookings() string {
	if len(m.reservations) == 0 {
		return emptyStyle.Render("No reservations this month")
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Bookings"))
	b.WriteString("\n")
	for _, res := range m.reservations {
		if res.IsBlockout() {
			b.WriteString(blockedLineStyle.Render(
				fmt.Sprintf("  all rooms blocked, %s to %s", res.CheckIn, res.CheckOut)))
		} else {
			nights, _ := utils.Nights(res.CheckIn, res.CheckOut)
			line := fmt.Sprintf("  %s  %s, %s to %s (%d nights)",
				models.ShortLabels[res.Room], res.GuestName, res.CheckIn, res.CheckOut, nights)
			b.WriteString(roomLineStyles[res.Room].Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
