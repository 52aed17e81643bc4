package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ryancast1/reservations/internal/models"
)

var (
	docStyle = lipgloss.NewStyle().Padding(1, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	blockedLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("203"))

	roomLineStyles = map[models.Room]lipgloss.Style{
		models.RoomMain:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.RoomTwo:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.RoomThree: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	}
)
