package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ryancast1/reservations/internal/models"
)

const cellWidth = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(cellWidth).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(4).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238"))

	paddingCellStyle = cellStyle.
				BorderForeground(lipgloss.Color("236"))

	dayStyle = lipgloss.NewStyle().Bold(true)

	blockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	roomStyles = map[models.Room]lipgloss.Style{
		models.RoomMain:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.RoomTwo:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.RoomThree: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	}

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Render draws the month as a bordered week grid with per-room occupancy
// lines inside each day cell.
func (m Month) Render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()))
	b.WriteString("\n")

	var header []string
	for _, name := range weekdayNames {
		header = append(header, weekdayStyle.Render(name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for week := 0; week < len(m.Cells)/7; week++ {
		var row []string
		for day := 0; day < 7; day++ {
			row = append(row, renderCell(m.Cells[week*7+day]))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	for _, w := range m.Warnings {
		b.WriteString(warningStyle.Render("⚠ " + w))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(c Cell) string {
	if !c.InMonth {
		return paddingCellStyle.Render("")
	}

	lines := []string{dayStyle.Render(fmt.Sprintf("%d", c.Day))}

	if c.IsBlocked() {
		lines = append(lines, blockedStyle.Render("BLOCKED"))
	} else {
		for _, room := range models.BookableRooms {
			rd := c.Rooms[room]
			if rd.Status == StatusNone {
				continue
			}
			lines = append(lines, roomStyles[room].Render(roomLine(room, rd)))
		}
	}

	return cellStyle.Render(strings.Join(lines, "\n"))
}

// roomLine shows the room's short label plus the guest name on label
// days, an arrival/departure marker otherwise.
func roomLine(room models.Room, rd RoomDay) string {
	short := models.ShortLabels[room]
	switch rd.Status {
	case StatusCheckIn:
		return fmt.Sprintf("%s %s", short, truncate(rd.GuestName, cellWidth-len(short)-1))
	case StatusCheckOut:
		return short + " out"
	default:
		if rd.ShowLabel {
			return fmt.Sprintf("%s %s", short, truncate(rd.GuestName, cellWidth-len(short)-1))
		}
		return short + " ·"
	}
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
