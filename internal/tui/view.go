// internal/tui/view.go
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/gbisson-phys/stabilizer/internal/health"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF7DB")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Margin(0, 1)

	linkUpStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	linkDownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

func (m StatusModel) View() string {
	title := titleStyle.Render(fmt.Sprintf("stabd - %s", m.iface))

	// Link panel
	var link string
	if m.snap.LinkUp {
		link = linkUpStyle.Render("LINK UP")
	} else {
		link = linkDownStyle.Render(fmt.Sprintf("LINK DOWN %ds", m.snap.SecondsDown))
	}
	linkBox := infoStyle.Render(fmt.Sprintf("%s\nHealth: %s", link, healthName(m.snap.Health)))

	// Counter panel
	counterBox := infoStyle.Render("Update cycle\n" + m.table.View())

	row := lipgloss.JoinHorizontal(lipgloss.Top, linkBox, counterBox)

	body := lipgloss.JoinVertical(lipgloss.Left, title, row)
	if m.recv != nil {
		streamBox := infoStyle.Render(fmt.Sprintf(
			"Stream\nFrames: %d\nData: %s\nLoss: %.2f %%",
			m.stats.Frames,
			formatBytes(m.stats.Bytes),
			m.stats.LossRatio()*100,
		))
		channelBox := infoStyle.Render("Channels\n" + m.channels.View())
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			lipgloss.JoinHorizontal(lipgloss.Top, streamBox, channelBox))
	}

	return body + "\nPress q to quit."
}

func healthName(code uint16) string {
	switch code {
	case health.HealthOK:
		return "ok"
	case health.HealthDegraded:
		return "degraded"
	case health.HealthLinkDown:
		return "link down"
	default:
		return "unknown"
	}
}

func formatBytes(n uint64) string {
	switch {
	case n >= 1e6:
		return fmt.Sprintf("%.2f MB", float64(n)/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.2f kB", float64(n)/1e3)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
