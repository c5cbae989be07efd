// internal/tui/model.go
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gbisson-phys/stabilizer/internal/health"
	"github.com/gbisson-phys/stabilizer/internal/stream"
)

// StatusModel renders daemon health and stream reception live.
type StatusModel struct {
	tracker *health.Tracker
	recv    *stream.Receiver       // nil when streaming is disabled
	chans   *stream.ChannelMonitor // nil when streaming is disabled
	iface   string

	snap     health.Snapshot
	stats    stream.Stats
	table    table.Model
	channels table.Model
}

type TickMsg time.Time

func NewStatusModel(tracker *health.Tracker, recv *stream.Receiver, chans *stream.ChannelMonitor, iface string) StatusModel {
	columns := []table.Column{
		{Title: "Counter", Width: 14},
		{Title: "Value", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(6),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)

	c := table.New(
		table.WithColumns([]table.Column{
			{Title: "Channel", Width: 10},
			{Title: "Volts", Width: 12},
		}),
		table.WithFocused(false),
		table.WithHeight(6),
	)
	c.SetStyles(s)

	return StatusModel{
		tracker:  tracker,
		recv:     recv,
		chans:    chans,
		iface:    iface,
		table:    t,
		channels: c,
	}
}

func (m StatusModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
