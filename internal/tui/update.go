// internal/tui/update.go
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gbisson-phys/stabilizer/internal/stream"
)

func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case TickMsg:
		m.snap = m.tracker.Snapshot()
		if m.recv != nil {
			m.stats = m.recv.Stats()
		}

		m.table.SetRows([]table.Row{
			{"updates", fmt.Sprintf("%d", m.snap.Updates)},
			{"no-change", fmt.Sprintf("%d", m.snap.NoChanges)},
			{"poll errors", fmt.Sprintf("%d", m.snap.PollErrors)},
			{"link resets", fmt.Sprintf("%d", m.snap.Resets)},
		})

		if m.chans != nil {
			volts, ok := m.chans.Channels()
			rows := make([]table.Row, len(stream.ChannelLabels))
			for i, label := range stream.ChannelLabels {
				value := "--"
				if ok {
					value = fmt.Sprintf("%+.4f", volts[i])
				}
				rows[i] = table.Row{label, value}
			}
			m.channels.SetRows(rows)
		}

		return m, tickCmd()
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
