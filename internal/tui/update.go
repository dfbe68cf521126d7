package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"regionplot/internal/batch"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.interrupted = true
			m.done = true
			return m, tea.Quit
		}
	case convertedMsg:
		if m.done {
			return m, nil
		}
		r := batch.Result(msg)
		m.results = append(m.results, r)
		m.next++
		line := tea.Println(m.pr.resultLine(r))
		if m.next >= len(m.jobs) {
			m.done = true
			return m, tea.Sequence(line, tea.Quit)
		}
		return m, tea.Batch(line, m.convertNext())
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}
