package tui

import "fmt"

func (m Model) View() string {
	if m.done || m.next >= len(m.jobs) {
		return ""
	}
	progress := m.pr.st.dim.Render(fmt.Sprintf(" [%d/%d]", m.next+1, len(m.jobs)))
	return m.spinner.View() + " " + m.jobs[m.next].Input + "..." + progress + "\n"
}
