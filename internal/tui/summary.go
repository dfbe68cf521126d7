package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"regionplot/internal/batch"
)

// Summary renders a table of results with one row per converted file.
func (p *Printer) Summary(results []batch.Result) string {
	fileW, statusW, timeW := len("File"), len("Status"), len("Time")
	rows := make([]table.Row, 0, len(results))
	failed := 0
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Stage.String() + " failed"
			failed++
		}
		d := humanDuration(r.Duration)
		fileW = max(fileW, lipgloss.Width(r.Job.Input))
		statusW = max(statusW, lipgloss.Width(status))
		timeW = max(timeW, lipgloss.Width(d))
		rows = append(rows, table.Row{r.Job.Input, status, d})
	}
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "File", Width: fileW},
			{Title: "Status", Width: statusW},
			{Title: "Time", Width: timeW},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithStyles(styles),
	)
	footer := p.st.ok.Render(strconv.Itoa(len(results)-failed) + " converted")
	if failed > 0 {
		footer += p.st.dim.Render(", ") + p.st.fail.Render(strconv.Itoa(failed)+" failed")
	}
	return p.st.box.Render(lipgloss.JoinVertical(lipgloss.Left, t.View(), footer))
}
