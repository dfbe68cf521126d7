package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"regionplot/internal/batch"
)

// Model converts a list of jobs one at a time behind a spinner.
type Model struct {
	conv *batch.Converter
	pr   *Printer

	jobs    []batch.Job
	next    int
	results []batch.Result

	spinner     spinner.Model
	done        bool
	interrupted bool
}

// convertedMsg carries the result of the job at index Model.next.
type convertedMsg batch.Result

func New(conv *batch.Converter, jobs []batch.Job, pr *Printer) Model {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(pr.st.accent))
	return Model{
		conv:    conv,
		pr:      pr,
		jobs:    jobs,
		spinner: s,
		done:    len(jobs) == 0,
	}
}

func (m Model) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return tea.Batch(m.spinner.Tick, m.convertNext())
}

// Results returns the results of the jobs converted so far, in job order.
func (m Model) Results() []batch.Result { return m.results }

// Interrupted reports whether the user stopped the batch early.
func (m Model) Interrupted() bool { return m.interrupted }

func (m Model) convertNext() tea.Cmd {
	conv, job := m.conv, m.jobs[m.next]
	return func() tea.Msg {
		return convertedMsg(conv.Convert(job))
	}
}
