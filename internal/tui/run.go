package tui

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"regionplot/internal/batch"
)

// ErrInterrupted is returned by Run when the user stops the batch.
var ErrInterrupted = errors.New("conversion interrupted")

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run converts jobs while reporting progress on out. A terminal gets a spinner
// and a summary table; anything else gets one line per file.
func Run(conv *batch.Converter, jobs []batch.Job, out *os.File) ([]batch.Result, error) {
	pr := NewPrinter(out)
	if !IsTerminal(out) {
		return conv.Run(jobs, pr.Done), nil
	}
	final, err := tea.NewProgram(New(conv, jobs, pr), tea.WithOutput(out)).Run()
	if err != nil {
		return nil, err
	}
	m := final.(Model)
	if len(m.Results()) > 1 {
		if _, err := out.WriteString(pr.Summary(m.Results()) + "\n"); err != nil {
			return m.Results(), err
		}
	}
	if m.Interrupted() {
		return m.Results(), ErrInterrupted
	}
	return m.Results(), nil
}
