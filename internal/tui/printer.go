package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"regionplot/internal/batch"
)

const (
	symbolOK   = "✔"
	symbolFail = "✖"
	symbolInfo = "ℹ"
	symbolWarn = "⚠"
)

// Printer writes one styled line per event to w.
type Printer struct {
	w  io.Writer
	st palette
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, st: newPalette(lipgloss.NewRenderer(w))}
}

// Skipped reports an input left out of the batch.
func (p *Printer) Skipped(s batch.Skip) {
	fmt.Fprintln(p.w, p.skipLine(s))
}

// Done reports a finished conversion.
func (p *Printer) Done(r batch.Result) {
	fmt.Fprintln(p.w, p.resultLine(r))
}

// Warn reports a recoverable problem.
func (p *Printer) Warn(msg, detail string) {
	line := p.st.warn.Render(symbolWarn+" "+msg)
	if detail != "" {
		line += p.st.dim.Render(" - " + detail)
	}
	fmt.Fprintln(p.w, line)
}

// Error reports a fatal problem with an optional detail line.
func (p *Printer) Error(msg string, err error) {
	line := p.st.fail.Render(symbolFail + " " + msg)
	if err != nil {
		line += "\n" + p.st.dim.Render(err.Error())
	}
	fmt.Fprintln(p.w, line)
}

// Note prints a dimmed hint.
func (p *Printer) Note(msg string) {
	fmt.Fprintln(p.w, p.st.dim.Render(msg))
}

func (p *Printer) skipLine(s batch.Skip) string {
	var msg string
	switch s.Reason {
	case batch.SkipOutputExists:
		msg = fmt.Sprintf("%s skipped (Output exists)", s.Output)
	case batch.SkipUnchanged:
		msg = fmt.Sprintf("%s skipped (File unchanged)", s.Input)
	case batch.SkipTooLarge:
		msg = fmt.Sprintf("%s (%d lines) exceeds the maximum line number limit of %d.", s.Input, s.Lines, s.Limit)
	default:
		msg = fmt.Sprintf("%s skipped (%s)", s.Input, s.Reason)
	}
	return p.st.info.Render(symbolInfo) + " " + p.st.dim.Render(msg)
}

func (p *Printer) resultLine(r batch.Result) string {
	if r.Err == nil {
		return p.st.ok.Render(symbolOK) + " " + fmt.Sprintf("%s (%s)", r.Job.Input, humanDuration(r.Duration))
	}
	var msg string
	switch r.Stage {
	case batch.StageRead:
		msg = "Could not read input file " + r.Job.Input + ":"
	case batch.StageWrite:
		msg = "Could not write output file " + r.Job.Output + ":"
	default:
		msg = "Could not convert " + r.Job.Input + ":"
	}
	return p.st.fail.Render(symbolFail+" "+msg) + "\n" + p.st.dim.Render(r.Err.Error())
}

// humanDuration rounds d to a readable precision.
func humanDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	}
	return d.String()
}
