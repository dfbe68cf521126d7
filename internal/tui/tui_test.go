package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regionplot/internal/batch"
	"regionplot/internal/region"
	"regionplot/internal/tikz"
)

func setup(t *testing.T, inputs map[string]string) (*batch.Converter, []batch.Job) {
	t.Helper()
	in, out := t.TempDir(), t.TempDir()
	var jobs []batch.Job
	for _, name := range []string{"a", "b", "c"} {
		content, ok := inputs[name]
		if !ok {
			continue
		}
		p := filepath.Join(in, name+".regionresult")
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		jobs = append(jobs, batch.Job{Input: p, Output: filepath.Join(out, name+".tex")})
	}
	return &batch.Converter{Styles: region.DefaultStyles(), Config: tikz.DefaultConfig()}, jobs
}

func TestPrinterLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Done(batch.Result{Job: batch.Job{Input: "in/a.regionresult"}, Duration: 1500 * time.Microsecond})
	p.Done(batch.Result{
		Job:   batch.Job{Input: "in/b.regionresult", Output: "out/b.tex"},
		Stage: batch.StageWrite,
		Err:   errors.New("disk full"),
	})
	p.Skipped(batch.Skip{Job: batch.Job{Input: "in/c.regionresult", Output: "out/c.tex"}, Reason: batch.SkipOutputExists})
	p.Skipped(batch.Skip{Job: batch.Job{Input: "in/d.regionresult"}, Reason: batch.SkipTooLarge, Lines: 12, Limit: 10})
	p.Warn("Could not read style file s.json", "Continuing with default style")

	out := buf.String()
	assert.Contains(t, out, "✔ in/a.regionresult (1.5ms)")
	assert.Contains(t, out, "✖ Could not write output file out/b.tex:\ndisk full")
	assert.Contains(t, out, "out/c.tex skipped (Output exists)")
	assert.Contains(t, out, "in/d.regionresult (12 lines) exceeds the maximum line number limit of 10.")
	assert.Contains(t, out, "Could not read style file s.json - Continuing with default style")
}

func TestModelConvertsAllJobs(t *testing.T) {
	conv, jobs := setup(t, map[string]string{
		"a": "AllSat: 0<=p<=1,0<=q<=1;\n",
		"b": "garbage text\n",
	})
	m := New(conv, jobs, NewPrinter(&bytes.Buffer{}))
	require.NotNil(t, m.Init())
	assert.Contains(t, m.View(), jobs[0].Input)
	assert.Contains(t, m.View(), "[1/2]")

	next, cmd := m.Update(m.convertNext()())
	m = next.(Model)
	require.NotNil(t, cmd)
	require.Len(t, m.Results(), 1)
	assert.NoError(t, m.Results()[0].Err)
	assert.Contains(t, m.View(), jobs[1].Input)

	next, cmd = m.Update(m.convertNext()())
	m = next.(Model)
	require.NotNil(t, cmd)
	require.Len(t, m.Results(), 2)
	var fe *region.FormatError
	assert.ErrorAs(t, m.Results()[1].Err, &fe)
	assert.Empty(t, m.View())
	assert.False(t, m.Interrupted())

	_, err := os.Stat(jobs[0].Output)
	assert.NoError(t, err)
	_, err = os.Stat(jobs[1].Output)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestModelNoJobsQuits(t *testing.T) {
	m := New(&batch.Converter{}, nil, NewPrinter(&bytes.Buffer{}))
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelInterrupt(t *testing.T) {
	conv, jobs := setup(t, map[string]string{"a": "AllSat: 0<=p<=1,0<=q<=1;\n"})
	m := New(conv, jobs, NewPrinter(&bytes.Buffer{}))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Interrupted())

	next, cmd = m.Update(convertedMsg(batch.Result{Job: jobs[0]}))
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Results())
}

func TestSummary(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{})
	s := p.Summary([]batch.Result{
		{Job: batch.Job{Input: "in/a.regionresult"}, Duration: time.Millisecond},
		{Job: batch.Job{Input: "in/b.regionresult"}, Stage: batch.StageParse, Err: errors.New("bad")},
	})
	assert.Contains(t, s, "in/a.regionresult")
	assert.Contains(t, s, "in/b.regionresult")
	assert.Contains(t, s, "parse failed")
	assert.Contains(t, s, "1 converted")
	assert.Contains(t, s, "1 failed")
	assert.True(t, strings.Count(s, "\n") >= 4)
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "1.23s", humanDuration(1234567*time.Microsecond))
	assert.Equal(t, "2.35ms", humanDuration(2345678*time.Nanosecond))
	assert.Equal(t, "900µs", humanDuration(900*time.Microsecond))
}
