package batch

import (
	"fmt"
	"os"
	"time"

	"regionplot/internal/region"
	"regionplot/internal/tikz"
)

// Stage names the step of a conversion that failed.
type Stage int

const (
	StageRead Stage = iota
	StageParse
	StageWrite
)

func (s Stage) String() string {
	switch s {
	case StageRead:
		return "read"
	case StageParse:
		return "parse"
	case StageWrite:
		return "write"
	}
	return "unknown"
}

// Result is the outcome of converting one job.
type Result struct {
	Job      Job
	Duration time.Duration
	Stage    Stage // meaningful when Err is set
	Err      error
}

// Converter turns region result files into TikZ documents.
// Styles is shared read-only across conversions.
type Converter struct {
	Styles region.StyleMap
	Config tikz.Config
}

// Document reads, parses and renders the input at path.
func (c *Converter) Document(path string) (string, Stage, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", StageRead, fmt.Errorf("reading %s: %w", path, err)
	}
	rects, err := region.Parse(src, c.Styles)
	if err != nil {
		return "", StageParse, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc, err := tikz.Render(rects, c.Styles, c.Config, path)
	if err != nil {
		return "", StageParse, fmt.Errorf("rendering %s: %w", path, err)
	}
	return doc, 0, nil
}

// Convert renders job.Input and writes it to job.Output.
func (c *Converter) Convert(job Job) Result {
	start := time.Now()
	doc, stage, err := c.Document(job.Input)
	if err == nil {
		if werr := WriteFile(job.Output, []byte(doc)); werr != nil {
			stage, err = StageWrite, fmt.Errorf("writing %s: %w", job.Output, werr)
		}
	}
	return Result{Job: job, Duration: time.Since(start), Stage: stage, Err: err}
}

// Run converts jobs in order and calls done after each one. A failed job does
// not stop the batch.
func (c *Converter) Run(jobs []Job, done func(Result)) []Result {
	results := make([]Result, 0, len(jobs))
	for _, j := range jobs {
		r := c.Convert(j)
		results = append(results, r)
		if done != nil {
			done(r)
		}
	}
	return results
}
