package batch

import (
	"os"
)

// Options configures input discovery and output placement for a batch.
type Options struct {
	InputDir         string
	OutputDir        string
	OutputExt        string
	Recursive        bool
	All              bool // convert even when an up-to-date output exists
	NoOverwrite      bool // never replace an existing output
	NoFolderCreation bool
	LineLimit        int // 0 disables the limit
}

// Job is one input file and the path its document is written to.
// An empty Output means standard output.
type Job struct {
	Input  string
	Output string
}

type SkipReason int

const (
	SkipOutputExists SkipReason = iota
	SkipUnchanged
	SkipTooLarge
)

func (r SkipReason) String() string {
	switch r {
	case SkipOutputExists:
		return "output exists"
	case SkipUnchanged:
		return "file unchanged"
	case SkipTooLarge:
		return "too large"
	}
	return "unknown"
}

// Skip is a discovered input that will not be converted.
type Skip struct {
	Job
	Reason SkipReason
	Lines  int // set for SkipTooLarge
	Limit  int
}

// Plan is the outcome of scanning an input directory.
type Plan struct {
	Jobs  []Job
	Skips []Skip
}

// TooLarge reports whether any file was skipped for exceeding the line limit.
func (p *Plan) TooLarge() bool {
	for _, s := range p.Skips {
		if s.Reason == SkipTooLarge {
			return true
		}
	}
	return false
}

// BuildPlan discovers inputs and decides which of them to convert.
func BuildPlan(opts Options) (*Plan, error) {
	paths, err := Discover(opts)
	if err != nil {
		return nil, err
	}
	p := &Plan{}
	for _, in := range paths {
		out, err := OutputPath(opts.InputDir, opts.OutputDir, opts.OutputExt, in)
		if err != nil {
			return nil, err
		}
		job := Job{Input: in, Output: out}
		if reason, skip, err := checkOutput(opts, job); err != nil {
			return nil, err
		} else if skip {
			p.Skips = append(p.Skips, Skip{Job: job, Reason: reason})
			continue
		}
		if opts.LineLimit > 0 {
			n, err := CountLines(in)
			if err != nil {
				return nil, err
			}
			if n > opts.LineLimit {
				p.Skips = append(p.Skips, Skip{Job: job, Reason: SkipTooLarge, Lines: n, Limit: opts.LineLimit})
				continue
			}
		}
		p.Jobs = append(p.Jobs, job)
	}
	return p, nil
}

func checkOutput(opts Options, job Job) (SkipReason, bool, error) {
	if opts.All {
		return 0, false, nil
	}
	outInfo, err := os.Stat(job.Output)
	if err != nil || !outInfo.Mode().IsRegular() {
		return 0, false, nil
	}
	if opts.NoOverwrite {
		return SkipOutputExists, true, nil
	}
	inInfo, err := os.Stat(job.Input)
	if err != nil {
		return 0, false, err
	}
	if inInfo.ModTime().Before(outInfo.ModTime()) {
		return SkipUnchanged, true, nil
	}
	return 0, false, nil
}
