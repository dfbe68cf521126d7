package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"regionplot/internal/batch"
	"regionplot/internal/region"
	"regionplot/internal/tikz"
	"regionplot/internal/tui"
)

// Exit codes.
const (
	exitNothingToDo   = 50
	exitOutputRoot    = 100
	exitOutputFolders = 101
)

// settings is the resolved configuration of one invocation.
type settings struct {
	File        string
	OutputFile  string
	Batch       batch.Options
	Styles      string
	Render      tikz.Config
	HideSkipped bool
}

func loadSettings(v *viper.Viper) (settings, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	s := settings{
		File:       v.GetString("file"),
		OutputFile: v.GetString("output-file"),
		Batch: batch.Options{
			InputDir:         v.GetString("input-dir"),
			OutputDir:        v.GetString("output-dir"),
			OutputExt:        v.GetString("output-extension"),
			Recursive:        v.GetBool("recursive"),
			All:              v.GetBool("all"),
			NoOverwrite:      v.GetBool("no-overwrite"),
			NoFolderCreation: v.GetBool("no-folder-creation"),
			LineLimit:        v.GetInt("line-limit"),
		},
		Styles: v.GetString("styles"),
		Render: tikz.Config{
			LineWidth: v.GetFloat64("line-width"),
			XSplit:    v.GetInt("x-split"),
			YSplit:    v.GetInt("y-split"),
			XRounding: v.GetInt("x-split-rounding"),
			YRounding: v.GetInt("y-split-rounding"),
			NoTitle:   v.GetBool("no-title"),
			Title:     v.GetString("title"),
		},
		HideSkipped: v.GetBool("hide-skipped"),
	}
	for name, n := range map[string]int{
		"x-split":          s.Render.XSplit,
		"y-split":          s.Render.YSplit,
		"x-split-rounding": s.Render.XRounding,
		"y-split-rounding": s.Render.YRounding,
		"line-limit":       s.Batch.LineLimit,
	} {
		if n <= 0 {
			return settings{}, fmt.Errorf("%s: %d is not a positive integer", name, n)
		}
	}
	if s.Render.LineWidth < 0 {
		return settings{}, fmt.Errorf("line-width: %v is not a positive decimal", s.Render.LineWidth)
	}
	return s, nil
}

// toStdout reports whether the single document goes to standard output, in
// which case nothing else may be printed there.
func (s settings) toStdout() bool {
	return s.File != "" && s.OutputFile == ""
}

func runConvert(cmd *cobra.Command, v *viper.Viper) error {
	s, err := loadSettings(v)
	if err != nil {
		return err
	}
	errOut := cmd.ErrOrStderr()
	pr := tui.NewPrinter(errOut)

	conv := &batch.Converter{Styles: loadStyles(s.Styles, pr), Config: s.Render}

	if s.toStdout() {
		doc, _, err := conv.Document(s.File)
		if err != nil {
			pr.Error("Could not convert "+s.File+":", err)
			return &ExitError{Code: 1, Err: err}
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}

	var jobs []batch.Job
	if s.File != "" {
		jobs = []batch.Job{{Input: s.File, Output: s.OutputFile}}
	} else {
		if s.Batch.OutputDir == "" {
			pr.Error("Converting multiple files requires the specification of an output directory", nil)
			return &ExitError{Code: exitNothingToDo}
		}
		plan, err := batch.BuildPlan(s.Batch)
		if err != nil {
			pr.Error("Could not scan input directory "+s.Batch.InputDir+":", err)
			return &ExitError{Code: 1, Err: err}
		}
		for _, sk := range plan.Skips {
			if sk.Reason == batch.SkipTooLarge || !s.HideSkipped {
				pr.Skipped(sk)
			}
		}
		if plan.TooLarge() {
			pr.Note("You can specify a different limit using --line-limit")
		}
		jobs = plan.Jobs
	}

	if len(jobs) == 0 {
		pr.Note("No files have been converted.")
		return &ExitError{Code: exitNothingToDo}
	}

	if s.File == "" && !s.Batch.NoFolderCreation {
		if err := batch.MirrorDirs(s.Batch); err != nil {
			pr.Error("Could not create output folders", err)
			code := exitOutputFolders
			var me *batch.MkdirError
			if errors.As(err, &me) && me.Root {
				code = exitOutputRoot
			}
			return &ExitError{Code: code, Err: err}
		}
	}

	results, err := runJobs(conv, jobs, errOut, pr)
	if errors.Is(err, tui.ErrInterrupted) {
		return &ExitError{Code: 130, Err: err}
	}
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			return &ExitError{Code: 1}
		}
	}
	return nil
}

// runJobs uses the interactive progress display only when stderr is a terminal.
func runJobs(conv *batch.Converter, jobs []batch.Job, errOut io.Writer, pr *tui.Printer) ([]batch.Result, error) {
	if f, ok := errOut.(*os.File); ok {
		return tui.Run(conv, jobs, f)
	}
	return conv.Run(jobs, pr.Done), nil
}

// loadStyles reads the style file, falling back to the built-in set with a
// warning when it cannot be read.
func loadStyles(path string, pr *tui.Printer) region.StyleMap {
	if path == "" {
		return region.DefaultStyles()
	}
	styles, err := region.LoadStyles(path)
	if err != nil {
		pr.Warn("Could not read style file "+path, "Continuing with default style")
		return region.DefaultStyles()
	}
	return styles
}
