package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ExitError ends the program with Code after its message has been reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// positiveInt is a pflag.Value rejecting values below 1.
type positiveInt int

func (v *positiveInt) String() string { return strconv.Itoa(int(*v)) }
func (v *positiveInt) Type() string   { return "amount" }
func (v *positiveInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("%s is not a positive integer", s)
	}
	*v = positiveInt(n)
	return nil
}

// positiveFloat is a pflag.Value rejecting values that are not above 0.
type positiveFloat float64

func (v *positiveFloat) String() string { return strconv.FormatFloat(float64(*v), 'f', -1, 64) }
func (v *positiveFloat) Type() string   { return "width" }
func (v *positiveFloat) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if f <= 0 {
		return fmt.Errorf("%s is not a positive decimal", s)
	}
	*v = positiveFloat(f)
	return nil
}

// newRootCmd builds the command with its own viper instance: flags, then
// REGIONPLOT_* environment variables, then the optional --config file.
func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "regionplot",
		Short: "Generate TikZ graphs from parameter lifting region results",
		Long: "regionplot converts .regionresult files (parameter lifting output with two variables)\n" +
			"into TikZ pictures, one per input file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, v)
		},
	}
	f := cmd.Flags()

	// io
	f.StringP("file", "i", "", "the (singular) input file")
	f.StringP("output-file", "o", "", "the (singular) output file; standard output when omitted with --file")
	f.StringP("input-dir", "I", "./input/", "the input directory to scan for .regionresult files (ignored with --file)")
	f.StringP("output-dir", "O", "./output/", "the output directory to write the output files to")
	f.StringP("output-extension", "e", "tex", "the output extension to add to written files")
	f.BoolP("no-folder-creation", "S", false, "do not create the output folder structure matching the input structure")

	// file
	f.BoolP("recursive", "r", false, "search the input directory recursively")
	f.BoolP("all", "a", false, "convert all region results within the limit, even if an output file already exists")
	f.Bool("no-overwrite", false, "do not convert files which already have an output file in the given format")

	// style
	f.StringP("styles", "s", "./styles/default.json", "path to the style file (JSON or YAML); empty uses the built-in styles")
	f.StringP("title", "t", "", "fixed TikZ figure title instead of the input file name")
	f.Bool("no-title", false, "do not generate TikZ figure titles")
	xSplit, ySplit := positiveInt(5), positiveInt(5)
	xRound, yRound := positiveInt(1), positiveInt(1)
	lineWidth := positiveFloat(0)
	f.Var(&xSplit, "x-split", "mark a tick on the x-axis every 1/<amount> of its span")
	f.Var(&ySplit, "y-split", "mark a tick on the y-axis every 1/<amount> of its span")
	f.Var(&xRound, "x-split-rounding", "round the x tick distance to <amount> decimals")
	f.Var(&yRound, "y-split-rounding", "round the y tick distance to <amount> decimals")
	f.Var(&lineWidth, "line-width", "line width of regions in mm")

	// misc
	lineLimit := positiveInt(100000)
	f.VarP(&lineLimit, "line-limit", "L", "do not parse files from the input directory having more than <amount> lines")
	f.Bool("hide-skipped", false, "hide which files are skipped")
	f.String("config", "", "config file providing defaults for any flag")

	f.VisitAll(func(fl *pflag.Flag) {
		_ = v.BindPFlag(fl.Name, fl)
	})
	v.SetEnvPrefix("REGIONPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}
