package tikz

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"regionplot/internal/region"
)

// Config holds the rendering options of a diagram.
type Config struct {
	LineWidth float64 // mm
	XSplit    int
	YSplit    int
	XRounding int
	YRounding int
	NoTitle   bool
	Title     string // overrides the file name title when set
}

func DefaultConfig() Config {
	return Config{
		XSplit:    5,
		YSplit:    5,
		XRounding: 1,
		YRounding: 1,
	}
}

func (c Config) validate() error {
	if c.XSplit <= 0 {
		return &DivisionError{Axis: "x", Split: c.XSplit}
	}
	if c.YSplit <= 0 {
		return &DivisionError{Axis: "y", Split: c.YSplit}
	}
	if c.XRounding < 0 {
		return &RoundingError{Axis: "x", Digits: c.XRounding}
	}
	if c.YRounding < 0 {
		return &RoundingError{Axis: "y", Digits: c.YRounding}
	}
	return nil
}

// title resolves the figure title for the input at path.
func (c Config) title(path string) string {
	switch {
	case c.NoTitle:
		return ""
	case c.Title != "":
		return EscapeTitle(c.Title)
	}
	return EscapeTitle(TitleFor(path))
}

// TitleFor returns the base name of path without its final extension.
func TitleFor(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// Render produces the TikZ document for rects read from the input named name.
// Axis labels are taken from the last record.
func Render(rects []region.Rect, styles region.StyleMap, cfg Config, name string) (string, error) {
	b, err := ComputeBounds(rects, cfg)
	if err != nil {
		return "", err
	}
	last := rects[len(rects)-1]

	var sb strings.Builder
	writeHeader(&sb, b, last.XAxis, last.YAxis, cfg.title(name))
	lw := "line width = " + strconv.FormatFloat(cfg.LineWidth, 'f', -1, 64) + "mm"
	for _, r := range rects {
		style, ok := styles[r.State]
		if !ok {
			return "", &region.UnknownStateError{ParseError: region.ParseError{Line: r.Line}, State: r.State}
		}
		fmt.Fprintf(&sb, "\\draw [%s%s] (%s,%s) rectangle (%s,%s);\n",
			style, lw, FormatFloat(r.X0), FormatFloat(r.Y0), FormatFloat(r.X1), FormatFloat(r.Y1))
	}
	writeFooter(&sb)
	return sb.String(), nil
}

func writeHeader(sb *strings.Builder, b Bounds, xAxis, yAxis, title string) {
	sb.WriteString("\n\\begin{tikzpicture}\n\\begin{axis}[\n")
	sb.WriteString("axis lines=middle,\naxis equal,\n")
	sb.WriteString("every axis x label/.style=\n    {at={(ticklabel cs: 0.5,0)}, anchor=north},\n")
	sb.WriteString("every axis y label/.style=\n    {at={(ticklabel cs: 0.5,0)}, anchor=east},\n")
	fmt.Fprintf(sb, "xmin=%s,xmax=%s,ymin=%s,ymax=%s,\n",
		FormatFloat(b.XMin), FormatFloat(b.XMax), FormatFloat(b.YMin), FormatFloat(b.YMax))
	fmt.Fprintf(sb, "xtick distance=%.2f,\nytick distance=%.2f,\n", b.XTick, b.YTick)
	fmt.Fprintf(sb, "xlabel=%s,\nylabel=%s,\ntitle={%s}\n]\n", xAxis, yAxis, title)
}

func writeFooter(sb *strings.Builder) {
	sb.WriteString("\n\\end{axis}\n\\end{tikzpicture}\n")
}
