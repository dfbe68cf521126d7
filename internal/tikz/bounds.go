package tikz

import (
	"fmt"
	"math"
	"strconv"

	"regionplot/internal/region"
)

// Bounds is the plotted area of one diagram and its tick spacing.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
	XTick      float64
	YTick      float64
}

// DivisionError reports a tick split count that is not positive.
type DivisionError struct {
	Axis  string
	Split int
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("%s split must be a positive integer, got %d", e.Axis, e.Split)
}

// RoundingError reports a negative tick rounding digit count.
type RoundingError struct {
	Axis   string
	Digits int
}

func (e *RoundingError) Error() string {
	return fmt.Sprintf("%s split rounding must not be negative, got %d", e.Axis, e.Digits)
}

// ComputeBounds returns the diagram bounds of rects. The minimum of each axis comes
// from the lower bounds only and the maximum from the upper bounds only.
func ComputeBounds(rects []region.Rect, cfg Config) (Bounds, error) {
	if err := cfg.validate(); err != nil {
		return Bounds{}, err
	}
	if len(rects) == 0 {
		return Bounds{}, region.ErrNoRegions
	}
	var b Bounds
	for i, r := range rects {
		if i == 0 {
			b = Bounds{XMin: r.X0, XMax: r.X1, YMin: r.Y0, YMax: r.Y1}
			continue
		}
		if r.X0 < b.XMin {
			b.XMin = r.X0
		}
		if r.X1 > b.XMax {
			b.XMax = r.X1
		}
		if r.Y0 < b.YMin {
			b.YMin = r.Y0
		}
		if r.Y1 > b.YMax {
			b.YMax = r.Y1
		}
	}
	b.XTick = TickDistance(b.XMin, b.XMax, cfg.XSplit, cfg.XRounding)
	b.YTick = TickDistance(b.YMin, b.YMax, cfg.YSplit, cfg.YRounding)
	return b, nil
}

// TickDistance is the axis span divided into split parts, rounded to digits decimals.
// split must be positive.
func TickDistance(min, max float64, split, digits int) float64 {
	return RoundTo((max-min)/float64(split), digits)
}

// RoundTo rounds v to digits decimal places using the exact binary value of v,
// with exact ties going to the even digit.
func RoundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}
