package region

import (
	"bytes"
	"math/big"
	"regexp"
)

// Rect is one region result: a verdict over an axis-aligned box.
type Rect struct {
	State  string
	X0, X1 float64
	Y0, Y1 float64
	XAxis  string
	YAxis  string
	Line   int
}

// Example record:
//
//	AllViolated: 1/10000<=prob1<=5001/20000,1/10000<=perr<=5001/20000;
var recordRE = regexp.MustCompile(
	`^(\w+): ([0-9]+(?:/[0-9]+)?)<=(\w+)<=([0-9]+(?:/[0-9]+)?),([0-9]+(?:/[0-9]+)?)<=(\w+)<=([0-9]+(?:/[0-9]+)?);$`)

// Parse reads the region records of one input file.
// Returns a *FormatError or *UnknownStateError on the first bad line.
func Parse(src []byte, styles StyleMap) ([]Rect, error) {
	var rects []Rect
	for i, raw := range bytes.Split(src, []byte("\n")) {
		line := string(bytes.TrimRight(raw, "\r"))
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		m := recordRE.FindStringSubmatch(line)
		if m == nil {
			return nil, &FormatError{ParseError: ParseError{Line: i}, Text: line}
		}
		var bounds [4]float64
		for j, s := range []string{m[2], m[4], m[5], m[7]} {
			v, ok := ParseFraction(s)
			if !ok {
				return nil, &FormatError{ParseError: ParseError{Line: i}, Text: line}
			}
			bounds[j] = v
		}
		if _, ok := styles[m[1]]; !ok {
			return nil, &UnknownStateError{ParseError: ParseError{Line: i}, State: m[1]}
		}
		rects = append(rects, Rect{
			State: m[1],
			X0:    bounds[0],
			X1:    bounds[1],
			Y0:    bounds[2],
			Y1:    bounds[3],
			XAxis: m[3],
			YAxis: m[6],
			Line:  i,
		})
	}
	return rects, nil
}

// ParseFraction converts "n" or "n/d" to the float64 nearest the exact rational.
func ParseFraction(s string) (float64, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, false
	}
	f, _ := r.Float64()
	return f, true
}
