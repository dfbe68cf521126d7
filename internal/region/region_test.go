package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleRecord(t *testing.T) {
	src := []byte("AllViolated: 1/10000<=prob1<=5001/20000,1/10000<=perr<=5001/20000;\n")
	rects, err := Parse(src, DefaultStyles())
	require.NoError(t, err)
	require.Len(t, rects, 1)

	r := rects[0]
	assert.Equal(t, "AllViolated", r.State)
	assert.Equal(t, 0.0001, r.X0)
	assert.Equal(t, 0.25005, r.X1)
	assert.Equal(t, 0.0001, r.Y0)
	assert.Equal(t, 0.25005, r.Y1)
	assert.Equal(t, "prob1", r.XAxis)
	assert.Equal(t, "perr", r.YAxis)
	assert.Equal(t, 0, r.Line)
}

func TestParseSkipsEmptyLines(t *testing.T) {
	src := []byte("\nAllSat: 0<=p<=1,0<=q<=1;\n\n   \r\nUnknown: 1<=p<=2,1<=q<=2;\r\n")
	rects, err := Parse(src, DefaultStyles())
	require.NoError(t, err)
	require.Len(t, rects, 2)
	assert.Equal(t, 1, rects[0].Line)
	assert.Equal(t, 4, rects[1].Line)
	assert.Equal(t, "Unknown", rects[1].State)
	assert.Equal(t, 2.0, rects[1].Y1)
}

func TestParseEmptyInput(t *testing.T) {
	rects, err := Parse(nil, DefaultStyles())
	require.NoError(t, err)
	assert.Empty(t, rects)
}

func TestParseFormatError(t *testing.T) {
	src := []byte("AllSat: 0<=p<=1,0<=q<=1;\ngarbage text\n")
	_, err := Parse(src, DefaultStyles())
	require.Error(t, err)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Line)
	assert.Equal(t, "garbage text", fe.Text)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseFormatErrorMissingSemicolon(t *testing.T) {
	_, err := Parse([]byte("AllSat: 0<=p<=1,0<=q<=1"), DefaultStyles())
	assert.IsType(t, &FormatError{}, err)
}

func TestParseZeroDenominator(t *testing.T) {
	_, err := Parse([]byte("AllSat: 1/0<=p<=1,0<=q<=1;"), DefaultStyles())
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Line)
}

func TestParseUnknownState(t *testing.T) {
	_, err := Parse([]byte("Foo: 0<=p<=1,0<=q<=1;"), DefaultStyles())
	require.Error(t, err)

	var ue *UnknownStateError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "Foo", ue.State)
	assert.Equal(t, "unknown state: Foo", err.Error())
}

func TestParseCustomStyles(t *testing.T) {
	styles := StyleMap{"Foo": "fill=blue,"}
	rects, err := Parse([]byte("Foo: 0<=p<=1,0<=q<=1;"), styles)
	require.NoError(t, err)
	require.Len(t, rects, 1)
	assert.Equal(t, "Foo", rects[0].State)
}

func TestParseFractionExact(t *testing.T) {
	v, ok := ParseFraction("5001/20000")
	require.True(t, ok)
	assert.Equal(t, 0.25005, v)

	v, ok = ParseFraction("1/3")
	require.True(t, ok)
	assert.Equal(t, 1.0/3.0, v)

	v, ok = ParseFraction("7")
	require.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok = ParseFraction("1/0")
	assert.False(t, ok)
}
