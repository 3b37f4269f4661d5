package tensorfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	reprPrefix    = "array("
	summaryInsert = "..., "
	ellipsisToken = "..."
	elementSep    = ", "
)

// Renderer turns an array into its display text under the given print
// options. The layout reconstruction in [Format] assumes the conventions of
// [LegacyRenderer]: "[" and "]" delimit each innermost row, elements are
// separated by ", ", skipped runs render as "..., " and slices of rank r
// are separated by r-2 blank lines.
type Renderer interface {
	Render(a *Array, opts PrintOptions) (string, error)
}

// RenderFunc adapts a plain function to [Renderer].
type RenderFunc func(a *Array, opts PrintOptions) (string, error)

// Render calls f(a, opts).
func (f RenderFunc) Render(a *Array, opts PrintOptions) (string, error) { return f(a, opts) }

// LegacyRenderer renders arrays the way the legacy numpy repr does:
//
//	array([[ 0.    ,  0.0625,  0.125 ,  0.1875],
//	       [ 0.25  ,  0.3125,  0.375 ,  0.4375]])
//
// It validates the print options and rejects malformed ones with
// [ErrInvalidOptions].
type LegacyRenderer struct{}

// Render implements [Renderer].
func (LegacyRenderer) Render(a *Array, opts PrintOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if a.NDim() == 0 {
		return reprPrefix + scalarRepr(a.dtype, a.data[0]) + dtypeSuffix(a.dtype) + ")", nil
	}
	if a.Size() == 0 {
		if a.NDim() > 1 {
			return fmt.Sprintf("%s[], shape=%s, dtype=%s)", reprPrefix, a.shape, a.dtype), nil
		}
		return fmt.Sprintf("%s[], dtype=%s)", reprPrefix, a.dtype), nil
	}

	p := &printer{
		a:         a,
		opts:      opts,
		summarize: opts.summarize(a.Size()),
		strides:   a.shape.strides(),
	}
	p.format = newElementFormatter(a.dtype, p.shownValues(0, 0, nil), opts.Precision)

	// Continuation lines are indented past "array(" and the opening "[".
	prefix := strings.Repeat(" ", len(reprPrefix)+1)
	body := strings.TrimSuffix(p.formatAxis(0, 0, prefix), "\n")
	return reprPrefix + body + dtypeSuffix(a.dtype) + ")", nil
}

// axisItem is one entry along an axis: a shown index, or the ellipsis that
// stands for the skipped run beginning at index.
type axisItem struct {
	index    int
	ellipsis bool
}

// axisItems lists what is shown along an axis of extent n: every index, or
// the leading and trailing edge items around one ellipsis.
func axisItems(n int, opts PrintOptions, summarize bool) []axisItem {
	if !opts.truncated(n, summarize) {
		items := make([]axisItem, n)
		for i := range items {
			items[i] = axisItem{index: i}
		}
		return items
	}
	e := opts.EdgeItems
	items := make([]axisItem, 0, 2*e+1)
	for i := 0; i < e; i++ {
		items = append(items, axisItem{index: i})
	}
	items = append(items, axisItem{index: e, ellipsis: true})
	for i := n - e; i < n; i++ {
		items = append(items, axisItem{index: i})
	}
	return items
}

type printer struct {
	a         *Array
	opts      PrintOptions
	summarize bool
	strides   []int
	format    func(float64) string
}

// shownValues collects the elements that survive summarization. Element
// widths are computed from these only.
func (p *printer) shownValues(axis, offset int, acc []float64) []float64 {
	for _, it := range axisItems(p.a.shape[axis], p.opts, p.summarize) {
		if it.ellipsis {
			continue
		}
		off := offset + it.index*p.strides[axis]
		if axis == p.a.NDim()-1 {
			acc = append(acc, p.a.data[off])
		} else {
			acc = p.shownValues(axis+1, off, acc)
		}
	}
	return acc
}

func (p *printer) formatAxis(axis, offset int, prefix string) string {
	items := axisItems(p.a.shape[axis], p.opts, p.summarize)
	rank := p.a.NDim() - axis

	if rank == 1 {
		var s strings.Builder
		line := prefix
		for k, it := range items {
			word := summaryInsert
			if !it.ellipsis {
				word = p.format(p.a.data[offset+it.index])
				if k < len(items)-1 {
					word += elementSep
				}
			}
			line = p.extendLine(&s, line, word, prefix)
		}
		s.WriteString(line)
		s.WriteString("]\n")
		return "[" + s.String()[len(prefix):]
	}

	sep := strings.TrimRight(elementSep, " ")
	gap := strings.Repeat("\n", max(rank-1, 1))
	s := "["
	for k, it := range items {
		if k > 0 {
			s += prefix
		}
		if it.ellipsis {
			s += summaryInsert + "\n"
			continue
		}
		sub := p.formatAxis(axis+1, offset+it.index*p.strides[axis], prefix+" ")
		if k == len(items)-1 {
			s += strings.TrimRight(sub, " \n") + "]\n"
		} else {
			s = strings.TrimRight(s+sub, " \n") + sep + gap
		}
	}
	return s
}

// extendLine appends word to the current physical line, first flushing the
// line to s when the word would reach the width budget. A line holding
// nothing but the prefix is never flushed.
func (p *printer) extendLine(s *strings.Builder, line, word, prefix string) string {
	trimmed := strings.TrimRight(line, " ")
	need := runewidth.StringWidth(trimmed) + runewidth.StringWidth(strings.TrimRight(word, " "))
	if need >= p.opts.LineWidth && len(line) > len(prefix) {
		s.WriteString(trimmed)
		s.WriteString("\n")
		line = prefix
	}
	return line + word
}

func dtypeSuffix(d DType) string {
	switch d {
	case Float64, Int64, Bool:
		return ""
	default:
		return ", dtype=" + d.String()
	}
}

func newElementFormatter(d DType, shown []float64, precision int) func(float64) string {
	switch {
	case d == Bool:
		return func(v float64) string {
			if v != 0 {
				return " True"
			}
			return "False"
		}
	case d.IsInteger():
		return newIntFormatter(shown)
	default:
		return newFloatFormatter(shown, precision)
	}
}

func newIntFormatter(shown []float64) func(float64) string {
	width := 1
	for _, v := range shown {
		width = max(width, len(strconv.FormatInt(int64(v), 10)))
	}
	return func(v float64) string {
		return fmt.Sprintf("%*d", width, int64(v))
	}
}

// newFloatFormatter picks one layout for every shown value: fixed point
// with a shared width and trailing zeros blanked, or scientific notation
// when magnitudes are very large, very small or spread over more than three
// decades.
func newFloatFormatter(shown []float64, precision int) func(float64) string {
	var maxVal, minVal float64
	nonZero, special := false, false
	for _, v := range shown {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			special = true
		case v == 0:
		case !nonZero:
			maxVal, minVal, nonZero = math.Abs(v), math.Abs(v), true
		default:
			maxVal = max(maxVal, math.Abs(v))
			minVal = min(minVal, math.Abs(v))
		}
	}

	if nonZero && (maxVal >= 1e8 || minVal < 1e-4 || maxVal/minVal > 1000) {
		width := 8 + precision
		if minVal < 1e-99 || maxVal >= 1e100 {
			width++
		}
		return func(v float64) string {
			if s, ok := formatSpecial(v, width); ok {
				return s
			}
			return fmt.Sprintf("%*.*e", width, precision, v)
		}
	}

	digits := 0
	for _, v := range shown {
		if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			digits = max(digits, fracDigits(math.Abs(v), precision))
		}
	}
	digits = min(digits, precision)
	width := len(strconv.FormatInt(int64(maxVal), 10)) + digits + 2
	if special {
		width = max(width, len("nan"), len("inf")+1)
	}
	return func(v float64) string {
		if s, ok := formatSpecial(v, width); ok {
			return s
		}
		s := fmt.Sprintf("%#*.*f", width, digits, v)
		z := strings.TrimRight(s, "0")
		return z + strings.Repeat(" ", len(s)-len(z))
	}
}

// fracDigits counts the significant fractional digits of v at precision.
func fracDigits(v float64, precision int) int {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	return precision - (len(s) - len(strings.TrimRight(s, "0")))
}

func formatSpecial(v float64, width int) (string, bool) {
	switch {
	case math.IsNaN(v):
		return fmt.Sprintf("%*s", width, "nan"), true
	case math.IsInf(v, 1):
		return fmt.Sprintf("%*s", width, "inf"), true
	case math.IsInf(v, -1):
		return fmt.Sprintf("%*s", width, "-inf"), true
	}
	return "", false
}

func scalarRepr(d DType, v float64) string {
	switch {
	case d == Bool:
		if v != 0 {
			return "True"
		}
		return "False"
	case d.IsInteger():
		return strconv.FormatInt(int64(v), 10)
	}
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if av := math.Abs(v); av != 0 && (av < 1e-4 || av >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
