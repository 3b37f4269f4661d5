package tensorfmt

import (
	"fmt"
	"strings"
)

// walker re-derives the coordinate of each rendered body line by descending
// the array shape axis by axis, consuming physical lines in the order the
// renderer emits them. Line text is consulted only to find where innermost
// rows wrap and end.
type walker struct {
	lines       []string
	pos         int
	offset      int
	shape       Shape
	opts        PrintOptions
	summarize   bool
	annotations []Annotation
}

// annotateBody returns the annotation records for body, the rendered lines
// of an array with the given shape. offset is the index of body[0] within
// the final result.
func annotateBody(body []string, offset int, shape Shape, opts PrintOptions) ([]Annotation, error) {
	if shape.NDim() == 0 || shape.NumElements() == 0 {
		return nil, nil
	}
	w := &walker{
		lines:     body,
		offset:    offset,
		shape:     shape,
		opts:      opts,
		summarize: opts.summarize(shape.NumElements()),
	}
	if err := w.axis(0, make([]int, 0, shape.NDim())); err != nil {
		return nil, err
	}
	if rest := len(w.lines) - w.pos; rest > 0 {
		return nil, fmt.Errorf("%w: %d unexpected trailing lines", ErrLayoutMismatch, rest)
	}
	return w.annotations, nil
}

func (w *walker) axis(axis int, prefix []int) error {
	if axis == w.shape.NDim()-1 {
		return w.row(prefix)
	}
	items := axisItems(w.shape[axis], w.opts, w.summarize)
	// Items of rank r are separated by r-2 blank lines; the ellipsis
	// line is followed directly by the next item.
	blanks := w.shape.NDim() - axis - 2
	for k, it := range items {
		if it.ellipsis {
			idx := w.pos
			line, err := w.next()
			if err != nil {
				return err
			}
			if strings.TrimSpace(line) != strings.TrimSpace(summaryInsert) {
				return fmt.Errorf("%w: line %d: expected %q, got %q", ErrLayoutMismatch, w.offset+idx, summaryInsert, line)
			}
			w.annotate(idx, Omitted, w.firstOf(prefix, it.index))
			continue
		}
		if err := w.axis(axis+1, append(prefix, it.index)); err != nil {
			return err
		}
		if k < len(items)-1 {
			if err := w.skipBlank(blanks); err != nil {
				return err
			}
		}
	}
	return nil
}

// row consumes the physical lines of one innermost row. A row wraps over
// several lines when it exceeds the line width.
func (w *walker) row(prefix []int) error {
	n := w.shape[w.shape.NDim()-1]
	truncated := w.opts.truncated(n, w.summarize)
	col := 0
	for {
		idx := w.pos
		line, err := w.next()
		if err != nil {
			return err
		}
		content := line
		if i := strings.LastIndexByte(content, '['); i >= 0 {
			content = content[i+1:]
		}
		closed := false
		if i := strings.IndexByte(content, ']'); i >= 0 {
			content, closed = content[:i], true
		}
		tokens := splitElements(content)
		if len(tokens) == 0 {
			return fmt.Errorf("%w: line %d: no elements in %q", ErrLayoutMismatch, w.offset+idx, line)
		}

		// A wrapped line is annotated at its first element. A line holding
		// only the ellipsis is annotated at the first skipped column.
		start, skipped := -1, -1
		for _, tok := range tokens {
			if tok != ellipsisToken {
				if start < 0 {
					start = col
				}
				col++
				continue
			}
			if !truncated {
				return fmt.Errorf("%w: line %d: ellipsis in a row of %d elements", ErrLayoutMismatch, w.offset+idx, n)
			}
			skipped = col
			col = n - w.opts.EdgeItems
		}
		if start >= 0 {
			w.annotate(idx, Begin, append(cloneInts(prefix), start))
		} else {
			w.annotate(idx, Omitted, append(cloneInts(prefix), skipped))
		}
		if col > n {
			return fmt.Errorf("%w: line %d: row holds more than %d elements", ErrLayoutMismatch, w.offset+idx, n)
		}
		if closed {
			return nil
		}
	}
}

func (w *walker) next() (string, error) {
	if w.pos >= len(w.lines) {
		return "", fmt.Errorf("%w: rendered text ended after %d lines", ErrLayoutMismatch, len(w.lines))
	}
	line := w.lines[w.pos]
	w.pos++
	return line, nil
}

func (w *walker) skipBlank(n int) error {
	for i := 0; i < n; i++ {
		idx := w.pos
		line, err := w.next()
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "" {
			return fmt.Errorf("%w: line %d: expected blank separator, got %q", ErrLayoutMismatch, w.offset+idx, line)
		}
	}
	return nil
}

// firstOf returns the first coordinate inside the slice at index along the
// axis following prefix.
func (w *walker) firstOf(prefix []int, index int) []int {
	c := make([]int, w.shape.NDim())
	copy(c, prefix)
	c[len(prefix)] = index
	return c
}

func (w *walker) annotate(idx int, kind Kind, coord []int) {
	w.annotations = append(w.annotations, Annotation{Line: w.offset + idx, Kind: kind, Coord: coord})
}

func splitElements(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
