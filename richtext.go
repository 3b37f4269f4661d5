package tensorfmt

import (
	"fmt"
	"sort"
	"strings"
)

// Kind distinguishes the two annotation records a display line can carry.
type Kind int

const (
	// Begin marks a line whose first displayed element is at Coord.
	Begin Kind = iota
	// Omitted marks an ellipsis line standing in for a skipped run that
	// starts at Coord.
	Omitted
)

// String returns "begin" or "omitted".
func (k Kind) String() string {
	switch k {
	case Begin:
		return "begin"
	case Omitted:
		return "omitted"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Begin, Omitted:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown annotation kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "begin":
		*k = Begin
	case "omitted":
		*k = Omitted
	default:
		return fmt.Errorf("unknown annotation kind %q", b)
	}
	return nil
}

// Annotation ties a display line to an array coordinate.
type Annotation struct {
	Line  int   `json:"line" yaml:"line"`
	Kind  Kind  `json:"kind" yaml:"kind"`
	Coord []int `json:"coord" yaml:"coord,flow"`
}

// Metadata describes the formatted array. It is attached whether or not the
// metadata lines were displayed.
type Metadata struct {
	DType DType `json:"dtype" yaml:"dtype"`
	Shape Shape `json:"shape" yaml:"shape,flow"`
}

// RichText is the result of [Format]: display lines plus the line-to-
// coordinate index. A RichText is never modified after Format returns, so
// it is safe for concurrent readers.
type RichText struct {
	lines []string
	// sorted by Line, at most one per line
	annotations []Annotation
	metadata    *Metadata
}

// Lines returns a copy of the display lines.
func (rt *RichText) Lines() []string {
	out := make([]string, len(rt.lines))
	copy(out, rt.lines)
	return out
}

// Len returns the number of display lines.
func (rt *RichText) Len() int { return len(rt.lines) }

// Line returns the display line at index i.
func (rt *RichText) Line(i int) string { return rt.lines[i] }

// Annotations returns a copy of all annotation records in line order.
func (rt *RichText) Annotations() []Annotation {
	out := make([]Annotation, len(rt.annotations))
	for i, a := range rt.annotations {
		out[i] = Annotation{Line: a.Line, Kind: a.Kind, Coord: cloneInts(a.Coord)}
	}
	return out
}

// Annotation returns the record attached to line, if any.
func (rt *RichText) Annotation(line int) (Annotation, bool) {
	i := sort.Search(len(rt.annotations), func(i int) bool {
		return rt.annotations[i].Line >= line
	})
	if i < len(rt.annotations) && rt.annotations[i].Line == line {
		a := rt.annotations[i]
		return Annotation{Line: a.Line, Kind: a.Kind, Coord: cloneInts(a.Coord)}, true
	}
	return Annotation{}, false
}

// Metadata returns the array metadata. ok is false when the result was
// built from an absent array.
func (rt *RichText) Metadata() (md Metadata, ok bool) {
	if rt.metadata == nil {
		return Metadata{}, false
	}
	return Metadata{DType: rt.metadata.DType, Shape: rt.metadata.Shape.Clone()}, true
}

// String joins the display lines with newlines.
func (rt *RichText) String() string { return strings.Join(rt.lines, "\n") }

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	c := make([]int, len(s))
	copy(c, s)
	return c
}

// compareCoords orders coordinates lexicographically.
func compareCoords(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
