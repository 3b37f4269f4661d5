package tensorfmt

import (
	"fmt"
	"sort"
)

// Locate finds the display line that shows coord. omitted is true when coord
// falls inside a run that was summarized away and line is the ellipsis line
// standing in for it.
//
// Checks run in order: [ErrMetadataUnavailable], [ErrDimensionMismatch],
// [ErrNegativeIndex], [ErrIndexOutOfRange].
func Locate(rt *RichText, coord []int) (omitted bool, line int, err error) {
	if rt == nil || rt.metadata == nil {
		return false, 0, ErrMetadataUnavailable
	}
	shape := rt.metadata.Shape
	if len(coord) != len(shape) {
		return false, 0, fmt.Errorf("%w: %d indices for shape %s", ErrDimensionMismatch, len(coord), shape)
	}
	for _, c := range coord {
		if c < 0 {
			return false, 0, fmt.Errorf("%w: %v", ErrNegativeIndex, coord)
		}
	}
	for i, c := range coord {
		if c >= shape[i] {
			return false, 0, fmt.Errorf("%w: %v for shape %s", ErrIndexOutOfRange, coord, shape)
		}
	}

	// A scalar renders as a single body line.
	if len(shape) == 0 {
		return false, len(rt.lines) - 1, nil
	}

	i := sort.Search(len(rt.annotations), func(i int) bool {
		return compareCoords(rt.annotations[i].Coord, coord) > 0
	})
	if i == 0 {
		return false, 0, fmt.Errorf("%w: no line shows %v", ErrLayoutMismatch, coord)
	}
	a := rt.annotations[i-1]
	return a.Kind == Omitted, a.Line, nil
}

// Locate is shorthand for [Locate](rt, coord).
func (rt *RichText) Locate(coord []int) (omitted bool, line int, err error) {
	return Locate(rt, coord)
}
