package tensorfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var rounded = borderChars{
	topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
	horizontal: "─", vertical: "│",
	topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
	cross: "┼",
}

// alignment controls column text alignment.
type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// The line number column is right aligned, everything else left aligned.
var recordAligns = []alignment{alignRight, alignLeft, alignLeft, alignLeft}

// writeTable draws one bordered row per display line. Annotated lines are
// easy to spot since only they fill the kind and coord columns.
func writeTable(w io.Writer, rt *RichText) error {
	recs := rt.Records()
	rows := make([][]string, len(recs))
	for i, rec := range recs {
		rows[i] = rec.Row()
	}
	widths := computeWidths(recordHeader, rows)

	if err := drawHLine(w, widths, rounded.topLeft, rounded.horizontal, rounded.topTee, rounded.topRight); err != nil {
		return err
	}
	if err := drawRow(w, recordHeader, widths, rounded.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, rounded.leftTee, rounded.horizontal, rounded.cross, rounded.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths, rounded.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, rounded.bottomLeft, rounded.horizontal, rounded.bottomTee, rounded.bottomRight)
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(alignCell(cell, width, recordAligns[i]))
		sb.WriteString(" ")
		sb.WriteString(vert)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
