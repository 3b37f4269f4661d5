package tensorfmt

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, rt *RichText) error {
	recs := rt.Records()
	rows := make([][]string, len(recs))
	for i, rec := range recs {
		rows[i] = rec.Row()
		// Leading spaces and pipes carry meaning in display lines.
		rows[i][3] = "`" + strings.ReplaceAll(rows[i][3], "|", `\|`) + "`"
	}

	// Minimum 3 for alignment markers.
	widths := computeWidths(recordHeader, rows)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	if err := writeMarkdownRow(w, recordHeader, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		if recordAligns[i] == alignRight {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, recordAligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
