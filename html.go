package tensorfmt

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, rt *RichText) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if md, ok := rt.Metadata(); ok {
		if _, err := fmt.Fprintf(w, "  <caption>%s %s</caption>\n", md.DType, html.EscapeString(md.Shape.String())); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <thead>\n    <tr>"); err != nil {
		return err
	}
	for i, col := range recordHeader {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(i), html.EscapeString(col)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>\n  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, rec := range rt.Records() {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		row := rec.Row()
		for i, cell := range row {
			if i == len(row)-1 {
				cell = "<pre>" + html.EscapeString(cell) + "</pre>"
			} else {
				cell = html.EscapeString(cell)
			}
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", alignStyle(i), cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "  </tbody>\n</table>")
	return err
}

func alignStyle(col int) string {
	if recordAligns[col] == alignRight {
		return ` style="text-align: right"`
	}
	return ""
}
