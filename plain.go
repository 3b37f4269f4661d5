package tensorfmt

import (
	"fmt"
	"io"
)

func writePlain(w io.Writer, rt *RichText) error {
	for _, l := range rt.lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
