package tensorfmt

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, rt *RichText) error {
	if _, err := fmt.Fprintln(w, strings.Join(recordHeader, "\t")); err != nil {
		return err
	}
	for _, rec := range rt.Records() {
		if _, err := fmt.Fprintln(w, strings.Join(rec.Row(), "\t")); err != nil {
			return err
		}
	}
	return nil
}
