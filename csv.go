package tensorfmt

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, rt *RichText) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordHeader); err != nil {
		return err
	}
	for _, rec := range rt.Records() {
		if err := cw.Write(rec.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
