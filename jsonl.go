package tensorfmt

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, rt *RichText) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, rec := range rt.Records() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
