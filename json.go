package tensorfmt

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, rt *RichText) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(newDocument(rt))
}
