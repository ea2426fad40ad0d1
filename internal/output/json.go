package output

import (
	"encoding/json"
	"io"
	"os"
)

// WriteJSON writes v as JSON to w.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

// PrintJSON writes v as indented JSON to stdout.
func PrintJSON(v any) error {
	return WriteJSON(os.Stdout, v, true)
}
