package fakejson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Write encodes ds as compact JSON and hands it to w in a single Write call.
// No trailing newline is emitted and HTML characters are left unescaped.
func Write(w io.Writer, ds Dataset) error {
	if ds == nil {
		ds = Dataset{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}
