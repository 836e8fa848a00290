package cmd

import (
	"bufio"
	"encoding/json"
	"io"
	"iter"
)

// writeJSON encodes v as two-space indented JSON followed by a newline.
// Emoji and other non-ASCII text is written as-is.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeLines copies lines to w as they are produced.
func writeLines(w io.Writer, lines iter.Seq[string]) error {
	bw := bufio.NewWriter(w)
	for line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
