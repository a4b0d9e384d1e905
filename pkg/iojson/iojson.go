// Package iojson contains helpers for writing JSON output from commands.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write marshals obj with indentation and writes it to w followed by a
// newline.
func Write(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
