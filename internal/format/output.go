// Package format writes machine-readable command output.
package format

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Write writes v in the requested format.
//
// Supported formats:
// - json
// - yaml
func Write(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		return WriteJSON(w, v)
	case "yaml", "yml":
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func WriteJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
