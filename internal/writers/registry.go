// internal/writers/registry.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encoders maps a document format to its serializer.
var Encoders = map[string]func(w io.Writer, v any) error{
	"json": EncodePretty,
	"yaml": EncodeYAML,
}

// Register adds or replaces an encoder (idempotent last-wins).
func Register(format string, fn func(io.Writer, any) error) { Encoders[format] = fn }

// Encode dispatches v to the encoder registered for format.
func Encode(format string, w io.Writer, v any) error {
	fn, ok := Encoders[format]
	if !ok {
		return fmt.Errorf("unknown document format %q (no encoder registered)", format)
	}
	return fn(w, v)
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeYAML writes v as a two-space indented YAML document.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
