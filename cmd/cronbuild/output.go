package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/holidayguard/cronbuild/internal/constants"
	"github.com/holidayguard/cronbuild/internal/cronexpr"
)

// writeView prints v as YAML or JSON.
func writeView(w io.Writer, v cronexpr.View, format string) error {
	switch format {
	case constants.OutputYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case constants.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected: %s, %s)", format, constants.OutputYAML, constants.OutputJSON)
	}
}

// readView decodes a YAML or JSON state document. JSON is valid YAML, so
// a single decoder serves both.
func readView(r io.Reader) (cronexpr.View, error) {
	var v cronexpr.View
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return cronexpr.View{}, fmt.Errorf("failed to decode state: %w", err)
	}
	return v, nil
}
