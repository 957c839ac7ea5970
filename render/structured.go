// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format names an output format accepted by Write.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the accepted output formats.
func Formats() []Format { return []Format{FormatText, FormatYAML, FormatJSON} }

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}

	return "", fmt.Errorf("render: unknown output format %q, want one of %v", s, Formats())
}

// YAML writes v as a YAML document.
func YAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render: yaml: %w", err)
	}

	return enc.Close()
}

// JSON writes v as indented JSON.
func JSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render: json: %w", err)
	}

	return nil
}
