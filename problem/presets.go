// SPDX-License-Identifier: MIT

package problem

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// ErrUnknownPreset indicates a preset name that does not exist.
var ErrUnknownPreset = errors.New("problem: unknown preset")

// PresetNames lists the built-in documents in sorted order.
func PresetNames() []string {
	entries, _ := presetFS.ReadDir("presets") // embedded at build time
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

// Preset parses the built-in document with the given name.
func Preset(name string) (*Problem, error) {
	data, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%q (have %s): %w", name, strings.Join(PresetNames(), ", "), ErrUnknownPreset)
	}

	return Parse(data)
}
