// Package preset loads named roll presets from YAML content files, so the
// REPL can resolve shorthand like "stats" to "3d6" before evaluation.
package preset

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/nicholasturner1/dnd-roller/internal/dice"
)

// yamlPresetFile is the top-level YAML structure for preset files.
type yamlPresetFile struct {
	Presets map[string]string `yaml:"presets"`
}

// Table maps preset names to dice expressions.
//
// Invariant: every stored expression splits cleanly; resolution never hands
// the evaluator a malformed string.
type Table struct {
	presets map[string]string
}

// LoadFromFile reads and validates a preset YAML file.
//
// Precondition: path must point to a valid YAML preset file.
// Postcondition: Returns a validated Table or a non-nil error.
func LoadFromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file %s: %w", path, err)
	}
	t, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("preset file %s: %w", path, err)
	}
	return t, nil
}

// LoadFromBytes parses and validates presets from YAML bytes.
//
// Postcondition: Returns a validated Table or a non-nil error.
func LoadFromBytes(data []byte) (*Table, error) {
	var file yamlPresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing preset YAML: %w", err)
	}

	presets := make(map[string]string, len(file.Presets))
	for name, expr := range file.Presets {
		if name == "" {
			return nil, fmt.Errorf("preset with empty name")
		}
		if expr == "" {
			return nil, fmt.Errorf("preset %q has an empty expression", name)
		}
		// Splitting classifies every term without rolling anything.
		if _, err := dice.Split(expr); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets[name] = expr
	}

	return &Table{presets: presets}, nil
}

// Resolve returns the expression registered under name.
func (t *Table) Resolve(name string) (string, bool) {
	expr, ok := t.presets[name]
	return expr, ok
}

// Names returns all preset names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.presets))
	for name := range t.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
