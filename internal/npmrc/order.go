package npmrc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// conventionalOrder lists the package.json fields that conventionally lead
// the document. Remaining fields follow lexicographically; nested mappings
// are already key-sorted by encoding/json.
var conventionalOrder = []string{
	"name",
	"version",
	"private",
	"description",
	"keywords",
	"main",
	"scripts",
	"dependencies",
	"devDependencies",
}

// MarshalConfig serializes the pruned document as 2-space-indented JSON with
// deterministic key ordering, suitable for readable diffs.
func (m *Manager) MarshalConfig() ([]byte, error) {
	cfg := m.Config()
	keys := orderedKeys(cfg)

	var buf bytes.Buffer
	if len(keys) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("{\n")
	for i, k := range keys {
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", k, err)
		}

		valJSON, err := json.MarshalIndent(cfg[k], "  ", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", k, err)
		}

		fmt.Fprintf(&buf, "  %s: %s", keyJSON, valJSON)
		if i < len(keys)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// orderedKeys returns the document's keys: conventional fields first in
// their fixed order, then everything else lexicographically.
func orderedKeys(cfg map[string]any) []string {
	seen := make(map[string]bool, len(conventionalOrder))
	keys := make([]string, 0, len(cfg))

	for _, k := range conventionalOrder {
		if _, ok := cfg[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}

	rest := make([]string, 0, len(cfg))
	for k := range cfg {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}
