package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes the projection as pretty-printed JSON: one object per
// row keyed by column name, empty cells omitted. Go marshals map keys in
// sorted order, so the output is stable across runs.
func WriteJSON(path string, p Projection) error {
	objs := make([]map[string]string, 0, len(p.Rows))
	for _, row := range p.Rows {
		obj := make(map[string]string, len(p.Schema))
		for i, name := range p.Schema {
			if i < len(row) && row[i] != "" {
				obj[name] = row[i]
			}
		}
		objs = append(objs, obj)
	}

	data, err := json.MarshalIndent(objs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write JSON dump: %w", err)
	}
	return nil
}
