package assets

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveFile writes the library's metadata to a JSON file, grouped by
// category. Only metadata is persisted; host objects are re-linked by
// name on load.
func (l *Library) SaveFile(path string) error {
	data := make(map[Category][]Metadata, len(l.assets))
	for cat, as := range l.assets {
		data[cat] = as
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding asset library: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing asset library: %w", err)
	}
	return nil
}

// LoadFile reads metadata from a JSON file into the library, appending
// to existing categories. Entries with unknown categories are skipped.
func (l *Library) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading asset library: %w", err)
	}

	var data map[Category][]Metadata
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parsing asset library: %w", err)
	}

	for cat, as := range data {
		if !cat.Valid() {
			continue
		}
		for _, m := range as {
			m.Category = cat
			if m.BoundingRadius <= 0 {
				m.BoundingRadius = defaultRadius
			}
			if m.Height <= 0 {
				m.Height = defaultHeight
			}
			if m.MinSpacing <= 0 {
				m.MinSpacing = m.BoundingRadius * 2
			}
			l.assets[cat] = append(l.assets[cat], m)
		}
	}
	return nil
}
