package config

import (
	"encoding/json"
	"strings"
)

// FamilyPrefix marks a reference value naming an auto-tile family instead of
// an image path, e.g. "@grass"
const FamilyPrefix = "@"

// solidMarker is the trailing blueprint character that makes a cell solid
const solidMarker = 's'

// LevelConfig is a static level loaded from a JSON file.
// Width is the number of columns and Height the number of rows.
type LevelConfig struct {
	Name       string
	Width      int
	Height     int
	References map[string]string
	Blueprint  [][]string
}

// levelFile mirrors the JSON layout; pointer and nil-able fields let the
// parser tell missing keys from zero values
type levelFile struct {
	Width      *int              `json:"width"`
	Height     *int              `json:"height"`
	References map[string]string `json:"references"`
	Blueprint  [][]string        `json:"blueprint"`
}

// Cell is a decoded blueprint cell
type Cell struct {
	Empty bool
	Key   string
	Solid bool
}

// ParseCell decodes a blueprint cell: "" is a filler tile, anything else is a
// reference key followed by a solidity marker ('s' = solid).
func ParseCell(raw string) Cell {
	if raw == "" {
		return Cell{Empty: true}
	}
	last := len(raw) - 1
	return Cell{
		Key:   raw[:last],
		Solid: raw[last] == solidMarker,
	}
}

// ParseLevel decodes and validates a level file
func ParseLevel(data []byte, name string) (*LevelConfig, error) {
	var raw levelFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigurationError{Source: name, Reason: "invalid JSON", Err: err}
	}

	switch {
	case raw.Width == nil:
		return nil, configErrorf(name, "missing key %q", "width")
	case raw.Height == nil:
		return nil, configErrorf(name, "missing key %q", "height")
	case raw.References == nil:
		return nil, configErrorf(name, "missing key %q", "references")
	case raw.Blueprint == nil:
		return nil, configErrorf(name, "missing key %q", "blueprint")
	}

	lvl := &LevelConfig{
		Name:       name,
		Width:      *raw.Width,
		Height:     *raw.Height,
		References: raw.References,
		Blueprint:  raw.Blueprint,
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// Validate checks the blueprint against the declared size and references
func (l *LevelConfig) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return configErrorf(l.Name, "level size must be positive, got %dx%d", l.Width, l.Height)
	}
	if len(l.Blueprint) != l.Height {
		return configErrorf(l.Name, "blueprint has %d rows, height is %d", len(l.Blueprint), l.Height)
	}
	for r, row := range l.Blueprint {
		if len(row) != l.Width {
			return configErrorf(l.Name, "blueprint row %d has %d cells, width is %d", r, len(row), l.Width)
		}
		for c, raw := range row {
			cell := ParseCell(raw)
			if cell.Empty {
				continue
			}
			if cell.Key == "" {
				return configErrorf(l.Name, "cell (%d,%d) %q has no reference key", r, c, raw)
			}
			if _, ok := l.References[cell.Key]; !ok {
				return configErrorf(l.Name, "cell (%d,%d) references unknown key %q", r, c, cell.Key)
			}
		}
	}
	return nil
}

// ReferenceFamily returns the auto-tile family named by a reference value
func ReferenceFamily(value string) (family string, ok bool) {
	if !strings.HasPrefix(value, FamilyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(value, FamilyPrefix), true
}

// ImagePaths returns the distinct image paths the level references
func (l *LevelConfig) ImagePaths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, v := range l.References {
		if _, isFamily := ReferenceFamily(v); isFamily || seen[v] {
			continue
		}
		seen[v] = true
		paths = append(paths, v)
	}
	return paths
}
