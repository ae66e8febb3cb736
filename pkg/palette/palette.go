// Package palette loads named background palettes from a JSON file.
//
// The file may hold either a list of {name, colors} entries or a mapping
// of name to color list. Colors are "#rgb"/"#rrggbb" hex strings (the
// leading # is optional) or [r, g, b] triples. Malformed entries are
// skipped rather than failing the load, and a built-in "Default" palette
// is always present in the result.
package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// RGB is one palette color, channels 0-255.
type RGB struct {
	R, G, B uint8
}

// Palette is a named, non-empty ordered color sequence.
type Palette struct {
	Name   string
	Colors []RGB
}

// DefaultName is the name of the built-in palette.
const DefaultName = "Default"

// Default returns the built-in palette: three near-white paper tones.
func Default() Palette {
	return Palette{
		Name: DefaultName,
		Colors: []RGB{
			{238, 238, 238},
			{250, 249, 246},
			{220, 220, 220},
		},
	}
}

// Load reads palettes from the JSON file at path. A missing or unparsable
// file yields just the default palette; malformed entries are skipped.
// The default palette is prepended when the file does not define one.
func Load(path string) []Palette {
	def := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return []Palette{def}
	}

	entries := decodeEntries(data)

	var palettes []Palette
	seen := make(map[string]struct{})
	for _, e := range entries {
		p, ok := parseEntry(e)
		if !ok {
			continue
		}
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		palettes = append(palettes, p)
	}

	if _, ok := seen[DefaultName]; !ok {
		palettes = append([]Palette{def}, palettes...)
	}
	return palettes
}

// Map loads the first existing path and indexes the palettes by name.
func Map(paths []string) map[string]Palette {
	var palettes []Palette
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			palettes = Load(path)
			break
		}
	}
	if palettes == nil {
		palettes = []Palette{Default()}
	}
	m := make(map[string]Palette, len(palettes))
	for _, p := range palettes {
		m[p.Name] = p
	}
	return m
}

// entry is one palette before color parsing.
type entry struct {
	name   string
	colors []json.RawMessage
}

// decodeEntries accepts both supported file shapes.
func decodeEntries(data []byte) []entry {
	// Shape 1: a list of {name, colors} objects, possibly under "palettes".
	type rawEntry struct {
		Name   string            `json:"name"`
		Colors []json.RawMessage `json:"colors"`
	}
	var list []rawEntry
	if err := json.Unmarshal(data, &list); err == nil {
		out := make([]entry, 0, len(list))
		for _, r := range list {
			out = append(out, entry{name: r.Name, colors: r.Colors})
		}
		return out
	}
	var wrapped struct {
		Palettes []rawEntry `json:"palettes"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Palettes != nil {
		out := make([]entry, 0, len(wrapped.Palettes))
		for _, r := range wrapped.Palettes {
			out = append(out, entry{name: r.Name, colors: r.Colors})
		}
		return out
	}

	// Shape 2: a mapping of name to color list. Iterate deterministically.
	var mapping map[string][]json.RawMessage
	if err := json.Unmarshal(data, &mapping); err == nil {
		names := make([]string, 0, len(mapping))
		for name := range mapping {
			names = append(names, name)
		}
		sort.Strings(names)
		out := make([]entry, 0, len(names))
		for _, name := range names {
			out = append(out, entry{name: name, colors: mapping[name]})
		}
		return out
	}
	return nil
}

func parseEntry(e entry) (Palette, bool) {
	if e.name == "" || len(e.colors) == 0 {
		return Palette{}, false
	}
	var colors []RGB
	for _, raw := range e.colors {
		if c, err := ParseColor(raw); err == nil {
			colors = append(colors, c)
		}
	}
	if len(colors) == 0 {
		return Palette{}, false
	}
	return Palette{Name: e.name, Colors: colors}, true
}

// ParseColor parses one JSON color value: a hex string or [r,g,b] triple.
func ParseColor(raw json.RawMessage) (RGB, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseHex(s)
	}
	var triple []int
	if err := json.Unmarshal(raw, &triple); err == nil {
		if len(triple) != 3 {
			return RGB{}, fmt.Errorf("color triple must have 3 channels, got %d", len(triple))
		}
		for _, ch := range triple {
			if ch < 0 || ch > 255 {
				return RGB{}, fmt.Errorf("color channel %d out of range", ch)
			}
		}
		return RGB{uint8(triple[0]), uint8(triple[1]), uint8(triple[2])}, nil
	}
	return RGB{}, fmt.Errorf("unsupported color value: %s", raw)
}

func parseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("hex color must have 3 or 6 digits: %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
