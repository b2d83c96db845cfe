package colormap

import (
	"fmt"
	"sort"
)

// RGB is a red, green, blue triplet. Components are intended to be in
// [0,255] but are not validated.
type RGB struct {
	R int
	G int
	B int
}

// Red returns the red component
func (c RGB) Red() int { return c.R }

// Green returns the green component
func (c RGB) Green() int { return c.G }

// Blue returns the blue component
func (c RGB) Blue() int { return c.B }

// String formats the triplet the way the CSV export does: "R, G, B"
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// Hex returns the #rrggbb form. Out of range components are clamped for
// display only.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

func clampByte(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return v
	}
}

// Entry is one named color
type Entry struct {
	Name string
	RGB  RGB
}

// ColorMap maps a color name to its RGB triplet
type ColorMap map[string]RGB

// New returns an empty ColorMap
func New() ColorMap {
	return make(ColorMap)
}

// Set stores rgb under name and reports whether an earlier value was replaced
func (m ColorMap) Set(name string, rgb RGB) bool {
	_, existed := m[name]
	m[name] = rgb
	return existed
}

// Get looks a color up by name
func (m ColorMap) Get(name string) (RGB, bool) {
	rgb, ok := m[name]
	return rgb, ok
}

// Len returns the number of colors
func (m ColorMap) Len() int {
	return len(m)
}

// Names returns the color names in sorted order
func (m ColorMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all colors sorted by name
func (m ColorMap) Entries() []Entry {
	names := m.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, RGB: m[name]})
	}
	return entries
}
