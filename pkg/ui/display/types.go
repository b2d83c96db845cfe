package display

import (
	"github.com/arthur-debert/colormap/pkg/colormap"
)

// ConvertResult describes the outcome of a convert run for rendering
type ConvertResult struct {
	Input  string          // path that was read
	Output string          // path that was (or would have been) written
	Format colormap.Format // export encoding
	Colors int             // distinct colors in the map
	Stats  colormap.Stats  // per-line accounting from the load
	DryRun bool            // true when nothing was written
}

// Skipped returns how many input lines did not produce a color
func (r ConvertResult) Skipped() int {
	return r.Stats.Short + r.Stats.Truncated + r.Stats.Malformed
}

// ColorRow is one color prepared for display
type ColorRow struct {
	Name string
	RGB  colormap.RGB
}

// RowsFromMap lists the colors of m sorted by name
func RowsFromMap(m colormap.ColorMap) []ColorRow {
	entries := m.Entries()
	rows := make([]ColorRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ColorRow{Name: e.Name, RGB: e.RGB})
	}
	return rows
}
