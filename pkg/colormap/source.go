package colormap

import (
	"path"
	"strings"

	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/arthur-debert/colormap/pkg/filesystem"
)

// Source is an input encoding
type Source string

const (
	// SourceAuto picks the reader from the file extension
	SourceAuto Source = "auto"
	// SourceTable is the tab-delimited color table
	SourceTable Source = "table"
	// SourceCSV is the "R, G, B, Name" export format
	SourceCSV Source = "csv"
)

// ParseSource parses an input encoding name. An empty string means SourceAuto.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return SourceAuto, nil
	case "table", "tsv":
		return SourceTable, nil
	case "csv":
		return SourceCSV, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown input format %q (want auto, table or csv)", s).
			WithDetail("value", s)
	}
}

// Resolve turns SourceAuto into a concrete source for p: CSV for a .csv
// extension, the color table otherwise
func (s Source) Resolve(p string) Source {
	if s != SourceAuto && s != "" {
		return s
	}
	if strings.EqualFold(path.Ext(p), ".csv") {
		return SourceCSV
	}
	return SourceTable
}

// LoadFrom loads path with the reader for src
func LoadFrom(fsys filesystem.FS, path string, src Source, opts Options) (*Result, error) {
	if src.Resolve(path) == SourceCSV {
		return LoadCSV(fsys, path, opts)
	}
	return Load(fsys, path, opts)
}
