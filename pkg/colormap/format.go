package colormap

import (
	"path"
	"strings"

	"github.com/arthur-debert/colormap/pkg/errors"
)

// Format is an export encoding
type Format string

const (
	// FormatCSV writes "R, G, B, Name" lines with no header or quoting
	FormatCSV Format = "csv"
	// FormatYAML writes a list of {name, rgb} mappings
	FormatYAML Format = "yaml"
	// FormatTOML writes one [[color]] table per color
	FormatTOML Format = "toml"
	// FormatXML writes <color> elements under a <colors> root
	FormatXML Format = "xml"
)

// Formats lists every supported export format
func Formats() []Format {
	return []Format{FormatCSV, FormatYAML, FormatTOML, FormatXML}
}

// String returns the format name, mapping the zero value to "csv"
func (f Format) String() string {
	if f == "" {
		return string(FormatCSV)
	}
	return string(f)
}

// ParseFormat parses a format name. An empty string means FormatCSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrUnknownFormat, "unknown export format %q", s).
			WithDetail("value", s)
	}
}

// FormatFromPath guesses a format from a file extension. ok is false when
// the extension names no known format.
func FormatFromPath(p string) (format Format, ok bool) {
	ext := strings.TrimPrefix(path.Ext(p), ".")
	if ext == "" {
		return FormatCSV, false
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return FormatCSV, false
	}
	return f, true
}
