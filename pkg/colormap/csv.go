package colormap

import (
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/arthur-debert/colormap/pkg/filesystem"
)

// csvFields is the number of comma-separated tokens in an exported line
const csvFields = 4

var csvFormat = lineFormat{
	name:     "color map",
	split:    SplitCSVLine,
	isRecord: IsCSVRecord,
	decode:   ParseCSVRecord,
}

// SplitCSVLine splits an exported "R, G, B, Name" line. It splits on the
// first three commas only, so the name keeps any commas of its own.
func SplitCSVLine(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	return strings.SplitN(line, ",", csvFields)
}

// IsCSVRecord reports whether fields holds all four tokens
func IsCSVRecord(fields []string) bool {
	return len(fields) == csvFields
}

// ParseCSVRecord reads channels and name from the tokens of an exported
// line. Whitespace around every token is dropped. An empty name is an
// INVALID_INPUT error, a non-integer channel a MALFORMED_NUMBER error.
func ParseCSVRecord(fields []string) (Entry, error) {
	if len(fields) != csvFields {
		return Entry{}, errors.Newf(errors.ErrInvalidInput,
			"line has %d tokens, need %d", len(fields), csvFields).
			WithDetail("fields", len(fields))
	}

	name := strings.TrimSpace(fields[3])
	if name == "" {
		return Entry{}, errors.New(errors.ErrInvalidInput, "color name is empty").
			WithDetail("fields", len(fields))
	}

	var channels [3]int
	for i := range channels {
		raw := strings.TrimSpace(fields[i])
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Entry{}, errors.Wrapf(err, errors.ErrMalformedNumber,
				"%s value %q is not an integer", channelNames[i], raw).
				WithDetail("field", i).
				WithDetail("value", raw)
		}
		channels[i] = v
	}

	return Entry{
		Name: name,
		RGB:  RGB{R: channels[0], G: channels[1], B: channels[2]},
	}, nil
}

// ParseCSV reads colors back from the CSV export format. Blank lines and
// lines with fewer than four tokens are skipped. Lines with an empty name
// count as truncated. Malformed channels follow opts.OnMalformed.
//
// Names are trimmed, so a name with leading or trailing spaces does not
// survive a round trip unchanged.
func ParseCSV(r io.Reader, opts Options) (*Result, error) {
	return parseLines(r, opts, csvFormat)
}

// LoadCSV opens path on fsys and parses it with ParseCSV
func LoadCSV(fsys filesystem.FS, path string, opts Options) (*Result, error) {
	return loadFile(fsys, path, opts, csvFormat)
}
