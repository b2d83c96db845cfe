package colormap

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/arthur-debert/colormap/pkg/filesystem"
)

// Field positions within a tab-delimited record
const (
	nameField  = 1
	redField   = 3
	greenField = 4
	blueField  = 5

	// minRecordFields is the field count a line needs to count as a record
	minRecordFields = 4
	// fullRecordFields is the field count needed to read all three channels
	fullRecordFields = blueField + 1

	maxLineSize = 1024 * 1024
)

var channelNames = [...]string{"red", "green", "blue"}

// Stats counts what happened to each input line during a load
type Stats struct {
	Lines       int // lines read
	Records     int // records accepted, including overwrites
	Short       int // lines with fewer than four fields
	Truncated   int // records with four or five fields
	Malformed   int // records dropped under PolicySkip
	Overwritten int // records that replaced an earlier color of the same name
}

// Result is the outcome of a load. On error it holds whatever was
// populated before the failure.
type Result struct {
	Colors ColorMap
	Stats  Stats
}

// SplitFields splits one input line on tabs. A trailing carriage return is
// dropped so CRLF files parse like LF files.
func SplitFields(line string) []string {
	return strings.Split(strings.TrimSuffix(line, "\r"), "\t")
}

// IsRecord reports whether fields has enough entries to be a color record
func IsRecord(fields []string) bool {
	return len(fields) >= minRecordFields
}

// ParseRecord reads the name and channels from a record.
// It returns an INVALID_INPUT error for truncated records and a
// MALFORMED_NUMBER error when a channel is not a decimal integer.
func ParseRecord(fields []string) (Entry, error) {
	if len(fields) < fullRecordFields {
		return Entry{}, errors.Newf(errors.ErrInvalidInput,
			"record has %d fields, need %d", len(fields), fullRecordFields).
			WithDetail("fields", len(fields))
	}

	var channels [3]int
	for i, idx := range []int{redField, greenField, blueField} {
		v, err := strconv.Atoi(fields[idx])
		if err != nil {
			return Entry{}, errors.Wrapf(err, errors.ErrMalformedNumber,
				"%s value %q is not an integer", channelNames[i], fields[idx]).
				WithDetail("field", idx).
				WithDetail("value", fields[idx])
		}
		channels[i] = v
	}

	return Entry{
		Name: fields[nameField],
		RGB:  RGB{R: channels[0], G: channels[1], B: channels[2]},
	}, nil
}

// lineFormat describes one line-oriented input encoding
type lineFormat struct {
	name     string
	split    func(line string) []string
	isRecord func(fields []string) bool
	decode   func(fields []string) (Entry, error)
}

var tableFormat = lineFormat{
	name:     "color table",
	split:    SplitFields,
	isRecord: IsRecord,
	decode:   ParseRecord,
}

// Parse reads a color table from r
func Parse(r io.Reader, opts Options) (*Result, error) {
	return parseLines(r, opts, tableFormat)
}

// Load opens path on fsys and parses it as a color table
func Load(fsys filesystem.FS, path string, opts Options) (*Result, error) {
	return loadFile(fsys, path, opts, tableFormat)
}

func parseLines(r io.Reader, opts Options, lf lineFormat) (*Result, error) {
	logger := opts.logger()
	result := &Result{Colors: New()}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		result.Stats.Lines++
		lineNo := result.Stats.Lines
		line := scanner.Text()
		fields := lf.split(line)

		logger.Trace().
			Int("line", lineNo).
			Str("content", line).
			Int("fields", len(fields)).
			Msg("Read line")

		if !lf.isRecord(fields) {
			result.Stats.Short++
			continue
		}

		entry, err := lf.decode(fields)
		switch {
		case err == nil:
		case errors.IsErrorCode(err, errors.ErrInvalidInput):
			result.Stats.Truncated++
			logger.Warn().
				Int("line", lineNo).
				Int("fields", len(fields)).
				Msg("Skipping truncated record")
			continue
		case opts.OnMalformed == PolicySkip:
			result.Stats.Malformed++
			logger.Warn().
				Err(err).
				Int("line", lineNo).
				Msg("Skipping record with malformed channel")
			continue
		default:
			return result, annotateLine(err, lineNo)
		}

		if result.Colors.Set(entry.Name, entry.RGB) {
			result.Stats.Overwritten++
			logger.Debug().
				Int("line", lineNo).
				Str("name", entry.Name).
				Msg("Color redefined, keeping the later value")
		}
		result.Stats.Records++
	}

	if err := scanner.Err(); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", lf.name).
			WithDetail("line", result.Stats.Lines+1)
	}

	logger.Debug().
		Int("lines", result.Stats.Lines).
		Int("colors", result.Colors.Len()).
		Str("input", lf.name).
		Msg("Colors parsed")

	return result, nil
}

func loadFile(fsys filesystem.FS, path string, opts Options, lf lineFormat) (*Result, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return &Result{Colors: New()}, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	result, err := parseLines(f, opts, lf)
	if err != nil {
		if cmErr, ok := err.(*errors.ColorMapError); ok {
			return result, cmErr.WithDetail("path", path)
		}
		return result, err
	}
	return result, nil
}

func annotateLine(err error, lineNo int) error {
	cmErr, ok := err.(*errors.ColorMapError)
	if !ok {
		return err
	}
	cmErr.Message = "line " + strconv.Itoa(lineNo) + ": " + cmErr.Message
	return cmErr.WithDetail("line", lineNo)
}
