package colormap_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/colormap/pkg/colormap"
	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/arthur-debert/colormap/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCSV(t *testing.T, content string, opts colormap.Options) (*colormap.Result, error) {
	t.Helper()
	return colormap.ParseCSV(strings.NewReader(content), opts)
}

func TestSplitCSVLine(t *testing.T) {
	assert.Equal(t, []string{"1", " 2", " 3", " Burnt, Odd"}, colormap.SplitCSVLine("1, 2, 3, Burnt, Odd"))
	assert.Equal(t, []string{"1", " 2"}, colormap.SplitCSVLine("1, 2\r"))
	assert.Nil(t, colormap.SplitCSVLine("  "))
}

func TestParseCSVRecord(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		want    colormap.Entry
		errCode errors.ErrorCode
	}{
		{
			name:   "well formed",
			fields: []string{"255", " 0", " 0", " Red"},
			want:   colormap.Entry{Name: "Red", RGB: colormap.RGB{R: 255}},
		},
		{
			name:   "name keeps inner commas",
			fields: []string{"1", " 2", " 3", " Burnt, Odd"},
			want:   colormap.Entry{Name: "Burnt, Odd", RGB: colormap.RGB{R: 1, G: 2, B: 3}},
		},
		{
			name:    "empty name",
			fields:  []string{"1", "2", "3", "  "},
			errCode: errors.ErrInvalidInput,
		},
		{
			name:    "malformed channel",
			fields:  []string{"1", " x", " 3", " Red"},
			errCode: errors.ErrMalformedNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colormap.ParseCSVRecord(tt.fields)
			if tt.errCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.errCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCSV(t *testing.T) {
	content := "255, 0, 0, Red\n" +
		"\n" +
		"1, 2\n" +
		"0, 0, 128,   \n" +
		"190, 190, 190, Gray\r\n" +
		"10, 10, 10, Gray\n"

	result, err := parseCSV(t, content, colormap.Options{})
	require.NoError(t, err)

	assert.Equal(t, colormap.ColorMap{
		"Red":  {R: 255},
		"Gray": {R: 10, G: 10, B: 10},
	}, result.Colors)
	assert.Equal(t, colormap.Stats{Lines: 6, Records: 3, Short: 2, Truncated: 1, Overwritten: 1}, result.Stats)
}

func TestParseCSV_Malformed(t *testing.T) {
	content := "255, 0, 0, Red\n1, x, 3, Bad\n0, 0, 128, Navy\n"

	t.Run("abort", func(t *testing.T) {
		result, err := parseCSV(t, content, colormap.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedNumber))
		assert.Equal(t, 2, errors.GetErrorDetails(err)["line"])
		assert.Equal(t, colormap.ColorMap{"Red": {R: 255}}, result.Colors)
	})

	t.Run("skip", func(t *testing.T) {
		result, err := parseCSV(t, content, colormap.Options{OnMalformed: colormap.PolicySkip})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Colors.Len())
		assert.Equal(t, 1, result.Stats.Malformed)
	})
}

func TestParseCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, colormap.Write(&buf, sampleMap(), colormap.FormatCSV))

	result, err := colormap.ParseCSV(&buf, colormap.Options{})
	require.NoError(t, err)
	assert.Equal(t, sampleMap(), result.Colors)
	assert.Equal(t, sampleMap().Len(), result.Stats.Records)
}

func TestLoadCSV(t *testing.T) {
	fsys := testutil.NewTestFS()
	require.NoError(t, colormap.Export(fsys, "/colormap.csv", sampleMap(), colormap.FormatCSV))

	result, err := colormap.LoadCSV(fsys, "/colormap.csv", colormap.Options{})
	require.NoError(t, err)
	assert.Equal(t, sampleMap(), result.Colors)

	result, err = colormap.LoadCSV(fsys, "/missing.csv", colormap.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	assert.Equal(t, 0, result.Colors.Len())
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		in   string
		want colormap.Source
	}{
		{"", colormap.SourceAuto},
		{"auto", colormap.SourceAuto},
		{"table", colormap.SourceTable},
		{"TSV", colormap.SourceTable},
		{"csv", colormap.SourceCSV},
	}
	for _, tt := range tests {
		got, err := colormap.ParseSource(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := colormap.ParseSource("xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSourceResolve(t *testing.T) {
	assert.Equal(t, colormap.SourceCSV, colormap.SourceAuto.Resolve("out/colormap.CSV"))
	assert.Equal(t, colormap.SourceTable, colormap.SourceAuto.Resolve("rawColorFile.txt"))
	assert.Equal(t, colormap.SourceTable, colormap.SourceTable.Resolve("colors.csv"))
	assert.Equal(t, colormap.SourceCSV, colormap.SourceCSV.Resolve("colors.txt"))
}

func TestLoadFrom(t *testing.T) {
	fsys := testutil.NewTestFS()
	require.NoError(t, colormap.Export(fsys, "/colormap.csv", sampleMap(), colormap.FormatCSV))
	testutil.WriteFS(t, fsys, "/colors.txt", testutil.ColorTable(
		testutil.Record("1", "Red", "X", "255", "0", "0"),
	))

	fromCSV, err := colormap.LoadFrom(fsys, "/colormap.csv", colormap.SourceAuto, colormap.Options{})
	require.NoError(t, err)
	assert.Equal(t, sampleMap(), fromCSV.Colors)

	fromTable, err := colormap.LoadFrom(fsys, "/colors.txt", colormap.SourceAuto, colormap.Options{})
	require.NoError(t, err)
	assert.Equal(t, colormap.ColorMap{"Red": {R: 255}}, fromTable.Colors)
}
