package text_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arthur-debert/colormap/pkg/colormap"
	"github.com/arthur-debert/colormap/pkg/ui/display"
	"github.com/arthur-debert/colormap/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderColors(t *testing.T) {
	buf := &bytes.Buffer{}
	r := text.New(buf)

	rows := []display.ColorRow{
		{Name: "Gray", RGB: colormap.RGB{R: 128, G: 128, B: 128}},
		{Name: "Red", RGB: colormap.RGB{R: 255}},
	}
	require.NoError(t, r.RenderColors(rows))

	expected := "" +
		"128, 128, 128  #808080  Gray\n" +
		"255, 0, 0      #ff0000  Red\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderColorsEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, text.New(buf).RenderColors(nil))
	assert.Equal(t, "No colors found\n", buf.String())
}

func TestRenderConvert(t *testing.T) {
	t.Run("clean run", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := text.New(buf).RenderConvert(display.ConvertResult{
			Input:  "rawColorFile.txt",
			Output: "colormap.csv",
			Format: colormap.FormatCSV,
			Colors: 2,
			Stats:  colormap.Stats{Lines: 2, Records: 2},
		})
		require.NoError(t, err)

		expected := "" +
			"Wrote 2 colors to colormap.csv (csv)\n" +
			"  read 2 lines from rawColorFile.txt\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("dry run with skipped lines", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := text.New(buf).RenderConvert(display.ConvertResult{
			Input:  "in.txt",
			Output: "out.yaml",
			Format: colormap.FormatYAML,
			Colors: 1,
			Stats:  colormap.Stats{Lines: 5, Records: 2, Short: 1, Truncated: 1, Malformed: 1, Overwritten: 1},
			DryRun: true,
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Would write 1 colors to out.yaml (yaml)")
		assert.Contains(t, out, "skipped 3 lines (1 short, 1 truncated, 1 malformed)")
		assert.Contains(t, out, "1 duplicate names, later definitions kept")
	})
}

func TestRenderError(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, text.New(buf).RenderError(errors.New("cannot open")))
	assert.Equal(t, "Error: cannot open\n", buf.String())
}
