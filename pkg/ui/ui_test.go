package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arthur-debert/colormap/pkg/colormap"
	"github.com/arthur-debert/colormap/pkg/ui"
	"github.com/arthur-debert/colormap/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "create terminal renderer", format: ui.FormatTerminal},
		{name: "create text renderer", format: ui.FormatText},
		{name: "create auto renderer with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.Contains(t, err.Error(), "unknown format")
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}
}

func TestAutoRendererWithBufferIsPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatAuto, buf)
	require.NoError(t, err)

	m := colormap.New()
	m.Set("Red", colormap.RGB{R: 255})
	require.NoError(t, renderer.RenderColors(display.RowsFromMap(m)))

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "255, 0, 0")
	assert.Contains(t, buf.String(), "Red")
}

func TestRendererInterface(t *testing.T) {
	m := colormap.New()
	m.Set("Navy Blue", colormap.RGB{R: 0, G: 0, B: 128})
	m.Set("Red", colormap.RGB{R: 255})

	for _, format := range []ui.Format{ui.FormatTerminal, ui.FormatText} {
		t.Run(format.String()+" renderer implements interface", func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			require.NoError(t, renderer.RenderColors(display.RowsFromMap(m)))
			assert.Contains(t, buf.String(), "Navy Blue")
			assert.Contains(t, buf.String(), "#000080")

			buf.Reset()
			require.NoError(t, renderer.RenderConvert(display.ConvertResult{
				Input:  "in.txt",
				Output: "out.csv",
				Format: colormap.FormatCSV,
				Colors: 2,
				Stats:  colormap.Stats{Lines: 3, Records: 2, Short: 1},
			}))
			assert.Contains(t, buf.String(), "out.csv")
			assert.Contains(t, buf.String(), "in.txt")

			buf.Reset()
			require.NoError(t, renderer.RenderError(errors.New("boom")))
			assert.Contains(t, buf.String(), "boom")
		})
	}
}
