package styles_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/colormap/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := styles.Default()

	for _, name := range []string{"Header", "ColorName", "Channels", "Hex", "Path", "Success", "Warning", "Error", "Muted"} {
		assert.True(t, r.Has(name), "missing style %s", name)
	}
	assert.False(t, r.Has("Nope"))

	// Unknown styles render text unchanged
	assert.Equal(t, "plain", r.Get("Nope").Render("plain"))
}

func TestParse(t *testing.T) {
	r, err := styles.Parse([]byte(`
colors:
  accent:
    light: "#000000"
    dark: "#ffffff"
styles:
  Accent:
    bold: true
    foreground: accent
    width: 10
`))
	require.NoError(t, err)
	assert.True(t, r.Has("Accent"))
	assert.Equal(t, 10, r.Get("Accent").GetWidth())
	assert.True(t, r.Get("Accent").GetBold())

	_, err = styles.Parse([]byte("colors: [unclosed"))
	assert.Error(t, err)
}

func TestWithRenderer(t *testing.T) {
	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)

	renderer.SetColorProfile(termenv.Ascii)
	plain := styles.Default().WithRenderer(renderer)
	assert.Equal(t, "Red", plain.Get("Muted").Render("Red"))

	renderer.SetColorProfile(termenv.TrueColor)
	rich := styles.Default().WithRenderer(renderer)
	assert.NotEqual(t, "Red", rich.Get("Muted").Render("Red"))
	assert.Contains(t, rich.Get("Muted").Render("Red"), "Red")
}
