// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/colormap/pkg/ui/display"
	"github.com/arthur-debert/colormap/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// swatchWidth is the number of cells painted per color
const swatchWidth = 6

// Renderer paints color swatches and styled summaries
type Renderer struct {
	output   io.Writer
	renderer *lipgloss.Renderer
	styles   *styles.Registry
}

// New creates a new terminal renderer writing to w
func New(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return NewWithRenderer(w, lr)
}

// NewWithRenderer uses an explicit lipgloss renderer, letting callers pin the
// color profile
func NewWithRenderer(w io.Writer, lr *lipgloss.Renderer) *Renderer {
	return &Renderer{
		output:   w,
		renderer: lr,
		styles:   styles.Default().WithRenderer(lr),
	}
}

// Swatch renders a block painted with the color's background
func (r *Renderer) Swatch(row display.ColorRow) string {
	return r.renderer.NewStyle().
		Background(lipgloss.Color(row.RGB.Hex())).
		Render(strings.Repeat(" ", swatchWidth))
}

// RenderColors renders one swatch line per color
func (r *Renderer) RenderColors(rows []display.ColorRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.output, r.styles.Get("Muted").Render("No colors found"))
		return err
	}

	for _, row := range rows {
		line := fmt.Sprintf("%s %s %s %s",
			r.Swatch(row),
			r.styles.Get("Channels").Render(row.RGB.String()),
			r.styles.Get("Hex").Render(row.RGB.Hex()),
			r.styles.Get("ColorName").Render(row.Name),
		)
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderConvert renders the summary of a convert run
func (r *Renderer) RenderConvert(result display.ConvertResult) error {
	var b strings.Builder

	verb := "Wrote"
	if result.DryRun {
		verb = "Would write"
	}
	b.WriteString(r.styles.Get("Success").Render(fmt.Sprintf("✓ %s %d colors", verb, result.Colors)))
	b.WriteString(" to ")
	b.WriteString(r.styles.Get("Path").Render(result.Output))
	b.WriteString(r.styles.Get("Muted").Render(fmt.Sprintf(" (%s)", result.Format)))
	b.WriteString("\n")

	b.WriteString(r.styles.Get("Muted").Render(fmt.Sprintf("  read %d lines from %s", result.Stats.Lines, result.Input)))
	b.WriteString("\n")

	if skipped := result.Skipped(); skipped > 0 {
		b.WriteString(r.styles.Get("Warning").Render(fmt.Sprintf(
			"  skipped %d lines (%d short, %d truncated, %d malformed)",
			skipped, result.Stats.Short, result.Stats.Truncated, result.Stats.Malformed)))
		b.WriteString("\n")
	}
	if result.Stats.Overwritten > 0 {
		b.WriteString(r.styles.Get("Warning").Render(fmt.Sprintf(
			"  %d duplicate names, later definitions kept", result.Stats.Overwritten)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.styles.Get("Error").Render(fmt.Sprintf("Error: %v", err)))
	return werr
}
