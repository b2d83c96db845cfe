// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/colormap/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderColors renders an aligned table of colors
func (r *Renderer) RenderColors(rows []display.ColorRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.output, "No colors found")
		return err
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", row.RGB, row.RGB.Hex(), row.Name); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderConvert renders the summary of a convert run
func (r *Renderer) RenderConvert(result display.ConvertResult) error {
	verb := "Wrote"
	if result.DryRun {
		verb = "Would write"
	}
	if _, err := fmt.Fprintf(r.output, "%s %d colors to %s (%s)\n", verb, result.Colors, result.Output, result.Format); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.output, "  read %d lines from %s\n", result.Stats.Lines, result.Input); err != nil {
		return err
	}
	if skipped := result.Skipped(); skipped > 0 {
		if _, err := fmt.Fprintf(r.output, "  skipped %d lines (%d short, %d truncated, %d malformed)\n",
			skipped, result.Stats.Short, result.Stats.Truncated, result.Stats.Malformed); err != nil {
			return err
		}
	}
	if result.Stats.Overwritten > 0 {
		if _, err := fmt.Fprintf(r.output, "  %d duplicate names, later definitions kept\n", result.Stats.Overwritten); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as a plain line
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}
