// Package ui renders color maps and command results for humans.
// It supports terminal (swatches and color) and text (plain) output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/colormap/pkg/ui/display"
	"github.com/arthur-debert/colormap/pkg/ui/terminal"
	"github.com/arthur-debert/colormap/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderColors renders one line per color, in the order given
	RenderColors(rows []display.ColorRow) error

	// RenderConvert renders the summary of a convert run
	RenderConvert(result display.ConvertResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and pipes that are not files get plain output
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
