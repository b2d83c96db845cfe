package main

import (
	"os"

	"github.com/arthur-debert/colormap/internal/cli"
	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/arthur-debert/colormap/pkg/ui"
	"github.com/rs/zerolog/log"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Interface("details", errors.GetErrorDetails(err)).
			Msg("Command failed")

		renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr == nil {
			_ = renderer.RenderError(err)
		}
		os.Exit(1)
	}
}
