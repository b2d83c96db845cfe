package cli

import (
	"fmt"

	"github.com/arthur-debert/colormap/pkg/colormap"
	"github.com/arthur-debert/colormap/pkg/config"
	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/arthur-debert/colormap/pkg/filesystem"
	"github.com/arthur-debert/colormap/pkg/logging"
	"github.com/arthur-debert/colormap/pkg/ui"
	"github.com/arthur-debert/colormap/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newConvertCmd(opts *globalOptions) *cobra.Command {
	var (
		format      string
		onMalformed string
		dryRun      bool
		from        string
	)

	cmd := &cobra.Command{
		Use:     "convert [input] [output]",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := colormap.ParseSource(from)
			if err != nil {
				return err
			}

			overrides := map[string]interface{}{
				"format":       format,
				"on_malformed": onMalformed,
			}
			if len(args) > 0 {
				overrides["input"] = args[0]
			}
			if len(args) > 1 {
				overrides["output"] = args[1]
				if format == "" {
					if f, ok := colormap.FormatFromPath(args[1]); ok {
						overrides["format"] = string(f)
					}
				}
			}

			cfg, err := opts.loadConfig(overrides)
			if err != nil {
				return err
			}

			result, err := runConvert(opts.fs, cfg, source, dryRun)
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(ui.FormatAuto, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return renderer.RenderConvert(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVar(&onMalformed, "on-malformed", "", MsgFlagOnMalformed)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().StringVar(&from, "from", "auto", MsgFlagFrom)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(colormap.Formats()))
		for _, f := range colormap.Formats() {
			names = append(names, f.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("on-malformed", cobra.FixedCompletions(
		[]string{string(colormap.PolicyAbort), string(colormap.PolicySkip)},
		cobra.ShellCompDirectiveNoFileComp,
	))
	_ = cmd.RegisterFlagCompletionFunc("from", completeSources)

	return cmd
}

// runConvert loads cfg.Input and, unless dryRun, exports it to cfg.Output.
// When the input cannot be read the colors loaded so far are still
// exported, so a missing input yields an empty output file. A malformed
// channel under PolicyAbort writes nothing.
func runConvert(fsys filesystem.FS, cfg *config.Config, source colormap.Source, dryRun bool) (display.ConvertResult, error) {
	logger := logging.GetLogger("convert")
	done := logging.LogOperationStart(logger, "convert")
	defer done()

	loadOpts := cfg.LoadOptions()
	loadOpts.Logger = &logger

	loaded, err := colormap.LoadFrom(fsys, cfg.Input, source, loadOpts)
	if err != nil {
		logger.Debug().
			Int("lines", loaded.Stats.Lines).
			Int("colors", loaded.Colors.Len()).
			Msg("Load stopped early")
		if dryRun || !errors.IsErrorCode(err, errors.ErrFileAccess) {
			return display.ConvertResult{}, fmt.Errorf(MsgErrLoad, err)
		}

		logger.Warn().
			Err(err).
			Str("output", cfg.Output).
			Int("colors", loaded.Colors.Len()).
			Msg("Input unreadable, writing the colors read so far")
		if exportErr := colormap.Export(fsys, cfg.Output, loaded.Colors, cfg.Format); exportErr != nil {
			return display.ConvertResult{}, fmt.Errorf(MsgErrExport, exportErr)
		}
		return display.ConvertResult{}, fmt.Errorf(MsgErrPartial, loaded.Colors.Len(), err)
	}

	logger.Info().
		Str("input", cfg.Input).
		Int("lines", loaded.Stats.Lines).
		Int("records", loaded.Stats.Records).
		Int("short", loaded.Stats.Short).
		Int("truncated", loaded.Stats.Truncated).
		Int("malformed", loaded.Stats.Malformed).
		Int("overwritten", loaded.Stats.Overwritten).
		Msg("Color table loaded")

	result := display.ConvertResult{
		Input:  cfg.Input,
		Output: cfg.Output,
		Format: cfg.Format,
		Colors: loaded.Colors.Len(),
		Stats:  loaded.Stats,
		DryRun: dryRun,
	}

	if dryRun {
		logger.Info().Str("output", cfg.Output).Msg("Dry run, not writing")
		return result, nil
	}

	if err := colormap.Export(fsys, cfg.Output, loaded.Colors, cfg.Format); err != nil {
		return result, fmt.Errorf(MsgErrExport, err)
	}

	logger.Info().
		Str("output", cfg.Output).
		Str("format", cfg.Format.String()).
		Int("colors", result.Colors).
		Msg("Color map written")

	return result, nil
}
