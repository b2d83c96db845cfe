package cli

import (
	"fmt"

	"github.com/arthur-debert/colormap/pkg/colormap"
	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/arthur-debert/colormap/pkg/logging"
	"github.com/arthur-debert/colormap/pkg/ui"
	"github.com/arthur-debert/colormap/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *globalOptions) *cobra.Command {
	var (
		names       []string
		displayAs   string
		onMalformed string
		from        string
	)

	cmd := &cobra.Command{
		Use:     "show [input]",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(displayAs)
			if err != nil {
				return err
			}
			source, err := colormap.ParseSource(from)
			if err != nil {
				return err
			}

			overrides := map[string]interface{}{"on_malformed": onMalformed}
			if len(args) > 0 {
				overrides["input"] = args[0]
			}
			cfg, err := opts.loadConfig(overrides)
			if err != nil {
				return err
			}

			logger := logging.GetLogger("show")
			loadOpts := cfg.LoadOptions()
			loadOpts.Logger = &logger

			loaded, err := colormap.LoadFrom(opts.fs, cfg.Input, source, loadOpts)
			if err != nil {
				return fmt.Errorf(MsgErrLoad, err)
			}

			rows, err := selectRows(loaded.Colors, names, cfg.Input)
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return renderer.RenderColors(rows)
		},
	}

	cmd.Flags().StringArrayVar(&names, "name", nil, MsgFlagName)
	cmd.Flags().StringVar(&displayAs, "format", "auto", MsgFlagShowFormat)
	cmd.Flags().StringVar(&onMalformed, "on-malformed", "", MsgFlagOnMalformed)
	cmd.Flags().StringVar(&from, "from", "auto", MsgFlagFrom)

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{ui.FormatAuto.String(), ui.FormatTerminal.String(), ui.FormatText.String()},
		cobra.ShellCompDirectiveNoFileComp,
	))
	_ = cmd.RegisterFlagCompletionFunc("from", completeSources)

	return cmd
}

// selectRows returns every color of m, or only the named ones in the order
// given. A name that is not defined is an error.
func selectRows(m colormap.ColorMap, names []string, source string) ([]display.ColorRow, error) {
	if len(names) == 0 {
		return display.RowsFromMap(m), nil
	}

	rows := make([]display.ColorRow, 0, len(names))
	for _, name := range names {
		rgb, ok := m.Get(name)
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrColorMissing, name, source).
				WithDetail("name", name)
		}
		rows = append(rows, display.ColorRow{Name: name, RGB: rgb})
	}
	return rows, nil
}

func completeSources(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{
		string(colormap.SourceAuto),
		string(colormap.SourceTable),
		string(colormap.SourceCSV),
	}, cobra.ShellCompDirectiveNoFileComp
}
