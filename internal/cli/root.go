package cli

import (
	"embed"
	"fmt"

	"github.com/arthur-debert/colormap/internal/version"
	"github.com/arthur-debert/colormap/pkg/cobrax/topics"
	"github.com/arthur-debert/colormap/pkg/config"
	"github.com/arthur-debert/colormap/pkg/filesystem"
	"github.com/arthur-debert/colormap/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFS embed.FS

// globalOptions holds the values of persistent flags shared by all commands
type globalOptions struct {
	verbosity  int
	configFile string
	fs         filesystem.FS
}

// loadConfig resolves the configuration with overrides from the command line
// and makes it the active one
func (g *globalOptions) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.LoadConfiguration(config.LoadOptions{
		ConfigFile: g.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrConfig, err)
	}
	config.Initialize(cfg)

	log.Debug().
		Str("source", cfg.Source).
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Str("format", cfg.Format.String()).
		Str("on_malformed", cfg.OnMalformed.String()).
		Msg("Configuration resolved")

	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS())
}

func newRootCmd(fsys filesystem.FS) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{fs: fsys}

	rootCmd := &cobra.Command{
		Use:     "colormap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat+MsgCommitFormat+MsgBuiltFormat,
		version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	tm := initTopics(rootCmd)
	rootCmd.AddCommand(newTopicsCmd(tm))
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// initTopics installs the embedded help topics. On failure the help command
// still works, without topics.
func initTopics(rootCmd *cobra.Command) *topics.TopicManager {
	tm, err := topics.InitializeWithOptions(rootCmd, helpFS, "help", topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return topics.New(helpFS, "")
	}
	return tm
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tm.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
