package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build a color map from a tab-delimited color table"
	MsgConvertShort    = "Convert a color table into a color map file"
	MsgShowShort       = "Show the colors of a color table"
	MsgGenConfigShort  = "Generate the default configuration file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgConfigWritten = "Wrote default configuration to %s\n"
	MsgVersionFormat = "colormap version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrLoad         = "failed to load color table: %w"
	MsgErrExport       = "failed to write color map: %w"
	MsgErrPartial      = "failed to load color table, wrote the %d colors read before the failure: %w"
	MsgErrConfig       = "failed to load configuration: %w"
	MsgErrRender       = "failed to render output: %w"
	MsgErrConfigExists = "%s already exists (use --force to overwrite)"
	MsgErrWriteConfig  = "failed to write configuration: %w"
	MsgErrColorMissing = "color %q not found in %s"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default: ./.colormap.toml, ./colormap.toml or the user config)"
	MsgFlagFormat      = "Export format: csv, yaml, toml or xml (default from config, or the output file extension)"
	MsgFlagOnMalformed = "What to do with non-integer channels: abort or skip"
	MsgFlagDryRun      = "Load and report without writing the output file"
	MsgFlagFrom        = "Input format: auto, table or csv (auto reads .csv files as an exported color map)"
	MsgFlagName        = "Only show the named color (repeatable)"
	MsgFlagShowFormat  = "Display format: auto, term or text"
	MsgFlagWrite       = "Write the configuration to a file instead of stdout"
	MsgFlagFile        = "File written by --write"
	MsgFlagForce       = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
