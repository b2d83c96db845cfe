package cli

import (
	"fmt"
	"io/fs"

	"github.com/arthur-debert/colormap/pkg/config"
	"github.com/spf13/cobra"
)

// defaultConfigFile is where gen-config -w writes unless told otherwise
const defaultConfigFile = ".colormap.toml"

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var (
		write bool
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.DefaultConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			if _, err := opts.fs.Stat(file); err == nil && !force {
				return fmt.Errorf(MsgErrConfigExists, file)
			}
			if err := opts.fs.WriteFile(file, []byte(content), fs.FileMode(0644)); err != nil {
				return fmt.Errorf(MsgErrWriteConfig, err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, file)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVar(&file, "file", defaultConfigFile, MsgFlagFile)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
