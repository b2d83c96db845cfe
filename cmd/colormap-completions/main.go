package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/colormap/internal/cli"
	"github.com/spf13/cobra"
)

// completionFiles maps each release artifact to its generator
var completionFiles = map[string]func(*cobra.Command, io.Writer) error{
	"colormap.bash": func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) },
	"_colormap":     func(c *cobra.Command, w io.Writer) error { return c.GenZshCompletion(w) },
	"colormap.fish": func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) },
	"colormap.ps1":  func(c *cobra.Command, w io.Writer) error { return c.GenPowerShellCompletionWithDesc(w) },
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}

	if err := writeAll(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating completions: %v\n", err)
		os.Exit(1)
	}
}

// writeAll writes one completion script per shell into dir
func writeAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	rootCmd := cli.NewRootCmd()
	for name, gen := range completionFiles {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := gen(rootCmd, f); err != nil {
			_ = f.Close()
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
