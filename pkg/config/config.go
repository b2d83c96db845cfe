package config

import (
	"github.com/arthur-debert/colormap/pkg/colormap"
	"github.com/arthur-debert/colormap/pkg/errors"
)

// Config is the resolved configuration for one run
type Config struct {
	Input       string                   `koanf:"input"`
	Output      string                   `koanf:"output"`
	Format      colormap.Format          `koanf:"format"`
	OnMalformed colormap.MalformedPolicy `koanf:"on_malformed"`

	// Source is the config file that was loaded, empty if none
	Source string `koanf:"-"`
}

// Default returns the configuration used when nothing overrides the defaults
func Default() *Config {
	return &Config{
		Input:       "rawColorFile.txt",
		Output:      "colormap.csv",
		Format:      colormap.FormatCSV,
		OnMalformed: colormap.PolicyAbort,
	}
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New(errors.ErrConfigValid, "input path is empty")
	}
	if c.Output == "" {
		return errors.New(errors.ErrConfigValid, "output path is empty")
	}
	if _, err := colormap.ParseFormat(string(c.Format)); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid format").
			WithDetail("format", string(c.Format))
	}
	if _, err := colormap.ParseMalformedPolicy(string(c.OnMalformed)); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid on_malformed policy").
			WithDetail("on_malformed", string(c.OnMalformed))
	}
	return nil
}

// LoadOptions returns the colormap options described by the configuration
func (c *Config) LoadOptions() colormap.Options {
	return colormap.Options{OnMalformed: c.OnMalformed}
}
