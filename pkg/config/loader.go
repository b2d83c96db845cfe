package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/colormap/pkg/colormap"
	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the configuration
const EnvPrefix = "COLORMAP_"

// configFileNames are looked up, in order, in the working directory
var configFileNames = []string{".colormap.toml", "colormap.toml"}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config path; it must exist when set
	ConfigFile string

	// WorkDir is searched for .env and colormap.toml. Defaults to "."
	WorkDir string

	// Overrides take precedence over every other source. Keys are config
	// keys ("input", "format", ...); empty string values are ignored.
	Overrides map[string]interface{}
}

// LoadConfiguration resolves the configuration from all sources
func LoadConfiguration(opts LoadOptions) (*Config, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. .env in the working directory, never overriding the real environment
	if err := loadDotEnv(filepath.Join(workDir, ".env")); err != nil {
		return nil, err
	}

	// 3. Config file
	source, err := findConfigFile(opts.ConfigFile, workDir)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
	}

	// 4. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Explicit overrides
	if overrides := nonEmpty(opts.Overrides); len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToFormatHookFunc(),
				stringToPolicyHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// UserConfigPath returns the per-user config file location
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "colormap", "config.toml")
}

func findConfigFile(explicit, workDir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	candidates := make([]string, 0, len(configFileNames)+1)
	for _, name := range configFileNames {
		candidates = append(candidates, filepath.Join(workDir, name))
	}
	candidates = append(candidates, UserConfigPath())

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", path).
			WithDetail("path", path)
	}
	return nil
}

func nonEmpty(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

// stringToFormatHookFunc normalizes format names. Unknown names pass
// through unchanged and are rejected by Validate.
func stringToFormatHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(colormap.Format("")) {
			return data, nil
		}
		raw := reflect.ValueOf(data).String()
		if format, err := colormap.ParseFormat(raw); err == nil {
			return format, nil
		}
		return colormap.Format(raw), nil
	}
}

func stringToPolicyHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(colormap.MalformedPolicy("")) {
			return data, nil
		}
		raw := reflect.ValueOf(data).String()
		if policy, err := colormap.ParseMalformedPolicy(raw); err == nil {
			return policy, nil
		}
		return colormap.MalformedPolicy(raw), nil
	}
}
