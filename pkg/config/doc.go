// Package config handles configuration management for colormap.
// It layers embedded defaults, a .env file, a TOML config file,
// COLORMAP_* environment variables and command-line overrides.
package config
