// Package config handles configuration management for aiassisted.
// It layers the embedded defaults, the user's TOML file, AIASSISTED_*
// environment variables and command-line overrides, in that order.
package config
