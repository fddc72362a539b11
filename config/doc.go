// Package config loads the winnow CLI configuration with viper: a YAML
// config file resolved from standard locations, an optional .env file, and
// WINNOW_* environment variable overrides, validated before use.
package config
