package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/winnowlabs/winnow/errors"
)

// LoaderOptions control where Load looks for files. Empty fields fall back
// to the standard search paths.
type LoaderOptions struct {
	// ConfigFile is an explicit config file path.
	ConfigFile string
	// EnvFile is an explicit .env file path.
	EnvFile string
}

var configSearchPaths = []string{
	"./winnow.yml",
	"./config/winnow.yml",
	"./cmd/winnow/winnow.yml",
}

// Load resolves and reads configuration: an optional .env file first, then
// the config file (if any), then WINNOW_* environment overrides. Defaults
// are applied and the result validated before it is returned.
func Load(opts LoaderOptions) (*Config, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix("WINNOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if file := resolveConfigFile(opts.ConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.InvalidConfig("reading config file " + file).WithCause(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.InvalidConfig("unmarshaling config").WithCause(err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every known key so environment overrides are
// visible to Unmarshal even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("base.name", "winnow")
	v.SetDefault("base.environment", "development")
	v.SetDefault("base.debug", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.timestamp", true)
	v.SetDefault("logging.caller", false)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.endpoint", "localhost:4318")
	v.SetDefault("metrics.insecure", true)
	v.SetDefault("metrics.interval", "15s")
}

func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range configSearchPaths {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func loadEnvFile(explicit string) {
	path := explicit
	if path == "" {
		path = ".env"
	}
	if fileExists(path) {
		_ = godotenv.Load(path)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
