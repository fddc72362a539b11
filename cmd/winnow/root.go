package main

import (
	"context"

	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/winnowlabs/winnow/config"
	"github.com/winnowlabs/winnow/logger"
	"github.com/winnowlabs/winnow/observability"
	"github.com/winnowlabs/winnow/version"
)

// commandContext carries lazily-loaded configuration shared by subcommands.
type commandContext struct {
	configFlag   *string
	envFlag      *string
	logLevelFlag *string

	cfg   *config.Config
	meter *sdkmetric.MeterProvider
}

func newCommandContext(configFlag, envFlag, logLevelFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, envFlag: envFlag, logLevelFlag: logLevelFlag}
}

// ensureConfig loads configuration once, then initializes logging and,
// when enabled, metric export.
func (c *commandContext) ensureConfig(ctx context.Context) (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(config.LoaderOptions{
		ConfigFile: *c.configFlag,
		EnvFile:    *c.envFlag,
	})
	if err != nil {
		return nil, err
	}
	if *c.logLevelFlag != "" {
		cfg.Logging.Level = *c.logLevelFlag
		if err := cfg.Logging.Validate(); err != nil {
			return nil, err
		}
	}
	logger.Init(cfg.Logging)

	if cfg.Metrics.Enabled {
		mc := observability.MeterConfig{
			ServiceName:    cfg.Base.Name,
			ServiceVersion: version.Short(),
			Environment:    cfg.Base.Environment,
			Endpoint:       cfg.Metrics.Endpoint,
			Insecure:       cfg.Metrics.Insecure,
			Interval:       cfg.Metrics.Interval,
		}
		mp, err := observability.InitMeter(ctx, &mc)
		if err != nil {
			return nil, err
		}
		c.meter = mp
	}

	c.cfg = cfg
	return cfg, nil
}

// shutdown flushes metric export if it was started.
func (c *commandContext) shutdown(ctx context.Context) {
	if c.meter != nil {
		if err := c.meter.Shutdown(ctx); err != nil {
			logger.WithComponent("cli").WithError(err).Warn("meter shutdown failed")
		}
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return true
	}
	return false
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var envFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &envFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "winnow",
		Short:         "Winnow filters, groups, and reduces record collections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd.Context())
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.shutdown(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&envFlag, "env-file", "", "Environment file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newDemoCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
