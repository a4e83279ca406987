// Package cli implements the nexus command line.
package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/nexus/internal/config"
	"github.com/opencode-ai/nexus/internal/logging"
)

// Version is set at build time.
var Version = "dev"

var (
	cfgFile        string
	logLevel       string
	logFile        string
	jsonOutput     bool
	nonInteractive bool

	appConfig *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "nexus",
	Short:         "Themeable terminal chat UI",
	Long:          "Nexus is a terminal chat UI with switchable color themes and a dark-mode override.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/nexus/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "override logging.file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
}

// Execute runs the root command. The log file is closed even when the
// command fails, since cobra skips post-run hooks on error.
func Execute() error {
	defer closeLogger()
	return rootCmd.Execute()
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}

	closer, err := logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
	})
	if err != nil {
		return err
	}
	logCloser = closer
	appConfig = cfg

	logger := logging.Component("cli")
	logger.Debug().Str("config", cfgFile).Msg("configuration loaded")
	return nil
}

func closeLogger() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		logger := logging.Component("cli")
		logger.Warn().Err(err).Msg("failed to close log file")
	}
	logCloser = nil
	logging.Set(zerolog.Nop())
}

// GetConfig returns the loaded configuration, or nil before a command runs.
func GetConfig() *config.Config {
	return appConfig
}
