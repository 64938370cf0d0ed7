// Package main provides the entry point for the Career Compass CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "career_compass",
	Short: "Resume and career readiness analysis engine",
	Long:  "Career Compass scores extracted resume text for ATS compatibility, skill depth, and experience quality, and computes readiness against target career roles.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		cliConfig = cfg
		logger.Init(logger.Config{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		})
		return nil
	},
}

var (
	rootConfigPath string
	rootLogLevel   string
	rootLogFormat  string
	rootVerbose    bool

	// cliConfig is the merged file-plus-flags configuration, resolved once
	// before any subcommand runs.
	cliConfig config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: json or pretty (default pretty)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed analysis breakdowns")
}

// resolveConfig merges the optional config file with flag defaults. Flags
// that were set explicitly always win.
func resolveConfig() (config.Config, error) {
	flags := config.Config{
		LogLevel:  rootLogLevel,
		LogFormat: rootLogFormat,
		Verbose:   rootVerbose,
	}
	merged := flags
	if rootConfigPath != "" {
		fileCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		merged = flags.MergeWithDefaults(*fileCfg)
		if !rootVerbose {
			merged.Verbose = fileCfg.Verbose
		}
	}
	if merged.LogLevel == "" {
		merged.LogLevel = "warn"
	}
	if merged.LogFormat == "" {
		merged.LogFormat = "pretty"
	}
	return merged, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
