package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/pipeline"
	"mercator-hq/ganymede/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "ganymede",
	Short: "Ganymede - content safety pipeline",
	Long: `Ganymede is a content safety pipeline for user-generated content.

It provides three stateless components behind one HTTP API and CLI:
  - Text sanitization with leveled attack-pattern stripping
  - Content moderation with a violation taxonomy and 0-100 scoring
  - Fake profile analysis with weighted multi-signal suspicion scoring

For more information, visit: https://github.com/mercator-hq/ganymede`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig initializes the process-wide configuration from the --config
// flag (defaults plus environment when no file was given) and returns a
// copy of it. Commands apply flag overrides to the copy; the singleton
// stays untouched.
func loadConfig() (*config.Config, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := *config.MustGetConfig()
	return &cfg, nil
}

// newCommandProcessor builds a processor for one-shot commands. Logs go to
// stderr, and only at warn level unless --verbose is set, so stdout stays
// clean for formatted output.
func newCommandProcessor(cfg *config.Config) (*pipeline.Processor, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}

	var w io.Writer = os.Stderr
	logger, err := logging.New(logging.Config{
		Level:     level,
		Format:    "text",
		RedactPII: cfg.Telemetry.Logging.RedactPII,
		Writer:    w,
	})
	if err != nil {
		return nil, err
	}
	return pipeline.NewProcessor(cfg, logger, nil)
}

// newOutputFormatter resolves the --output flag.
func newOutputFormatter() (cli.Formatter, error) {
	format, err := cli.ParseOutputFormat(outputFormat)
	if err != nil {
		return nil, err
	}
	return cli.NewFormatter(format), nil
}
