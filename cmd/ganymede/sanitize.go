package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/sanitize"
)

var sanitizeFlags struct {
	level string
}

// sanitizeResult is the command output for ganymede sanitize.
type sanitizeResult struct {
	Sanitized string `json:"sanitized"`
	Level     string `json:"level"`
}

func (r sanitizeResult) RenderText() string {
	return r.Sanitized
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [text]",
	Short: "Sanitize a piece of text",
	Long: `Sanitize a piece of text, stripping attack vectors at the chosen level.

Levels:
  basic     trim surrounding whitespace only
  standard  full attack-pattern removal (default)
  strict    standard plus forbidden-character deletion

Examples:
  ganymede sanitize "<script>alert(1)</script>hello"
  ganymede sanitize --level strict "O'Brien <b>bold</b>"
  ganymede sanitize --level basic "  padded  "`,
	Args: cobra.ExactArgs(1),
	RunE: runSanitize,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)

	sanitizeCmd.Flags().StringVar(&sanitizeFlags.level, "level", "", "sanitization level (basic, standard, strict)")
}

func runSanitize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if sanitizeFlags.level != "" {
		cfg.Sanitizer.DefaultLevel = sanitizeFlags.level
	}

	level, err := sanitize.ParseLevel(cfg.Sanitizer.DefaultLevel)
	if err != nil {
		return cli.NewConfigError("sanitizer.default_level", err.Error())
	}

	formatter, err := newOutputFormatter()
	if err != nil {
		return err
	}

	result := sanitizeResult{
		Sanitized: sanitize.Sanitize(args[0], level),
		Level:     level.String(),
	}
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return cli.NewCommandError("sanitize", fmt.Errorf("failed to write output: %w", err))
	}
	return nil
}
