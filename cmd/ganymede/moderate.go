package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/pipeline"
)

// processorChecker is the slice of the processor that file moderation
// needs, narrowed so tests can substitute a fake.
type processorChecker interface {
	CheckText(ctx context.Context, text string) pipeline.TextResult
}

// violationStrings converts a result's violations to their identifiers.
func violationStrings(result pipeline.TextResult) []string {
	names := make([]string, len(result.Violations))
	for i, v := range result.Violations {
		names[i] = v.String()
	}
	return names
}

var moderateFlags struct {
	file string
}

// moderationResult is the command output for ganymede moderate.
type moderationResult struct {
	Text        string   `json:"text,omitempty"`
	Appropriate bool     `json:"appropriate"`
	Violations  []string `json:"violations"`
	Score       int      `json:"score"`
	Filtered    string   `json:"filtered"`
}

func (r moderationResult) RenderText() string {
	var b strings.Builder
	if r.Appropriate {
		b.WriteString("appropriate (score 100)")
	} else {
		fmt.Fprintf(&b, "flagged: %s (score %d)", strings.Join(r.Violations, ", "), r.Score)
	}
	if r.Filtered != r.Text {
		fmt.Fprintf(&b, "\nfiltered: %s", r.Filtered)
	}
	return b.String()
}

// nameResult is the command output for ganymede moderate name.
type nameResult struct {
	Name   string `json:"name"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func (r nameResult) RenderText() string {
	if r.Valid {
		return "valid"
	}
	return "invalid: " + r.Reason
}

// batchSummary is the command output for ganymede moderate --file.
type batchSummary struct {
	Total   int                `json:"total"`
	Flagged int                `json:"flagged"`
	Results []moderationResult `json:"results"`
}

func (s batchSummary) RenderText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d lines flagged", s.Flagged, s.Total)
	for _, r := range s.Results {
		if !r.Appropriate {
			fmt.Fprintf(&b, "\n%s: %s", r.Text, strings.Join(r.Violations, ", "))
		}
	}
	return b.String()
}

var moderateCmd = &cobra.Command{
	Use:   "moderate [text]",
	Short: "Moderate text content",
	Long: `Moderate text content against the violation taxonomy.

Input is sanitized at the configured level first, then checked for
profanity, spam, personal information, excessive capitals, and excessive
repetition.

Examples:
  ganymede moderate "check out my insta"
  ganymede moderate --file messages.txt
  ganymede moderate name "John Smith"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runModerate,
}

var moderateNameCmd = &cobra.Command{
	Use:   "name [name]",
	Short: "Validate a display name",
	Long: `Validate a display name against the name rule set.

Names are checked for profanity (including concatenated and leet-speak
forms), prohibited terms, embedded contact information, special-character
density, and length bounds.`,
	Args: cobra.ExactArgs(1),
	RunE: runModerateName,
}

func init() {
	rootCmd.AddCommand(moderateCmd)
	moderateCmd.AddCommand(moderateNameCmd)

	moderateCmd.Flags().StringVarP(&moderateFlags.file, "file", "f", "", "moderate each line of a file")
}

func runModerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	processor, err := newCommandProcessor(cfg)
	if err != nil {
		return cli.NewCommandError("moderate", err)
	}
	formatter, err := newOutputFormatter()
	if err != nil {
		return err
	}

	if moderateFlags.file != "" {
		summary, err := moderateFile(cmd.Context(), processor, moderateFlags.file)
		if err != nil {
			return cli.NewCommandError("moderate", err)
		}
		return formatter.FormatTo(os.Stdout, summary)
	}

	if len(args) == 0 {
		return fmt.Errorf("provide text to moderate or --file")
	}

	result := processor.CheckText(cmd.Context(), args[0])
	return formatter.FormatTo(os.Stdout, moderationResult{
		Text:        args[0],
		Appropriate: result.Appropriate,
		Violations:  violationStrings(result),
		Score:       result.Score,
		Filtered:    result.Filtered,
	})
}

// moderateFile moderates each non-empty line of a file, reporting progress
// on stderr.
func moderateFile(ctx context.Context, processor processorChecker, path string) (batchSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return batchSummary{}, cli.NewInputError(path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return batchSummary{}, cli.NewInputError(path, err)
	}

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(int64(len(lines)))

	summary := batchSummary{Total: len(lines)}
	for i, line := range lines {
		result := processor.CheckText(ctx, line)
		entry := moderationResult{
			Text:        line,
			Appropriate: result.Appropriate,
			Violations:  violationStrings(result),
			Score:       result.Score,
			Filtered:    result.Filtered,
		}
		if !entry.Appropriate {
			summary.Flagged++
		}
		summary.Results = append(summary.Results, entry)
		progress.Update(int64(i+1), int64(summary.Flagged))
	}
	progress.Finish()

	return summary, nil
}

func runModerateName(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	processor, err := newCommandProcessor(cfg)
	if err != nil {
		return cli.NewCommandError("moderate name", err)
	}
	formatter, err := newOutputFormatter()
	if err != nil {
		return err
	}

	result := processor.CheckName(cmd.Context(), args[0])
	return formatter.FormatTo(os.Stdout, nameResult{
		Name:   args[0],
		Valid:  result.Valid,
		Reason: result.Reason,
	})
}
