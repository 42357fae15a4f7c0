package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/fakeprofile"
)

var analyzeFlags struct {
	file string
}

var behaviorFlags struct {
	sent       int
	received   int
	matches    int
	accountAge time.Duration
}

// profileInput is the JSON shape accepted by ganymede analyze.
type profileInput struct {
	Photos []struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		URL    string `json:"url,omitempty"`
	} `json:"photos"`
	Bio      string `json:"bio"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Location string `json:"location"`
}

// analysisResult is the command output for both analyze commands.
type analysisResult struct {
	Suspicious     bool     `json:"suspicious"`
	Score          float64  `json:"score"`
	Indicators     []string `json:"indicators"`
	Recommendation string   `json:"recommendation,omitempty"`
}

func (r analysisResult) RenderText() string {
	var b strings.Builder
	if r.Suspicious {
		fmt.Fprintf(&b, "suspicious (score %.2f)", r.Score)
	} else {
		fmt.Fprintf(&b, "clean (score %.2f)", r.Score)
	}
	if r.Recommendation != "" {
		fmt.Fprintf(&b, "\nrecommendation: %s", r.Recommendation)
	}
	for _, ind := range r.Indicators {
		fmt.Fprintf(&b, "\n  - %s", ind)
	}
	return b.String()
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a profile for fake-profile signals",
	Long: `Analyze a profile snapshot for fake-profile signals.

The profile is read as JSON from a file or standard input:

  {
    "photos": [{"width": 1200, "height": 1600}],
    "bio": "I enjoy hiking and cooking.",
    "name": "John Smith",
    "age": 29,
    "location": "Portland"
  }

Examples:
  ganymede analyze --file profile.json
  cat profile.json | ganymede analyze
  ganymede analyze behavior --sent 150 --matches 5`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

var behaviorCmd = &cobra.Command{
	Use:   "behavior",
	Short: "Analyze account activity for automated behavior",
	Long: `Analyze an account activity snapshot for automated behavior signals:
mass messaging, new-account bursts, one-way messaging, and rapid matching.

Examples:
  ganymede analyze behavior --sent 150 --received 40 --matches 5
  ganymede analyze behavior --sent 60 --account-age 2h`,
	Args: cobra.NoArgs,
	RunE: runAnalyzeBehavior,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.AddCommand(behaviorCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFlags.file, "file", "f", "", "profile JSON file (default: stdin)")

	behaviorCmd.Flags().IntVar(&behaviorFlags.sent, "sent", 0, "messages sent")
	behaviorCmd.Flags().IntVar(&behaviorFlags.received, "received", 0, "messages received")
	behaviorCmd.Flags().IntVar(&behaviorFlags.matches, "matches", 0, "match count")
	behaviorCmd.Flags().DurationVar(&behaviorFlags.accountAge, "account-age", 30*24*time.Hour, "account age (e.g. 2h, 720h)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	processor, err := newCommandProcessor(cfg)
	if err != nil {
		return cli.NewCommandError("analyze", err)
	}
	formatter, err := newOutputFormatter()
	if err != nil {
		return err
	}

	var reader io.Reader = cmd.InOrStdin()
	source := "stdin"
	if analyzeFlags.file != "" {
		f, err := os.Open(analyzeFlags.file)
		if err != nil {
			return cli.NewInputError(analyzeFlags.file, err)
		}
		defer f.Close()
		reader = f
		source = analyzeFlags.file
	}

	var input profileInput
	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return cli.NewInputError(source, fmt.Errorf("failed to parse profile JSON: %w", err))
	}

	photos := make([]fakeprofile.Photo, len(input.Photos))
	for i, p := range input.Photos {
		photos[i] = fakeprofile.Photo{Width: p.Width, Height: p.Height, URL: p.URL}
	}

	analysis := processor.CheckProfile(cmd.Context(), fakeprofile.Profile{
		Photos:   photos,
		Bio:      input.Bio,
		Name:     input.Name,
		Age:      input.Age,
		Location: input.Location,
	})

	indicators := make([]string, len(analysis.Indicators))
	for i, ind := range analysis.Indicators {
		indicators[i] = ind.Description()
	}

	return formatter.FormatTo(os.Stdout, analysisResult{
		Suspicious:     analysis.Suspicious,
		Score:          analysis.Score,
		Indicators:     indicators,
		Recommendation: analysis.Recommendation.String(),
	})
}

func runAnalyzeBehavior(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	processor, err := newCommandProcessor(cfg)
	if err != nil {
		return cli.NewCommandError("analyze behavior", err)
	}
	formatter, err := newOutputFormatter()
	if err != nil {
		return err
	}

	analysis := processor.CheckBehavior(cmd.Context(), fakeprofile.BehaviorSnapshot{
		MessagesSent:     behaviorFlags.sent,
		MessagesReceived: behaviorFlags.received,
		Matches:          behaviorFlags.matches,
		AccountAge:       behaviorFlags.accountAge,
	})

	indicators := make([]string, len(analysis.Indicators))
	for i, ind := range analysis.Indicators {
		indicators[i] = ind.Description()
	}

	return formatter.FormatTo(os.Stdout, analysisResult{
		Suspicious: analysis.Suspicious,
		Score:      analysis.Score,
		Indicators: indicators,
	})
}
