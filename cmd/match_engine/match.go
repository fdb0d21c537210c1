package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Match a structured resume JSON file against a free-text job description and produce a MatchReport JSON with the overall score, per-factor breakdown, ATS estimate and improvement recommendations.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchOutFile    string
	matchProvider   string
	matchAPIKey     string
	matchTimeout    int
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description text file (required)")
	matchCmd.Flags().StringVarP(&matchOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVar(&matchProvider, "provider", "", "Model provider: gemini or openai (default: gemini)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Provider API key (overrides environment variable)")
	matchCmd.Flags().IntVar(&matchTimeout, "timeout", 0, "Per-call model timeout in seconds")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Resume:         matchResumeFile,
		Job:            matchJobFile,
		Output:         matchOutFile,
		Provider:       matchProvider,
		APIKey:         matchAPIKey,
		TimeoutSeconds: matchTimeout,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("a resume file is required (use --resume)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("a job description file is required (use --job)")
	}

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}
	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	engine, cleanup, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	report := engine.Match(context.Background(), resume, string(jobText))

	if err := writeJSON(cfg.Output, report); err != nil {
		return err
	}
	if err := validateAgainstSchema("schemas/match_report.schema.json", cfg.Output); err != nil {
		return err
	}

	if verbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobAnalysis(report.JobAnalysis)
		printer.PrintMatchingKeywords(report)
	}

	observability.NewPrinter(os.Stderr).PrintMatchReport(report)
	if cfg.Output != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", cfg.Output)
	}

	return nil
}
