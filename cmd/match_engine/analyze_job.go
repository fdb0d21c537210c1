package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Analyze a job description into structured requirements",
	Long:  "Analyze a free-text job description into structured JobAnalysis JSON: required and preferred skills, experience level, education requirements and keyword signals.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeJobFile  string
	analyzeOutFile  string
	analyzeProvider string
	analyzeAPIKey   string
	analyzeTimeout  int
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file (required)")
	analyzeJobCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeJobCmd.Flags().StringVar(&analyzeProvider, "provider", "", "Model provider: gemini or openai (default: gemini)")
	analyzeJobCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Provider API key (overrides environment variable)")
	analyzeJobCmd.Flags().IntVar(&analyzeTimeout, "timeout", 0, "Per-call model timeout in seconds")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Job:            analyzeJobFile,
		Output:         analyzeOutFile,
		Provider:       analyzeProvider,
		APIKey:         analyzeAPIKey,
		TimeoutSeconds: analyzeTimeout,
	})
	if err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("a job description file is required (use --job)")
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

	analysis := engine.Analyze(context.Background(), string(jobText))

	if err := writeJSON(cfg.Output, analysis); err != nil {
		return err
	}
	if err := validateAgainstSchema("schemas/job_analysis.schema.json", cfg.Output); err != nil {
		return err
	}

	if verbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintJobAnalysis(analysis)
	}
	if cfg.Output != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully analyzed job description\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", cfg.Output)
	}

	return nil
}
