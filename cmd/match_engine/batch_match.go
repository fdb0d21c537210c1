package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var batchMatchCmd = &cobra.Command{
	Use:   "batch-match",
	Short: "Score a resume against every posting in a directory",
	Long:  "Match one resume against every job posting file in a directory, score each independently, and report which posting fits best along with aggregate statistics.",
	RunE:  runBatchMatch,
}

var (
	batchResumeFile string
	batchJobsDir    string
	batchOutFile    string
	batchProvider   string
	batchAPIKey     string
	batchTimeout    int
)

// batchReport is the JSON output of a batch run. RunID identifies the
// run in logs and filenames; scores are unaffected by it.
type batchReport struct {
	RunID        string               `json:"run_id"`
	BestIndex    int                  `json:"best_index"`
	BestPosting  string               `json:"best_posting,omitempty"`
	BestScore    float64              `json:"best_score"`
	AverageScore float64              `json:"average_score"`
	Postings     []string             `json:"postings"`
	Reports      []*types.MatchReport `json:"reports"`
}

func init() {
	batchMatchCmd.Flags().StringVarP(&batchResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	batchMatchCmd.Flags().StringVarP(&batchJobsDir, "jobs-dir", "d", "", "Directory of job posting text files (required)")
	batchMatchCmd.Flags().StringVarP(&batchOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchMatchCmd.Flags().StringVar(&batchProvider, "provider", "", "Model provider: gemini or openai (default: gemini)")
	batchMatchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Provider API key (overrides environment variable)")
	batchMatchCmd.Flags().IntVar(&batchTimeout, "timeout", 0, "Per-call model timeout in seconds")

	rootCmd.AddCommand(batchMatchCmd)
}

func runBatchMatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Resume:         batchResumeFile,
		JobsDir:        batchJobsDir,
		Output:         batchOutFile,
		Provider:       batchProvider,
		APIKey:         batchAPIKey,
		TimeoutSeconds: batchTimeout,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("a resume file is required (use --resume)")
	}
	if cfg.JobsDir == "" {
		return fmt.Errorf("a postings directory is required (use --jobs-dir)")
	}

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	names, jobs, err := readPostingsDir(cfg.JobsDir)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no posting files found in %s", cfg.JobsDir)
	}

	engine, cleanup, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	runID := uuid.New()
	if verbose || cfg.Verbose {
		_, _ = fmt.Fprintf(os.Stderr, "Batch run %s: matching against %d postings\n", runID, len(jobs))
	}

	reports := engine.BatchMatch(context.Background(), resume, jobs)
	insights := matching.Insights(reports)

	out := batchReport{
		RunID:        runID.String(),
		BestIndex:    insights.BestIndex,
		BestScore:    insights.BestScore,
		AverageScore: insights.AverageScore,
		Postings:     names,
		Reports:      reports,
	}
	if insights.BestIndex >= 0 && insights.BestIndex < len(names) {
		out.BestPosting = names[insights.BestIndex]
	}

	if err := writeJSON(cfg.Output, out); err != nil {
		return err
	}

	observability.NewPrinter(os.Stderr).PrintBatchSummary(names, reports, insights.BestIndex)
	if cfg.Output != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", cfg.Output)
	}

	return nil
}

// readPostingsDir loads every .txt file in dir, sorted by name so batch
// output order is stable.
func readPostingsDir(dir string) ([]string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read postings directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	jobs := make([]string, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read posting %s: %w", name, err)
		}
		jobs = append(jobs, string(data))
	}
	return names, jobs, nil
}
