package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJobAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.JobAnalysis{
		ExperienceLevel:       "senior",
		Industry:              "technology",
		RequiredSkills:        []string{"Go", "Kubernetes"},
		PreferredSkills:       []string{"Rust"},
		EducationRequirements: []string{"Bachelor's degree required"},
		Keywords:              []string{"distributed", "systems"},
	}

	p.PrintJobAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "JOB ANALYSIS")
	assert.Contains(t, output, "senior")
	assert.Contains(t, output, "technology")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "Rust")
	assert.Contains(t, output, "Bachelor's degree")
	assert.Contains(t, output, "distributed, systems")
}

func TestPrintJobAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobAnalysis_ManySkillsTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.JobAnalysis{
		ExperienceLevel: "mid",
		Industry:        "general",
		RequiredSkills:  []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"},
	}

	p.PrintJobAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "... and 2 more")
}

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.MatchReport{
		OverallScore: 0.82,
		ScoreBreakdown: types.ScoreBreakdown{
			SkillScore:      0.9,
			KeywordScore:    0.7,
			ExperienceScore: 0.85,
			EducationScore:  1.0,
		},
		ATSScore:        0.75,
		MissingSkills:   []string{"Terraform"},
		Recommendations: []string{"Add Terraform projects to your experience section"},
	}

	p.PrintMatchReport(report)
	output := buf.String()

	assert.Contains(t, output, "MATCH REPORT")
	assert.Contains(t, output, "82.0%")
	assert.Contains(t, output, "75.0%")
	assert.Contains(t, output, "Terraform")
	assert.Contains(t, output, "Add Terraform projects")
}

func TestPrintMatchReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchingKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.MatchReport{
		MatchingKeywords: []string{"python", "sql"},
		MissingKeywords:  []string{"aws"},
	}

	p.PrintMatchingKeywords(report)
	output := buf.String()

	assert.Contains(t, output, "KEYWORD COVERAGE")
	assert.Contains(t, output, "python, sql")
	assert.Contains(t, output, "aws")
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	reports := []*types.MatchReport{
		{OverallScore: 0.4},
		{OverallScore: 0.9},
	}

	p.PrintBatchSummary([]string{"backend.txt", "data_platform.txt"}, reports, 1)
	output := buf.String()

	assert.Contains(t, output, "BATCH MATCH SUMMARY")
	assert.Contains(t, output, "backend.txt")
	assert.Contains(t, output, "★")
	assert.Contains(t, output, "90.0%")
}

func TestPrintBatchSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary(nil, nil, -1)
	output := buf.String()

	assert.Contains(t, output, "NO POSTINGS MATCHED")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.JobAnalysis{
		ExperienceLevel: "senior",
		Industry:        "a very long industry label that should be truncated to fit the box",
	}

	p.PrintJobAnalysis(analysis)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
