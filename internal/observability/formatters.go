// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobAnalysis outputs a human-readable summary of the analyzed job posting.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Level:    %s\n", analysis.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", analysis.Industry))
	sb.WriteString("\n")

	if len(analysis.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(analysis.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.RequiredSkills[i]))
		}
		if len(analysis.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.PreferredSkills) > 0 {
		sb.WriteString("Preferred Skills:\n")
		count := min(len(analysis.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.PreferredSkills[i]))
		}
		if len(analysis.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.PreferredSkills)-3))
		}
		sb.WriteString("\n")
	}

	if len(analysis.EducationRequirements) > 0 {
		sb.WriteString("Education:\n")
		for _, req := range analysis.EducationRequirements {
			if len(req) > 50 {
				req = req[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", req))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Keywords) > 0 {
		keywords := strings.Join(analysis.Keywords, ", ")
		if len(keywords) > 50 {
			keywords = keywords[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", keywords))
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs the score breakdown and recommendations.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %5.1f%%\n", report.OverallScore*100))
	sb.WriteString(fmt.Sprintf("ATS:         %5.1f%%\n", report.ATSScore*100))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:      %5.1f%%\n", report.ScoreBreakdown.SkillScore*100))
	sb.WriteString(fmt.Sprintf("Keywords:    %5.1f%%\n", report.ScoreBreakdown.KeywordScore*100))
	sb.WriteString(fmt.Sprintf("Experience:  %5.1f%%\n", report.ScoreBreakdown.ExperienceScore*100))
	sb.WriteString(fmt.Sprintf("Education:   %5.1f%%\n", report.ScoreBreakdown.EducationScore*100))

	if len(report.MissingSkills) > 0 {
		sb.WriteString("\nMissing Skills:\n")
		count := min(len(report.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingSkills[i]))
		}
		if len(report.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingSkills)-maxItemsToShow))
		}
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(report.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := report.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchingKeywords outputs the literal keyword overlap of a report.
func (p *Printer) PrintMatchingKeywords(report *types.MatchReport) {
	if report == nil || (len(report.MatchingKeywords) == 0 && len(report.MissingKeywords) == 0) {
		return
	}

	var sb strings.Builder
	if len(report.MatchingKeywords) > 0 {
		matched := strings.Join(report.MatchingKeywords, ", ")
		if len(matched) > 45 {
			matched = matched[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("✓ Matched: %s\n", matched))
	}
	if len(report.MissingKeywords) > 0 {
		missing := strings.Join(report.MissingKeywords, ", ")
		if len(missing) > 45 {
			missing = missing[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ Missing: %s\n", missing))
	}

	p.printBox("KEYWORD COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs per-posting scores and the best match.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchSummary(names []string, reports []*types.MatchReport, bestIndex int) {
	if len(reports) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO POSTINGS MATCHED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, report := range reports {
		name := fmt.Sprintf("posting %d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		if len(name) > 38 {
			name = name[:35] + "..."
		}
		marker := " "
		if i == bestIndex {
			marker = "★"
		}
		sb.WriteString(fmt.Sprintf("%s %5.1f%%  %s\n", marker, report.OverallScore*100, name))
	}

	p.printBox("BATCH MATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
