package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/types"
)

// defaultRecommendations is returned whenever the model cannot produce
// tailored advice. The list is generic on purpose so it is safe against
// any posting.
var defaultRecommendations = []string{
	"Add more quantifiable achievements with numbers and percentages",
	"Include more keywords from the job description in your summary and experience",
	"Use strong action verbs to describe your accomplishments",
	"Tailor your professional summary to the target role",
	"List the skills the posting requires prominently in your skills section",
}

type recommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

// recommendations asks the model for tailored improvement advice and
// falls back to the default list when no client is configured or the
// call fails.
func (e *Engine) recommendations(ctx context.Context, resume *types.ResumeRecord, analysis *types.JobAnalysis, report *types.MatchReport) []string {
	if e.client == nil {
		return defaultRecommendations
	}

	template, err := prompts.Get("matching.json", "generate-recommendations")
	if err != nil {
		return defaultRecommendations
	}
	prompt := prompts.Format(template, map[string]string{
		"ResumeSummary":   resume.Summary,
		"JobRequirements": strings.Join(analysis.RequiredSkills, ", "),
		"MissingSkills":   strings.Join(report.MissingSkills, ", "),
		"OverallScore":    fmt.Sprintf("%.2f", report.OverallScore),
	})

	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.GenerateJSON(cctx, prompt, llm.TierStandard)
	if err != nil {
		return defaultRecommendations
	}

	var resp recommendationsResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return defaultRecommendations
	}

	recs := make([]string, 0, len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		if rec = strings.TrimSpace(rec); rec != "" {
			recs = append(recs, rec)
		}
	}
	if len(recs) == 0 {
		return defaultRecommendations
	}
	return recs
}
