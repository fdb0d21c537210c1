// Package parsing turns free-text job descriptions into structured JobAnalysis
// records, preferring LLM extraction with a deterministic rule-based fallback.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/types"
)

// wordFrequencyLimit is the number of top tokens kept in WordFrequency.
const wordFrequencyLimit = 20

// AnalyzeJobDescription extracts a fully populated JobAnalysis from a job
// description. When client is non-nil the structured fields come from the
// generative-text collaborator; any failure there (transport, timeout,
// malformed response) silently falls back to the rule-based extractor.
// Word frequency and ATS keywords are always computed deterministically,
// regardless of which path produced the structured fields.
//
// The function is total: it never returns an error, and the worst case is
// the all-default analysis for an empty description.
func AnalyzeJobDescription(ctx context.Context, client llm.Client, jobDescription string) *types.JobAnalysis {
	var analysis *types.JobAnalysis
	if client != nil {
		analysis, _ = llmAnalysis(ctx, client, jobDescription)
	}
	if analysis == nil {
		analysis = ruleBasedAnalysis(jobDescription)
	}

	// Deterministic signals are never delegated.
	for _, wc := range WordFrequency(jobDescription, wordFrequencyLimit) {
		analysis.WordFrequency[wc.Word] = wc.Count
	}
	analysis.ATSKeywords = ExtractATSKeywords(jobDescription)
	analysis.Keywords = dedupeKeywords(analysis.Keywords)

	normalizeDefaults(analysis)
	return analysis
}

// jobAnalysisResponse is the JSON shape requested from the collaborator.
type jobAnalysisResponse struct {
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	HardRequirements      []string `json:"hard_requirements"`
	SoftRequirements      []string `json:"soft_requirements"`
	Responsibilities      []string `json:"responsibilities"`
	Keywords              []string `json:"keywords"`
	ExperienceLevel       string   `json:"experience_level"`
	EducationRequirements []string `json:"education_requirements"`
	Industry              string   `json:"industry"`
}

// llmAnalysis delegates structured extraction to the generative-text
// collaborator and maps its response into a JobAnalysis.
func llmAnalysis(ctx context.Context, client llm.Client, jobDescription string) (*types.JobAnalysis, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &ParseError{Message: "empty job description"}
	}

	template := prompts.MustGet("parsing.json", "analyze-job-posting")
	prompt := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
	})

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &CollaboratorError{Message: "structured extraction failed", Cause: err}
	}

	var resp jobAnalysisResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(responseText)), &resp); err != nil {
		return nil, &ParseError{Message: "failed to parse extraction response", Cause: err}
	}

	analysis := types.NewJobAnalysis()
	analysis.RequiredSkills = append(analysis.RequiredSkills, resp.RequiredSkills...)
	analysis.PreferredSkills = append(analysis.PreferredSkills, resp.PreferredSkills...)
	analysis.HardRequirements = append(analysis.HardRequirements, resp.HardRequirements...)
	analysis.SoftRequirements = append(analysis.SoftRequirements, resp.SoftRequirements...)
	analysis.Responsibilities = append(analysis.Responsibilities, resp.Responsibilities...)
	analysis.Keywords = append(analysis.Keywords, resp.Keywords...)
	analysis.EducationRequirements = append(analysis.EducationRequirements, resp.EducationRequirements...)
	analysis.ExperienceLevel = strings.ToLower(strings.TrimSpace(resp.ExperienceLevel))
	analysis.Industry = strings.ToLower(strings.TrimSpace(resp.Industry))
	return analysis, nil
}

// dedupeKeywords lowercases, trims and deduplicates keywords, preserving
// first-seen order.
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		normalized := strings.ToLower(strings.TrimSpace(kw))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

// normalizeDefaults clamps free-form collaborator output back to the
// documented field domains.
func normalizeDefaults(analysis *types.JobAnalysis) {
	switch analysis.ExperienceLevel {
	case types.LevelEntry, types.LevelMid, types.LevelSenior, types.LevelExecutive:
	default:
		analysis.ExperienceLevel = types.LevelUnknown
	}
	if strings.TrimSpace(analysis.Industry) == "" {
		analysis.Industry = types.IndustryGeneral
	}
}
