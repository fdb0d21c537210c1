package types

import "strings"

// ScoreBreakdown holds the four weighted sub-scores that make up the
// overall match score. Each value is in [0, 1].
type ScoreBreakdown struct {
	SkillScore      float64 `json:"skill_score"`
	KeywordScore    float64 `json:"keyword_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
}

// MatchReport is the engine's output for a single resume/job-description pair.
// OverallScore is a fixed convex combination of the breakdown sub-scores;
// ATSScore is computed independently of the weighting.
type MatchReport struct {
	OverallScore     float64        `json:"overall_score"`
	ScoreBreakdown   ScoreBreakdown `json:"score_breakdown"`
	ATSScore         float64        `json:"ats_score"`
	Recommendations  []string       `json:"recommendations"`
	MissingSkills    []string       `json:"missing_skills"`
	MatchingKeywords []string       `json:"matching_keywords"`
	MissingKeywords  []string       `json:"missing_keywords"`
	JobAnalysis      *JobAnalysis   `json:"job_analysis"`
}

// toLowerTrim lowercases and trims a string for case-insensitive comparison.
func toLowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
