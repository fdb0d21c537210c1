package parsing

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// skillVocabulary is the curated skill list used by the rule-based extractor,
// grouped by category. Matching is case-insensitive substring matching
// against the job description.
var skillVocabulary = map[string][]string{
	"technical": {
		"Python", "JavaScript", "SQL", "React", "Node.js", "AWS",
		"Docker", "Git", "Linux", "MongoDB", "PostgreSQL", "API Development",
	},
	"business": {
		"Project Management", "Strategic Planning", "Business Analysis",
		"Market Research", "Financial Analysis", "Leadership", "Communication",
	},
	"creative": {
		"Graphic Design", "UI/UX Design", "Content Creation", "Brand Management",
		"Social Media Marketing", "Video Editing", "Adobe Creative Suite",
	},
}

// levelIndicators maps experience levels to the phrases that signal them.
// Checked in order; the first level with a matching phrase wins.
var levelIndicators = []struct {
	level   string
	phrases []string
}{
	{types.LevelEntry, []string{"entry", "junior", "0-2 years"}},
	{types.LevelSenior, []string{"senior", "lead", "principal", "5+ years"}},
	{types.LevelExecutive, []string{"executive", "director", "vp", "10+ years"}},
}

// industryKeywords maps industry labels to their indicator keywords.
// First matching industry wins; iteration order is fixed.
var industryOrder = []string{"technology", "finance", "healthcare", "education"}

var industryKeywords = map[string][]string{
	"technology": {"software", "tech", "development", "engineering"},
	"finance":    {"financial", "banking", "investment"},
	"healthcare": {"medical", "health", "clinical"},
	"education":  {"teaching", "academic", "school"},
}

// fallbackKeywordLimit caps the number of frequency-derived keywords the
// rule-based path contributes.
const fallbackKeywordLimit = 15

// ruleBasedAnalysis populates a JobAnalysis from the job description using
// only deterministic substring rules. Used when the generative-text
// collaborator is unavailable or returns an unusable response.
func ruleBasedAnalysis(jobDescription string) *types.JobAnalysis {
	analysis := types.NewJobAnalysis()
	if strings.TrimSpace(jobDescription) == "" {
		return analysis
	}
	textLower := strings.ToLower(jobDescription)

	analysis.ExperienceLevel = inferExperienceLevel(textLower)
	analysis.Industry = inferIndustry(textLower)

	// Skill vocabulary scan: the first ten matches become required skills,
	// the tail of that window doubles as preferred skills.
	matched := matchVocabulary(textLower)
	if len(matched) > 10 {
		matched = matched[:10]
	}
	analysis.RequiredSkills = matched
	if len(matched) > 5 {
		analysis.PreferredSkills = matched[5:]
	}

	analysis.HardRequirements = inferRequirements(textLower)
	analysis.EducationRequirements = inferEducationRequirements(textLower)

	for _, wc := range WordFrequency(jobDescription, fallbackKeywordLimit) {
		analysis.Keywords = append(analysis.Keywords, wc.Word)
	}

	return analysis
}

// inferExperienceLevel returns the first level whose indicator phrase appears
// in the lowercased description, defaulting to mid.
func inferExperienceLevel(textLower string) string {
	for _, indicator := range levelIndicators {
		for _, phrase := range indicator.phrases {
			if strings.Contains(textLower, phrase) {
				return indicator.level
			}
		}
	}
	return types.LevelMid
}

// inferIndustry returns the first industry whose keyword appears in the
// lowercased description, defaulting to general.
func inferIndustry(textLower string) string {
	for _, industry := range industryOrder {
		for _, kw := range industryKeywords[industry] {
			if strings.Contains(textLower, kw) {
				return industry
			}
		}
	}
	return types.IndustryGeneral
}

// matchVocabulary returns vocabulary skills present in the description,
// technical skills first, preserving vocabulary order within each category.
func matchVocabulary(textLower string) []string {
	var matched []string
	for _, category := range []string{"technical", "business", "creative"} {
		for _, skill := range skillVocabulary[category] {
			if strings.Contains(textLower, strings.ToLower(skill)) {
				matched = append(matched, skill)
			}
		}
	}
	return matched
}

// inferRequirements derives coarse requirement strings from common cues.
func inferRequirements(textLower string) []string {
	var reqs []string
	if strings.Contains(textLower, "degree") || strings.Contains(textLower, "bachelor") {
		reqs = append(reqs, "Bachelor's degree required")
	}
	if strings.Contains(textLower, "experience") {
		reqs = append(reqs, "Relevant work experience")
	}
	if strings.Contains(textLower, "certification") {
		reqs = append(reqs, "Professional certifications preferred")
	}
	return reqs
}

// inferEducationRequirements derives degree-requirement strings. The highest
// degree cue mentioned drives the requirement.
func inferEducationRequirements(textLower string) []string {
	var reqs []string
	switch {
	case strings.Contains(textLower, "phd") || strings.Contains(textLower, "doctorate"):
		reqs = append(reqs, "Doctorate degree required")
	case strings.Contains(textLower, "master") || strings.Contains(textLower, "mba"):
		reqs = append(reqs, "Master's degree required")
	case strings.Contains(textLower, "bachelor") || strings.Contains(textLower, "degree"):
		reqs = append(reqs, "Bachelor's degree required")
	}
	if strings.Contains(textLower, "certification") {
		reqs = append(reqs, "Professional certification preferred")
	}
	return reqs
}
