package matching

import "strings"

const (
	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3
)

// SkillMatchResult holds the skill sub-score and the per-tier matched and
// missing skill lists, in the order the job analysis listed them.
type SkillMatchResult struct {
	Score            float64
	MatchedRequired  []string
	MissingRequired  []string
	MatchedPreferred []string
	MissingPreferred []string
}

// MatchSkills compares the resume's skill list against the required and
// preferred skills of a job analysis. Each tier scores the fraction of its
// skills matched, and an empty tier scores 1.0 so a posting with no
// preferred skills is not penalized.
func MatchSkills(resumeSkills, required, preferred []string) SkillMatchResult {
	result := SkillMatchResult{}

	requiredScore := 1.0
	if len(required) > 0 {
		for _, skill := range required {
			if hasSkill(resumeSkills, skill) {
				result.MatchedRequired = append(result.MatchedRequired, skill)
			} else {
				result.MissingRequired = append(result.MissingRequired, skill)
			}
		}
		requiredScore = float64(len(result.MatchedRequired)) / float64(len(required))
	}

	preferredScore := 1.0
	if len(preferred) > 0 {
		for _, skill := range preferred {
			if hasSkill(resumeSkills, skill) {
				result.MatchedPreferred = append(result.MatchedPreferred, skill)
			} else {
				result.MissingPreferred = append(result.MissingPreferred, skill)
			}
		}
		preferredScore = float64(len(result.MatchedPreferred)) / float64(len(preferred))
	}

	result.Score = clamp01(requiredSkillWeight*requiredScore + preferredSkillWeight*preferredScore)
	return result
}

// hasSkill reports whether any resume skill matches the target skill.
func hasSkill(resumeSkills []string, skill string) bool {
	for _, candidate := range resumeSkills {
		if skillsEquivalent(candidate, skill) {
			return true
		}
	}
	return false
}

// skillsEquivalent matches two skill names case-insensitively, treating
// either one containing the other as a match so that "AWS" pairs with
// "AWS Lambda". Short names like "Go" therefore also pair with "Django";
// callers rely on that looseness staying put, so tighten with care.
func skillsEquivalent(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
