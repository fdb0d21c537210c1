package matching

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// degreeOrdinals maps degree name fragments to a comparable level. A text
// mentioning several fragments takes the highest level mentioned.
var degreeOrdinals = map[string]int{
	"high school": 1,
	"diploma":     1,
	"certificate": 1,
	"associate":   2,
	"bachelor":    3,
	"master":      4,
	"mba":         4,
	"phd":         5,
	"doctorate":   5,
}

// EducationMatchResult holds the education sub-score and the degree
// levels it was derived from. A zero level means no recognized degree.
type EducationMatchResult struct {
	Score           float64
	RequirementsMet bool
	UserLevel       int
	RequiredLevel   int
}

// MatchEducation scores the resume's education against the job's stated
// education requirements. Requirements that name no recognizable degree,
// or the absence of any requirement, are treated as satisfied. A job
// that requires a degree scores zero against a resume listing none, and
// proportionally when the resume's highest degree falls short.
func MatchEducation(education []types.EducationEntry, requirements []string) EducationMatchResult {
	requiredLevel := 0
	for _, req := range requirements {
		if level := degreeLevel(req); level > requiredLevel {
			requiredLevel = level
		}
	}

	userLevel := 0
	for _, entry := range education {
		if level := degreeLevel(entry.Degree); level > userLevel {
			userLevel = level
		}
	}

	result := EducationMatchResult{UserLevel: userLevel, RequiredLevel: requiredLevel}
	if requiredLevel == 0 {
		result.Score = 1.0
		result.RequirementsMet = true
		return result
	}
	if len(education) == 0 {
		return result
	}
	result.Score = clamp01(float64(userLevel) / float64(requiredLevel))
	result.RequirementsMet = userLevel >= requiredLevel
	return result
}

// degreeLevel returns the highest degree ordinal mentioned in the text,
// or 0 when no known degree name appears.
func degreeLevel(text string) int {
	lower := strings.ToLower(text)
	highest := 0
	for name, level := range degreeOrdinals {
		if strings.Contains(lower, name) && level > highest {
			highest = level
		}
	}
	return highest
}
