package matching

import (
	"regexp"
	"strings"
)

// ATS component weights. They sum to 1.0 and the final score is capped
// there regardless.
const (
	atsKeywordWeight      = 0.30
	atsLengthWeight       = 0.20
	atsSectionWeight      = 0.20
	atsQuantifiableWeight = 0.15
	atsActionVerbWeight   = 0.15

	atsMinLength = 200
)

// quantifiableRe matches numeric achievements such as "40%", "$2M" (the
// leading number) and plain counts.
var quantifiableRe = regexp.MustCompile(`\d+[%$]?`)

// atsSectionHeaders are the section labels an applicant tracking system
// expects to find when segmenting a resume.
var atsSectionHeaders = []string{"experience", "education", "skills", "summary"}

// atsActionVerbs are the strong verbs recruiters screen for.
var atsActionVerbs = []string{
	"developed", "managed", "led", "implemented", "created", "designed",
	"optimized", "streamlined", "enhanced", "delivered", "coordinated",
	"executed", "supervised", "analyzed", "improved", "established",
	"collaborated", "facilitated", "spearheaded", "achieved", "increased",
}

// ScoreATS estimates how well the resume text would survive automated
// applicant tracking screens. The heuristic rewards keyword coverage,
// adequate length, recognizable section headers, quantified achievements
// and action verbs. It is independent of the match score and judges the
// resume's form, not its fit.
func ScoreATS(resumeText string, keywords []string) float64 {
	lowerText := strings.ToLower(resumeText)
	var score float64

	if len(keywords) == 0 {
		score += atsKeywordWeight
	} else {
		found := 0
		for _, kw := range keywords {
			if strings.Contains(lowerText, strings.ToLower(kw)) {
				found++
			}
		}
		score += atsKeywordWeight * float64(found) / float64(len(keywords))
	}

	if len(resumeText) > atsMinLength {
		score += atsLengthWeight
	}

	sections := 0
	for _, header := range atsSectionHeaders {
		if strings.Contains(lowerText, header) {
			sections++
		}
	}
	score += atsSectionWeight * float64(sections) / float64(len(atsSectionHeaders))

	switch n := len(quantifiableRe.FindAllString(resumeText, -1)); {
	case n >= 3:
		score += atsQuantifiableWeight
	case n >= 1:
		score += 0.10
	}

	verbs := 0
	for _, verb := range atsActionVerbs {
		if strings.Contains(lowerText, verb) {
			verbs++
		}
	}
	switch {
	case verbs >= 3:
		score += atsActionVerbWeight
	case verbs >= 1:
		score += 0.10
	}

	return clamp01(score)
}
