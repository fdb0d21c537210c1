package matching

import "strings"

// KeywordMatchResult holds the TF-IDF keyword sub-score alongside the
// literal keyword overlap used for reporting.
type KeywordMatchResult struct {
	Score    float64
	Matching []string
	Missing  []string
	Density  float64
}

// MatchKeywords scores how well the resume text covers the job's keyword
// set. The score is the TF-IDF cosine similarity between the resume text
// and the keyword set treated as a document; the Matching and Missing
// lists come from literal case-insensitive containment and feed the
// report, not the score. No keywords means nothing to measure and scores
// zero.
func MatchKeywords(resumeText string, keywords []string) KeywordMatchResult {
	if len(keywords) == 0 {
		return KeywordMatchResult{}
	}

	result := KeywordMatchResult{}
	lowerText := strings.ToLower(resumeText)
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			result.Matching = append(result.Matching, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}
	result.Density = float64(len(result.Matching)) / float64(len(keywords))

	vectors := tfidfVectorize([]string{resumeText, strings.Join(keywords, " ")})
	result.Score = cosineSimilarity(vectors[0], vectors[1])
	return result
}
