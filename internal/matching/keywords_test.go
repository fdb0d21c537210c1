package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeywords_NoKeywords(t *testing.T) {
	result := MatchKeywords("experienced python developer", nil)

	assert.InDelta(t, 0.0, result.Score, 1e-9)
	assert.Empty(t, result.Matching)
	assert.Empty(t, result.Missing)
}

func TestMatchKeywords_LiteralContainment(t *testing.T) {
	result := MatchKeywords(
		"Senior Python developer with PostgreSQL and AWS experience",
		[]string{"python", "aws", "kubernetes"},
	)

	assert.Equal(t, []string{"python", "aws"}, result.Matching)
	assert.Equal(t, []string{"kubernetes"}, result.Missing)
	assert.InDelta(t, 2.0/3.0, result.Density, 1e-9)
}

func TestMatchKeywords_SimilarityBounds(t *testing.T) {
	result := MatchKeywords(
		"python developer writing sql queries against postgres",
		[]string{"python", "sql", "postgres"},
	)

	assert.Greater(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
}

func TestMatchKeywords_DegenerateVocabulary(t *testing.T) {
	// Stop words and short tokens vectorize to nothing; the score falls
	// back to zero instead of failing.
	result := MatchKeywords("a an of", []string{"the", "and"})

	assert.InDelta(t, 0.0, result.Score, 1e-9)
}

func TestMatchKeywords_EmptyResumeText(t *testing.T) {
	result := MatchKeywords("", []string{"python"})

	assert.InDelta(t, 0.0, result.Score, 1e-9)
	assert.Equal(t, []string{"python"}, result.Missing)
}
