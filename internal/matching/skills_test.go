package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills_PartialRequired(t *testing.T) {
	result := MatchSkills(
		[]string{"Python", "SQL"},
		[]string{"Python", "SQL", "AWS"},
		nil,
	)

	assert.Equal(t, []string{"Python", "SQL"}, result.MatchedRequired)
	assert.Equal(t, []string{"AWS"}, result.MissingRequired)
	// 0.7 * 2/3 for required plus the full 0.3 for the empty preferred tier
	assert.InDelta(t, 0.7667, result.Score, 0.001)
}

func TestMatchSkills_NoRequirementsScoresPerfect(t *testing.T) {
	result := MatchSkills([]string{"Go"}, nil, nil)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.Empty(t, result.MissingRequired)
	assert.Empty(t, result.MissingPreferred)
}

func TestMatchSkills_SubstringMatching(t *testing.T) {
	result := MatchSkills(
		[]string{"React"},
		[]string{"React.js"},
		nil,
	)

	assert.Equal(t, []string{"React.js"}, result.MatchedRequired)
	assert.Empty(t, result.MissingRequired)
}

func TestMatchSkills_CaseInsensitive(t *testing.T) {
	result := MatchSkills(
		[]string{"pYtHoN"},
		[]string{"Python"},
		[]string{"python scripting"},
	)

	assert.Len(t, result.MatchedRequired, 1)
	assert.Len(t, result.MatchedPreferred, 1)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
}

func TestMatchSkills_PreferredOnly(t *testing.T) {
	result := MatchSkills(
		[]string{"Docker"},
		nil,
		[]string{"Docker", "Kubernetes"},
	)

	// Full 0.7 for the empty required tier, 0.3 * 1/2 for preferred
	assert.InDelta(t, 0.85, result.Score, 1e-9)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingPreferred)
}

func TestMatchSkills_EmptyResume(t *testing.T) {
	result := MatchSkills(nil, []string{"Python"}, []string{"SQL"})
	assert.InDelta(t, 0.0, result.Score, 1e-9)
	assert.Equal(t, []string{"Python"}, result.MissingRequired)
	assert.Equal(t, []string{"SQL"}, result.MissingPreferred)
}
