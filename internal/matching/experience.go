package matching

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	levelMatchWeight        = 0.7
	industryRelevanceWeight = 0.3
)

// experienceBands maps an experience level to the inclusive range of
// years it covers. Executive has no upper bound.
var experienceBands = map[string]struct{ min, max float64 }{
	types.LevelEntry:     {0, 2},
	types.LevelMid:       {2, 5},
	types.LevelSenior:    {5, 10},
	types.LevelExecutive: {10, math.Inf(1)},
}

// industryRelevanceTerms lists, per industry, the terms whose presence in
// the resume text signals relevant background. Industries outside the
// table are not assessed and score full relevance.
var industryRelevanceTerms = map[string][]string{
	"technology": {"software", "tech", "development", "engineering"},
	"finance":    {"financial", "banking", "investment"},
	"healthcare": {"medical", "health", "clinical"},
	"education":  {"teaching", "academic", "school"},
}

// ExperienceMatchResult holds the experience sub-score and its inputs.
type ExperienceMatchResult struct {
	Score             float64
	Years             float64
	LevelMatch        float64
	IndustryRelevance float64
}

// MatchExperience scores the resume's work history against the job's
// experience level and industry. Level fit compares total years against
// the level's band; industry relevance is the fraction of the industry's
// signal terms found in the resume text.
func MatchExperience(entries []types.ExperienceEntry, level, industry, resumeText string, now time.Time) ExperienceMatchResult {
	result := ExperienceMatchResult{
		Years:             YearsOfExperience(entries, now),
		IndustryRelevance: industryRelevance(industry, resumeText),
	}
	result.LevelMatch = levelMatch(result.Years, level)
	result.Score = clamp01(levelMatchWeight*result.LevelMatch + industryRelevanceWeight*result.IndustryRelevance)
	return result
}

// YearsOfExperience sums the duration of all experience entries with a
// parseable start date, at month granularity, and returns years rounded
// to one decimal. Entries marked current, or with a missing or
// unparseable end date, run through now. Overlapping entries are counted
// in full, and an entry whose end precedes its start contributes zero.
func YearsOfExperience(entries []types.ExperienceEntry, now time.Time) float64 {
	totalMonths := 0
	for _, entry := range entries {
		start, err := parseEntryDate(entry.StartDate)
		if err != nil {
			continue
		}
		end := now
		if !entry.IsCurrent && entry.EndDate != "" {
			if parsed, err := parseEntryDate(entry.EndDate); err == nil {
				end = parsed
			}
		}
		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		if months > 0 {
			totalMonths += months
		}
	}
	return math.Round(float64(totalMonths)/12*10) / 10
}

// entryDateLayouts are tried in order when parsing resume dates.
var entryDateLayouts = []string{"2006-01-02", "2006-01", "2006"}

func parseEntryDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range entryDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// levelMatch scores total years against the band for the target level.
// Within the band is a perfect fit, overqualified is nearly perfect, and
// underqualified degrades linearly. Unknown levels cannot be assessed and
// score a neutral 0.5.
func levelMatch(years float64, level string) float64 {
	band, ok := experienceBands[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return 0.5
	}
	switch {
	case years >= band.min && years <= band.max:
		return 1.0
	case years > band.max:
		return 0.9
	case band.min > 0:
		return years / band.min
	default:
		return 0.3
	}
}

func industryRelevance(industry, resumeText string) float64 {
	terms, ok := industryRelevanceTerms[strings.ToLower(strings.TrimSpace(industry))]
	if !ok || len(terms) == 0 {
		return 1.0
	}
	lowerText := strings.ToLower(resumeText)
	found := 0
	for _, term := range terms {
		if strings.Contains(lowerText, term) {
			found++
		}
	}
	return float64(found) / float64(len(terms))
}
