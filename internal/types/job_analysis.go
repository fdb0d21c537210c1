package types

// Experience level labels produced by job-description analysis.
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelExecutive = "executive"
	LevelUnknown   = "unknown"
)

// IndustryGeneral is the default industry label when no industry keyword matches.
const IndustryGeneral = "general"

// JobAnalysis represents a job description decomposed into structured fields.
// Every field is always populated: collections default to empty slices,
// ExperienceLevel defaults to "unknown" and Industry to "general".
type JobAnalysis struct {
	RequiredSkills        []string       `json:"required_skills"`
	PreferredSkills       []string       `json:"preferred_skills"`
	HardRequirements      []string       `json:"hard_requirements"`
	SoftRequirements      []string       `json:"soft_requirements"`
	Responsibilities      []string       `json:"responsibilities"`
	Keywords              []string       `json:"keywords"`
	ATSKeywords           []string       `json:"ats_keywords"`
	ExperienceLevel       string         `json:"experience_level"`
	EducationRequirements []string       `json:"education_requirements"`
	Industry              string         `json:"industry"`
	WordFrequency         map[string]int `json:"word_frequency"`
}

// NewJobAnalysis returns a JobAnalysis with all fields set to their
// documented defaults. Analysis never leaves a field absent.
func NewJobAnalysis() *JobAnalysis {
	return &JobAnalysis{
		RequiredSkills:        []string{},
		PreferredSkills:       []string{},
		HardRequirements:      []string{},
		SoftRequirements:      []string{},
		Responsibilities:      []string{},
		Keywords:              []string{},
		ATSKeywords:           []string{},
		ExperienceLevel:       LevelUnknown,
		EducationRequirements: []string{},
		Industry:              IndustryGeneral,
		WordFrequency:         map[string]int{},
	}
}

// AllKeywords returns the case-insensitively deduplicated union of Keywords
// and ATSKeywords, preserving first-seen order and casing.
func (a *JobAnalysis) AllKeywords() []string {
	seen := make(map[string]bool, len(a.Keywords)+len(a.ATSKeywords))
	union := make([]string, 0, len(a.Keywords)+len(a.ATSKeywords))
	for _, group := range [][]string{a.Keywords, a.ATSKeywords} {
		for _, kw := range group {
			lower := toLowerTrim(kw)
			if lower == "" || seen[lower] {
				continue
			}
			seen[lower] = true
			union = append(union, kw)
		}
	}
	return union
}
