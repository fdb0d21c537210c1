package matching

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Overall score weights. Skills dominate, keyword and experience fit
// carry equal weight, and education is the smallest factor.
const (
	skillWeight      = 0.35
	keywordWeight    = 0.25
	experienceWeight = 0.25
	educationWeight  = 0.15
)

// defaultCollaboratorTimeout bounds each model call made on behalf of a
// single match. The engine falls back to rule-based behavior when the
// model cannot answer in time.
const defaultCollaboratorTimeout = 30 * time.Second

// Engine scores resumes against job descriptions. A zero-value Engine is
// not usable; construct one with NewEngine. The model client is optional
// and every model-backed step has a deterministic fallback, so an engine
// without a client still produces complete reports.
type Engine struct {
	client  llm.Client
	timeout time.Duration
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClient sets the model client used for job analysis and
// recommendation generation.
func WithClient(client llm.Client) Option {
	return func(e *Engine) { e.client = client }
}

// WithTimeout sets the per-call model timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithClock overrides the clock used to evaluate open-ended experience
// entries. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine builds a match engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		timeout: defaultCollaboratorTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze extracts a structured job analysis from a free-text job
// description. When the description looks like an HTML posting it is
// cleaned first. The result is never nil.
func (e *Engine) Analyze(ctx context.Context, jobDescription string) *types.JobAnalysis {
	if parsing.LooksLikeHTML(jobDescription) {
		jobDescription = parsing.CleanJobPostingHTML(jobDescription)
	}
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return parsing.AnalyzeJobDescription(cctx, e.client, jobDescription)
}

// Match analyzes the job description and scores the resume against it.
// It always returns a complete report; degraded collaborators degrade
// the inputs, never the shape of the output.
func (e *Engine) Match(ctx context.Context, resume *types.ResumeRecord, jobDescription string) *types.MatchReport {
	return e.MatchAgainst(ctx, resume, e.Analyze(ctx, jobDescription))
}

// MatchAgainst scores the resume against an already-computed job
// analysis. Callers matching one resume against many postings, or many
// resumes against one posting, use this to avoid re-analyzing. The four
// sub-scorers and the ATS check run concurrently; all of them are pure
// and none can fail.
func (e *Engine) MatchAgainst(ctx context.Context, resume *types.ResumeRecord, analysis *types.JobAnalysis) *types.MatchReport {
	if analysis == nil {
		analysis = types.NewJobAnalysis()
	}

	resumeText := resume.FullText()
	sectionedText := resume.SectionedText()
	keywords := analysis.AllKeywords()

	var (
		skills     SkillMatchResult
		kw         KeywordMatchResult
		experience ExperienceMatchResult
		education  EducationMatchResult
		ats        float64
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		skills = MatchSkills(resume.Skills, analysis.RequiredSkills, analysis.PreferredSkills)
		return nil
	})
	g.Go(func() error {
		kw = MatchKeywords(resumeText, keywords)
		return nil
	})
	g.Go(func() error {
		experience = MatchExperience(resume.Experience, analysis.ExperienceLevel, analysis.Industry, resumeText, e.now())
		return nil
	})
	g.Go(func() error {
		education = MatchEducation(resume.Education, analysis.EducationRequirements)
		return nil
	})
	g.Go(func() error {
		ats = ScoreATS(sectionedText, keywords)
		return nil
	})
	// The scorers never return errors; Wait is only a join point.
	_ = g.Wait()

	overall := clamp01(skillWeight*skills.Score +
		keywordWeight*kw.Score +
		experienceWeight*experience.Score +
		educationWeight*education.Score)

	missingSkills := make([]string, 0, len(skills.MissingRequired)+len(skills.MissingPreferred))
	missingSkills = append(missingSkills, skills.MissingRequired...)
	missingSkills = append(missingSkills, skills.MissingPreferred...)

	report := &types.MatchReport{
		OverallScore: overall,
		ScoreBreakdown: types.ScoreBreakdown{
			SkillScore:      skills.Score,
			KeywordScore:    kw.Score,
			ExperienceScore: experience.Score,
			EducationScore:  education.Score,
		},
		ATSScore:         ats,
		MissingSkills:    missingSkills,
		MatchingKeywords: kw.Matching,
		MissingKeywords:  kw.Missing,
		JobAnalysis:      analysis,
	}
	report.Recommendations = e.recommendations(ctx, resume, analysis, report)
	return report
}
