package matching

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/types"
)

// defaultBatchConcurrency bounds how many postings are matched at once.
// Each match may issue model calls, so the limit doubles as a soft rate
// limit on the provider.
const defaultBatchConcurrency = 4

// BatchInsights summarizes a batch of match reports against one resume.
type BatchInsights struct {
	Reports      []*types.MatchReport
	BestIndex    int
	BestScore    float64
	AverageScore float64
}

// BatchMatch scores one resume against several job descriptions
// concurrently. Reports come back in input order, one per posting, and
// the slice never contains nils.
func (e *Engine) BatchMatch(ctx context.Context, resume *types.ResumeRecord, jobDescriptions []string) []*types.MatchReport {
	reports := make([]*types.MatchReport, len(jobDescriptions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultBatchConcurrency)
	for i, jd := range jobDescriptions {
		g.Go(func() error {
			reports[i] = e.Match(gctx, resume, jd)
			return nil
		})
	}
	_ = g.Wait()
	return reports
}

// Insights computes summary statistics over a set of match reports. An
// empty set yields a zero BatchInsights with BestIndex -1.
func Insights(reports []*types.MatchReport) BatchInsights {
	insights := BatchInsights{Reports: reports, BestIndex: -1}
	if len(reports) == 0 {
		return insights
	}

	var total float64
	for i, report := range reports {
		total += report.OverallScore
		if insights.BestIndex < 0 || report.OverallScore > insights.BestScore {
			insights.BestIndex = i
			insights.BestScore = report.OverallScore
		}
	}
	insights.AverageScore = total / float64(len(reports))
	return insights
}
