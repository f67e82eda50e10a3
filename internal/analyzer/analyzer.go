package analyzer

import (
	"context"

	"github.com/dotcommander/kiroscore/internal/engine"
)

// Result bundles the two independent analyses and the derived viability
// figure for one submission.
type Result struct {
	Categories engine.CategoryAnalysis `json:"category_analysis"`
	Criteria   engine.CriteriaAnalysis `json:"criteria_analysis"`
	Viability  float64                 `json:"combined_viability"`
}

// Analyzer produces a full analysis for a submission. Implementations: the
// rule-based engine and the model-based pathway. The two share output types
// only, never scoring code.
type Analyzer interface {
	Analyze(ctx context.Context, sub engine.Submission) (Result, error)
}

// RuleBased runs the deterministic scoring engine. It never returns an
// error for well-formed submissions.
type RuleBased struct {
	categories *engine.CategoryAnalyzer
	criteria   *engine.CriteriaAnalyzer
}

// NewRuleBased creates a rule-based Analyzer.
func NewRuleBased() *RuleBased {
	return &RuleBased{
		categories: engine.NewCategoryAnalyzer(),
		criteria:   engine.NewCriteriaAnalyzer(),
	}
}

// Analyze scores sub against the category taxonomy and the judged rubric.
func (r *RuleBased) Analyze(_ context.Context, sub engine.Submission) (Result, error) {
	categories := r.categories.Analyze(sub)
	criteria := r.criteria.Analyze(sub)
	return Result{
		Categories: categories,
		Criteria:   criteria,
		Viability:  engine.CombineViability(&categories, &criteria),
	}, nil
}

// fallbackAnalyzer tries a primary Analyzer and falls back to a secondary
// one when the primary fails.
type fallbackAnalyzer struct {
	primary  Analyzer
	fallback Analyzer
}

// WithFallback wraps primary so that any error falls through to fallback.
func WithFallback(primary, fallback Analyzer) Analyzer {
	return &fallbackAnalyzer{primary: primary, fallback: fallback}
}

func (f *fallbackAnalyzer) Analyze(ctx context.Context, sub engine.Submission) (Result, error) {
	result, err := f.primary.Analyze(ctx, sub)
	if err != nil {
		return f.fallback.Analyze(ctx, sub)
	}
	return result, nil
}
