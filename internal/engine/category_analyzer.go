package engine

import "strings"

// fallbackMatchReason is used when the winning explanation has no usable
// second clause.
const fallbackMatchReason = "it demonstrates strong alignment with the category criteria"

// CategoryAnalyzer evaluates a submission against every category and picks
// the best match.
type CategoryAnalyzer struct {
	evaluator *CategoryEvaluator
}

// NewCategoryAnalyzer creates a new CategoryAnalyzer.
func NewCategoryAnalyzer() *CategoryAnalyzer {
	return &CategoryAnalyzer{evaluator: NewCategoryEvaluator()}
}

// Analyze scores sub against all four categories in canonical order and
// selects the highest-scoring one. Ties go to the earliest category.
func (a *CategoryAnalyzer) Analyze(sub Submission) CategoryAnalysis {
	evaluations := make([]CategoryEvaluation, 0, len(AllCategories))
	for _, cat := range AllCategories {
		evaluations = append(evaluations, a.evaluator.Evaluate(sub, cat))
	}

	best := evaluations[0]
	for _, ev := range evaluations[1:] {
		if ev.FitScore > best.FitScore {
			best = ev
		}
	}

	return CategoryAnalysis{
		Evaluations:     evaluations,
		BestMatch:       best.Category,
		BestMatchReason: matchReason(best.Explanation),
	}
}

// matchReason lifts the text after the first period of an explanation,
// falling back to a fixed phrase when nothing usable follows.
func matchReason(explanation string) string {
	_, rest, found := strings.Cut(explanation, ".")
	rest = strings.TrimSpace(rest)
	if !found || rest == "" {
		return fallbackMatchReason
	}
	return rest
}
