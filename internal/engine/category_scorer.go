package engine

import (
	"fmt"
	"math"
	"strings"
)

// CategoryEvaluator scores a submission against a single category on a 0-10
// scale. It is stateless; a single evaluator is safe for concurrent use.
type CategoryEvaluator struct{}

// NewCategoryEvaluator creates a new CategoryEvaluator.
func NewCategoryEvaluator() *CategoryEvaluator {
	return &CategoryEvaluator{}
}

// Evaluate scores sub against cat. Unknown categories contribute nothing to
// the keyword and thematic components rather than failing.
func (e *CategoryEvaluator) Evaluate(sub Submission, cat Category) CategoryEvaluation {
	text := combinedText(sub)

	keyword := math.Min(float64(countTerms(text, categoryKeywords[cat]))*0.5, 3)
	thematic := e.thematicScore(sub, cat)
	implementation := kiroUsageScore(sub.KiroUsage)

	fit := math.Min(round1(keyword+thematic+implementation), 10)

	return CategoryEvaluation{
		Category:               cat,
		FitScore:               fit,
		Explanation:            categoryExplanation(cat, fit, keyword, thematic, implementation),
		ImprovementSuggestions: categoryImprovements(cat, keyword, thematic, implementation),
	}
}

// thematicScore is the category-specific 0-4 alignment component. The switch
// is exhaustive over the four categories; anything else scores zero.
func (e *CategoryEvaluator) thematicScore(sub Submission, cat Category) float64 {
	desc := strings.ToLower(sub.Description)
	both := combinedText(sub)

	switch cat {
	case CategoryResurrection:
		var score float64
		if containsAny(desc, obsoleteTechTerms) {
			score += 1.5
		}
		if containsAny(both, modernizationTerms) {
			score += 1.5
		}
		if containsAny(desc, practicalTerms) {
			score += 1
		}
		return math.Min(score, 4)

	case CategoryFrankenstein:
		score := math.Min(float64(countTerms(both, integrationTerms))*0.5, 2)
		if containsAny(both, techDiversityTerms) {
			score += 1.5
		}
		if containsAny(desc, challengeTerms) {
			score += 0.5
		}
		return math.Min(score, 4)

	case CategorySkeletonCrew:
		var score float64
		if containsAny(both, foundationTerms) {
			score += 2
		}
		if containsAny(both, flexibilityTerms) {
			score += 1.5
		}
		if containsAny(desc, useCaseTerms) {
			score += 0.5
		}
		return math.Min(score, 4)

	case CategoryCostumeContest:
		score := math.Min(float64(countTerms(both, designTerms))*0.4, 2)
		if containsAny(both, spookyTerms) {
			score += 1.5
		}
		if sub.Materials.HasVisuals() {
			score += 0.5
		}
		return math.Min(score, 4)
	}

	return 0
}

// kiroUsageScore is the 0-3 implementation-quality component, derived from
// the Kiro usage text only.
func kiroUsageScore(kiroUsage string) float64 {
	text := strings.ToLower(kiroUsage)

	score := math.Min(float64(countTerms(text, capabilityTerms))*0.3, 1.5)
	if containsAny(text, depthTerms) {
		score += 1
	}
	if containsAny(text, strategyTerms) {
		score += 0.5
	}
	return math.Min(score, 3)
}

// categoryExplanation renders the deterministic explanation. The first
// sentence stays free of decimal points so the aggregator can lift the text
// after the first period as a best-match reason.
func categoryExplanation(cat Category, fit, keyword, thematic, implementation float64) string {
	band := fitBand(fit)
	return fmt.Sprintf(
		"Fit for the %s category: %s. The submission demonstrates %s alignment (keyword match %.1f/3, thematic fit %.1f/4, Kiro usage %.1f/3) for an overall fit score of %.1f/10. %s",
		cat.DisplayName(), band, band, keyword, thematic, implementation, fit, cat.Description(),
	)
}

// categoryImprovements derives the deterministic suggestion list from the
// three sub-scores. Same input, same suggestions, same order.
func categoryImprovements(cat Category, keyword, thematic, implementation float64) []string {
	var suggestions []string

	if keyword < 2 {
		kw := categoryKeywords[cat]
		if len(kw) >= 3 {
			suggestions = append(suggestions, fmt.Sprintf(
				"Work more %s vocabulary into the description; terms like %q, %q, and %q signal category fit.",
				cat.DisplayName(), kw[0], kw[1], kw[2],
			))
		}
	}
	if thematic < 2 {
		suggestions = append(suggestions, categorySuggestions[cat]...)
	}
	if implementation < 1.5 {
		suggestions = append(suggestions, kiroUsageSuggestions...)
	}
	return suggestions
}
