package engine

import "fmt"

// CriteriaAnalyzer runs all three judged criteria and averages them into a
// final score.
type CriteriaAnalyzer struct {
	scorer *CriteriaScorer
}

// NewCriteriaAnalyzer creates a new CriteriaAnalyzer.
func NewCriteriaAnalyzer() *CriteriaAnalyzer {
	return &CriteriaAnalyzer{scorer: NewCriteriaScorer()}
}

// Analyze scores sub on every rubric dimension. The final score is the mean
// of the three criterion scores, rounded to one decimal.
func (a *CriteriaAnalyzer) Analyze(sub Submission) CriteriaAnalysis {
	potential := a.scorer.ScorePotentialValue(sub)
	implementation := a.scorer.ScoreImplementation(sub)
	quality := a.scorer.ScoreQualityAndDesign(sub)

	final := round1((potential.Score + implementation.Score + quality.Score) / 3)

	return CriteriaAnalysis{
		Scores:     []CriteriaScore{potential, implementation, quality},
		FinalScore: final,
		FinalScoreExplanation: fmt.Sprintf(
			"Final score %.1f/5 averages %s (%.1f), %s (%.1f), and %s (%.1f).",
			final,
			potential.Name, potential.Score,
			implementation.Name, implementation.Score,
			quality.Name, quality.Score,
		),
	}
}
