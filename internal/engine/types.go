package engine

// CategoryEvaluation is the result of scoring one submission against one
// category. Fit scores live on a 0-10 scale, rounded to one decimal.
type CategoryEvaluation struct {
	Category               Category `json:"category"`
	FitScore               float64  `json:"fit_score"`
	Explanation            string   `json:"explanation"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

// CategoryAnalysis covers all four categories for one submission. BestMatch
// is the category with the highest fit score; ties resolve to the earliest
// category in canonical order.
type CategoryAnalysis struct {
	Evaluations     []CategoryEvaluation `json:"evaluations"`
	BestMatch       Category             `json:"best_match"`
	BestMatchReason string               `json:"best_match_reason"`
}

// Evaluation returns the evaluation for the given category, or nil if the
// analysis does not contain one.
func (a *CategoryAnalysis) Evaluation(c Category) *CategoryEvaluation {
	for i := range a.Evaluations {
		if a.Evaluations[i].Category == c {
			return &a.Evaluations[i]
		}
	}
	return nil
}

// SubScore is one weighted component of a judged criterion, on a 1-5 scale.
type SubScore struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// CriteriaScore is one judged rubric dimension: a weighted blend of exactly
// three named sub-scores, on a 1-5 scale.
type CriteriaScore struct {
	Name          string              `json:"name"`
	Score         float64             `json:"score"`
	Justification string              `json:"justification"`
	SubScores     map[string]SubScore `json:"sub_scores"`
}

// CriteriaAnalysis covers the three judged criteria for one submission.
// FinalScore is the arithmetic mean of the three criterion scores, rounded
// to one decimal.
type CriteriaAnalysis struct {
	Scores                []CriteriaScore `json:"scores"`
	FinalScore            float64         `json:"final_score"`
	FinalScoreExplanation string          `json:"final_score_explanation"`
}

// fitBands maps a fit score to the qualitative label used in explanations.
// First band whose Min the score meets wins.
var fitBands = []struct {
	Min   float64
	Label string
}{
	{Min: 8, Label: "excellent"},
	{Min: 6, Label: "good"},
	{Min: 4, Label: "some"},
	{Min: 0, Label: "limited"},
}

func fitBand(score float64) string {
	for _, b := range fitBands {
		if score >= b.Min {
			return b.Label
		}
	}
	return fitBands[len(fitBands)-1].Label
}
