package engine

import (
	"fmt"
	"strings"
)

// Judged criterion names, fixed by the competition rubric.
const (
	CriterionPotentialValue = "Potential Value"
	CriterionImplementation = "Implementation"
	CriterionQualityDesign  = "Quality and Design"
)

// CriterionOrder lists the judged criteria in rubric order.
var CriterionOrder = []string{
	CriterionPotentialValue,
	CriterionImplementation,
	CriterionQualityDesign,
}

// SubCriterionOrder lists each criterion's sub-scores in weight order
// (0.4, 0.3, 0.3). Renderers use it for stable output.
var SubCriterionOrder = map[string][]string{
	CriterionPotentialValue: {"Market Uniqueness", "UI Intuitiveness", "Scalability"},
	CriterionImplementation: {"Kiro Features Variety", "Depth of Understanding", "Strategic Integration"},
	CriterionQualityDesign:  {"Creativity", "Originality", "Polish"},
}

// CriteriaScorer scores a submission against the three judged rubric
// dimensions. Stateless and safe for concurrent use.
type CriteriaScorer struct{}

// NewCriteriaScorer creates a new CriteriaScorer.
func NewCriteriaScorer() *CriteriaScorer {
	return &CriteriaScorer{}
}

// ScorePotentialValue judges market uniqueness, UI intuitiveness, and
// scalability from the project description.
func (s *CriteriaScorer) ScorePotentialValue(sub Submission) CriteriaScore {
	desc := strings.ToLower(sub.Description)
	return weightedCriterion(CriterionPotentialValue,
		scoreMarketUniqueness(desc),
		scoreUIIntuitiveness(desc, sub),
		scoreScalability(desc),
	)
}

// ScoreImplementation judges how the project used Kiro, from the Kiro usage
// text.
func (s *CriteriaScorer) ScoreImplementation(sub Submission) CriteriaScore {
	usage := strings.ToLower(sub.KiroUsage)
	return weightedCriterion(CriterionImplementation,
		scoreKiroFeaturesVariety(usage),
		scoreDepthOfUnderstanding(usage),
		scoreStrategicIntegration(usage),
	)
}

// ScoreQualityAndDesign judges creativity, originality, and polish from the
// project description and supporting materials.
func (s *CriteriaScorer) ScoreQualityAndDesign(sub Submission) CriteriaScore {
	desc := strings.ToLower(sub.Description)
	return weightedCriterion(CriterionQualityDesign,
		scoreCreativity(desc),
		scoreOriginality(desc),
		scorePolish(desc, sub),
	)
}

// namedSubScore pairs a sub-criterion name with its score.
type namedSubScore struct {
	Name string
	SubScore
}

// weightedCriterion blends three sub-scores at fixed 0.4/0.3/0.3 weights.
// Sub-scores are already clamped to [1,5], so the weighted sum stays in
// [1,5] without re-clamping.
func weightedCriterion(name string, first, second, third namedSubScore) CriteriaScore {
	score := round1(first.Score*0.4 + second.Score*0.3 + third.Score*0.3)
	return CriteriaScore{
		Name:  name,
		Score: score,
		Justification: fmt.Sprintf(
			"%s scored %.1f/5, weighting %s (%.1f), %s (%.1f), and %s (%.1f).",
			name, score, first.Name, first.Score, second.Name, second.Score, third.Name, third.Score,
		),
		SubScores: map[string]SubScore{
			first.Name:  first.SubScore,
			second.Name: second.SubScore,
			third.Name:  third.SubScore,
		},
	}
}

// subScore clamps to [1,5] and renders the deterministic signal summary.
func subScore(name string, score float64, signals []string) namedSubScore {
	score = clamp(score, 1, 5)
	explanation := fmt.Sprintf("%s scored %.1f/5 with no strong signals in the text.", name, score)
	if len(signals) > 0 {
		explanation = fmt.Sprintf("%s scored %.1f/5 (signals: %s).", name, score, strings.Join(signals, ", "))
	}
	return namedSubScore{Name: name, SubScore: SubScore{Score: score, Explanation: explanation}}
}

func scoreMarketUniqueness(desc string) namedSubScore {
	score := 2.5
	var signals []string
	if containsAny(desc, uniquenessTerms) {
		score += 1
		signals = append(signals, "uniqueness language")
	}
	if containsAny(desc, differentiationTerms) {
		score += 0.5
		signals = append(signals, "differentiation from alternatives")
	}
	if containsAny(desc, problemTerms) {
		score += 1
		signals = append(signals, "clear problem focus")
	}
	return subScore("Market Uniqueness", score, signals)
}

func scoreUIIntuitiveness(desc string, sub Submission) namedSubScore {
	score := 2.5
	var signals []string
	if containsAny(desc, uiTerms) {
		score += 1
		signals = append(signals, "user-interface language")
	}
	if containsAny(desc, usabilityTerms) {
		score += 0.5
		signals = append(signals, "usability attention")
	}
	if sub.screenshots() > 0 {
		score += 0.5
		signals = append(signals, "screenshots provided")
	}
	if sub.demoLink() != "" {
		score += 0.5
		signals = append(signals, "demo link provided")
	}
	return subScore("UI Intuitiveness", score, signals)
}

func scoreScalability(desc string) namedSubScore {
	score := 2.5
	var signals []string
	if containsAny(desc, scalabilityTerms) {
		score += 1
		signals = append(signals, "scalability language")
	}
	if containsAny(desc, architectureTerms) {
		score += 0.5
		signals = append(signals, "architecture awareness")
	}
	if containsAny(desc, futureTerms) {
		score += 0.5
		signals = append(signals, "growth plans")
	}
	return subScore("Scalability", score, signals)
}

// scoreKiroFeaturesVariety buckets the distinct-feature count into a
// discrete score instead of accumulating increments.
func scoreKiroFeaturesVariety(usage string) namedSubScore {
	hits := countTerms(usage, kiroFeatureTerms)

	var score float64
	switch {
	case hits >= 6:
		score = 5
	case hits >= 4:
		score = 4
	case hits >= 3:
		score = 3
	case hits >= 2:
		score = 2
	default:
		score = 1
	}

	name := "Kiro Features Variety"
	return namedSubScore{Name: name, SubScore: SubScore{
		Score:       score,
		Explanation: fmt.Sprintf("%s scored %.1f/5 from %d distinct Kiro feature mentions.", name, score, hits),
	}}
}

func scoreDepthOfUnderstanding(usage string) namedSubScore {
	score := 2.0
	var signals []string
	if containsAny(usage, depthTerms) {
		score += 1
		signals = append(signals, "depth indicators")
	}
	if containsAny(usage, technicalTerms) {
		score += 0.5
		signals = append(signals, "technical vocabulary")
	}
	if containsAny(usage, challengeTerms) {
		score += 0.5
		signals = append(signals, "challenges discussed")
	}
	if len(usage) >= 300 {
		score += 0.5
		signals = append(signals, "substantial write-up")
	}
	return subScore("Depth of Understanding", score, signals)
}

func scoreStrategicIntegration(usage string) namedSubScore {
	score := 2.0
	var signals []string
	if containsAny(usage, strategyTerms) {
		score += 1
		signals = append(signals, "strategic framing")
	}
	if containsAny(usage, rationaleTerms) {
		score += 0.5
		signals = append(signals, "decision rationale")
	}
	if containsAny(usage, workflowTerms) {
		score += 0.5
		signals = append(signals, "workflow integration")
	}
	return subScore("Strategic Integration", score, signals)
}

func scoreCreativity(desc string) namedSubScore {
	score := 2.5
	var signals []string
	if containsAny(desc, creativityTerms) {
		score += 1
		signals = append(signals, "creative language")
	}
	if containsAny(desc, unconventionalTerms) {
		score += 0.5
		signals = append(signals, "unconventional angle")
	}
	if containsAny(desc, problemSolvingTerms) {
		score += 0.5
		signals = append(signals, "problem-solving focus")
	}
	return subScore("Creativity", score, signals)
}

func scoreOriginality(desc string) namedSubScore {
	score := 3.0
	var signals []string
	if containsAny(desc, originalityTerms) {
		score += 1
		signals = append(signals, "originality claims")
	}
	if containsAny(desc, combinationTerms) {
		score += 0.5
		signals = append(signals, "novel combinations")
	}
	if containsAny(desc, genericTerms) {
		score -= 0.5
		signals = append(signals, "generic phrasing")
	}
	return subScore("Originality", score, signals)
}

func scorePolish(desc string, sub Submission) namedSubScore {
	score := 2.5
	var signals []string
	if containsAny(desc, polishTerms) {
		score += 1
		signals = append(signals, "polish language")
	}
	if containsAny(desc, detailTerms) {
		score += 0.5
		signals = append(signals, "attention to detail")
	}
	if sub.screenshots() > 0 {
		score += 0.5
		signals = append(signals, "screenshots provided")
	}
	if sub.demoLink() != "" {
		score += 0.5
		signals = append(signals, "demo link provided")
	}
	return subScore("Polish", score, signals)
}
