package engine

// CombineViability blends the best category fit and the averaged judged
// score into a single 0-5 headline figure. Both inputs rescale onto a 0-5
// half-point grid before averaging. Nil or empty analyses yield 0.
func CombineViability(categories *CategoryAnalysis, criteria *CriteriaAnalysis) float64 {
	if categories == nil || criteria == nil || len(categories.Evaluations) == 0 {
		return 0
	}

	best := categories.Evaluations[0]
	for _, ev := range categories.Evaluations[1:] {
		if ev.FitScore > best.FitScore {
			best = ev
		}
	}

	categoryScore := roundHalf(best.FitScore / 2)
	criteriaScore := roundHalf(criteria.FinalScore)

	return round1((categoryScore + criteriaScore) / 2)
}
