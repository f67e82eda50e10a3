package engine

import (
	"math"
	"strings"
)

// containsAny reports whether any term occurs as a substring of text.
// Callers pass text already lower-cased.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// countTerms counts how many distinct terms occur as substrings of text.
func countTerms(text string, terms []string) int {
	var n int
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// roundHalf snaps to the nearest half point.
func roundHalf(v float64) float64 {
	return math.Round(v/0.5) * 0.5
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// combinedText lowers and joins the two free-text fields of a submission.
func combinedText(sub Submission) string {
	return strings.ToLower(sub.Description + " " + sub.KiroUsage)
}
