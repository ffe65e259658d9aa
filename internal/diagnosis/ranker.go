package diagnosis

import "sort"

const (
	// PrimaryLimit is the number of results reported as primary diagnoses.
	PrimaryLimit = 5

	singleSymptomThreshold = 15.0
	defaultThreshold       = 20.0
)

// Threshold is the minimum confidence a condition needs to be reported.
func Threshold(symptomCount int) float64 {
	if symptomCount == 1 {
		return singleSymptomThreshold
	}
	return defaultThreshold
}

// scoreAll scores every condition and keeps those with positive confidence,
// preserving knowledge-base order.
func (e *Engine) scoreAll(symptoms []string, severity int, d Duration) []ScoredCondition {
	scored := make([]ScoredCondition, 0, len(e.conditions))
	for _, c := range e.conditions {
		sc := e.scorer.Score(c, symptoms, severity, d)
		if sc.Confidence <= 0 {
			continue
		}
		scored = append(scored, ScoredCondition{
			Condition:         c,
			MatchScore:        sc.MatchScore,
			Confidence:        sc.Confidence,
			MatchedSymptoms:   sc.Matched,
			UnmatchedSymptoms: sc.Unmatched,
		})
	}
	return scored
}

// Rank sorts by confidence, highest first. Equal confidences keep their
// incoming order.
func Rank(scored []ScoredCondition) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})
}

// Select drops everything strictly below threshold from a ranked list and
// returns the filtered list together with its top PrimaryLimit entries.
func Select(ranked []ScoredCondition, threshold float64) (all, primary []ScoredCondition) {
	all = make([]ScoredCondition, 0, len(ranked))
	for _, sc := range ranked {
		if sc.Confidence >= threshold {
			all = append(all, sc)
		}
	}
	primary = all
	if len(primary) > PrimaryLimit {
		primary = primary[:PrimaryLimit]
	}
	return all, primary
}
