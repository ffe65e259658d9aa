package diagnosis

import (
	"fmt"
	"math"
)

// SeverityRange is the user-reported severity band expected for a label.
type SeverityRange struct {
	Min int
	Max int
}

// ScoringTables holds the curated adjustment data used by the Scorer.
type ScoringTables struct {
	SeverityRanges map[SeverityLabel]SeverityRange
	// AcutePattern and ChronicPattern list condition names.
	AcutePattern   []string
	ChronicPattern []string
}

// DefaultScoringTables returns a fresh copy of the built-in tables.
// mild-severe deliberately has no range.
func DefaultScoringTables() ScoringTables {
	return ScoringTables{
		SeverityRanges: map[SeverityLabel]SeverityRange{
			SeverityMild:           {Min: 1, Max: 4},
			SeverityMildModerate:   {Min: 3, Max: 6},
			SeverityModerate:       {Min: 5, Max: 8},
			SeverityModerateSevere: {Min: 7, Max: 10},
			SeveritySevere:         {Min: 8, Max: 10},
		},
		AcutePattern: []string{
			"Influenza (Flu)",
			"Asthma Attack",
			"Myocardial Infarction (Heart Attack)",
			"Stroke",
			"Anxiety Disorder",
			"Vertigo",
			"Allergic Reaction",
			"Dengue Fever",
		},
		ChronicPattern: []string{
			"Anemia",
			"Acid Reflux (GERD)",
			"Fibromyalgia",
			"Bronchitis",
			"Sinusitis",
		},
	}
}

// Score is the outcome of scoring one condition against one query.
type Score struct {
	MatchScore float64
	Confidence float64
	Matched    []MatchedSymptom
	Unmatched  []string
}

// Scorer computes per-condition confidence. It holds no mutable state.
type Scorer struct {
	matcher *Matcher
	ranges  map[SeverityLabel]SeverityRange
	acute   map[string]struct{}
	chronic map[string]struct{}
}

func NewScorer(matcher *Matcher, tables ScoringTables) *Scorer {
	ranges := make(map[SeverityLabel]SeverityRange, len(tables.SeverityRanges))
	for k, v := range tables.SeverityRanges {
		ranges[k] = v
	}
	return &Scorer{
		matcher: matcher,
		ranges:  ranges,
		acute:   nameSet(tables.AcutePattern),
		chronic: nameSet(tables.ChronicPattern),
	}
}

// Score expects symptoms already normalized. A user symptom that matches
// several condition symptoms contributes each of their weights.
func (s *Scorer) Score(c Condition, symptoms []string, severity int, d Duration) Score {
	var totalWeight, matchedWeight, maxWeight float64
	for _, cs := range c.Symptoms {
		totalWeight += cs.Weight
	}

	matched := []MatchedSymptom{}
	unmatched := []string{}
	matchedQuery := 0

	for _, us := range symptoms {
		found := false
		for _, cs := range c.Symptoms {
			if !s.matcher.Matches(us, cs.Name) {
				continue
			}
			matchedWeight += cs.Weight
			if cs.Weight > maxWeight {
				maxWeight = cs.Weight
			}
			matched = append(matched, MatchedSymptom{
				Symptom:   cs.Name,
				Weight:    cs.Weight,
				Relevance: fmt.Sprintf("%.0f%%", cs.Weight*100),
			})
			found = true
		}
		if found {
			matchedQuery++
		} else {
			unmatched = append(unmatched, us)
		}
	}

	confidence := 0.0
	if totalWeight > 0 {
		confidence = matchedWeight / totalWeight * 100
	}

	n := len(symptoms)
	if n == 1 && len(matched) == 1 {
		confidence *= primarySymptomFactor(maxWeight)
	}
	if n > 1 && matchedQuery == n {
		confidence *= 1.5
	}
	if n > 0 {
		matchRatio := float64(matchedQuery) / float64(n)
		confidence *= 0.6 + 0.4*matchRatio
	}

	confidence *= s.severityFactor(c.Severity, severity)
	confidence *= s.durationFactor(c.Name, d)

	confidence = math.Min(confidence, 100)

	return Score{
		MatchScore: matchedWeight,
		Confidence: round1(confidence),
		Matched:    matched,
		Unmatched:  unmatched,
	}
}

func primarySymptomFactor(weight float64) float64 {
	switch {
	case weight >= 0.9:
		return 2.5
	case weight >= 0.7:
		return 1.8
	default:
		return 1.2
	}
}

func (s *Scorer) severityFactor(label SeverityLabel, severity int) float64 {
	r, ok := s.ranges[label]
	if !ok {
		return 1.0
	}
	if severity >= r.Min && severity <= r.Max {
		return 1.1
	}
	if absInt(severity-r.Min) <= 2 || absInt(severity-r.Max) <= 2 {
		return 1.0
	}
	return 0.9
}

func (s *Scorer) durationFactor(name string, d Duration) float64 {
	_, acute := s.acute[name]
	_, chronic := s.chronic[name]

	switch d {
	case DurationUnder24Hours:
		if acute {
			return 1.2
		}
		if chronic {
			return 0.8
		}
	case DurationOverWeek:
		if chronic {
			return 1.2
		}
		if acute {
			return 0.7
		}
	}
	return 1.0
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
