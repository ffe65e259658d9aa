package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCondition() Condition {
	return Condition{
		ID:       1,
		Name:     "Test",
		Category: "Testing",
		Severity: SeverityModerate,
		Symptoms: []SymptomWeight{
			{Name: "alpha", Weight: 0.9},
			{Name: "beta", Weight: 0.5},
			{Name: "gamma", Weight: 0.6},
			{Name: "delta", Weight: 1.0},
			{Name: "epsilon", Weight: 1.0},
		},
	}
}

func testScorer() *Scorer {
	tables := DefaultScoringTables()
	tables.AcutePattern = []string{"Test"}
	tables.ChronicPattern = []string{"Lingering"}
	return NewScorer(NewMatcher(DefaultSynonyms()), tables)
}

func TestScoreSingleSymptomBoost(t *testing.T) {
	s := testScorer()
	c := testCondition()

	tests := []struct {
		symptom string
		want    float64
	}{
		{"alpha", 61.875}, // 22.5 * 2.5 * 1.1
		{"gamma", 19.8},   // 15 * 1.2 * 1.1
		{"beta", 16.5},    // 12.5 * 1.2 * 1.1
	}
	for _, tt := range tests {
		got := s.Score(c, []string{tt.symptom}, 6, DurationFewDays)
		assert.InDelta(t, tt.want, got.Confidence, 0.06, tt.symptom)
		require.Len(t, got.Matched, 1)
		assert.Empty(t, got.Unmatched)
	}
}

func TestScorePrimarySymptomOutranksWeakerWeight(t *testing.T) {
	s := testScorer()
	strong := testCondition()
	weak := testCondition()
	weak.Symptoms[0].Weight = 0.7

	strongScore := s.Score(strong, []string{"alpha"}, 6, DurationFewDays)
	weakScore := s.Score(weak, []string{"alpha"}, 6, DurationFewDays)

	assert.Greater(t, strongScore.Confidence, weakScore.Confidence)
}

func TestScoreCoverageBonus(t *testing.T) {
	s := testScorer()
	c := testCondition()

	full := s.Score(c, []string{"alpha", "beta"}, 6, DurationFewDays)
	// 35 * 1.5 * 1.1
	assert.InDelta(t, 57.75, full.Confidence, 0.06)
	assert.InDelta(t, 1.4, full.MatchScore, 1e-9)

	partial := s.Score(c, []string{"alpha", "zeta"}, 6, DurationFewDays)
	// 22.5 * 0.8 * 1.1
	assert.InDelta(t, 19.8, partial.Confidence, 0.06)
	assert.Equal(t, []string{"zeta"}, partial.Unmatched)
}

func TestScoreSeverityAlignment(t *testing.T) {
	s := testScorer()
	c := testCondition()
	base := 35 * 1.5 // alpha+beta before severity/duration

	tests := []struct {
		severity int
		factor   float64
	}{
		{5, 1.1},
		{8, 1.1},
		{3, 1.0},
		{10, 1.0},
		{2, 0.9},
		{1, 0.9},
	}
	for _, tt := range tests {
		got := s.Score(c, []string{"alpha", "beta"}, tt.severity, DurationFewDays)
		assert.InDelta(t, base*tt.factor, got.Confidence, 0.06, "severity %d", tt.severity)
	}

	unranged := testCondition()
	unranged.Severity = SeverityMildSevere
	got := s.Score(unranged, []string{"alpha", "beta"}, 1, DurationFewDays)
	assert.InDelta(t, base, got.Confidence, 0.06)
}

func TestScoreDurationAlignment(t *testing.T) {
	s := testScorer()
	acute := testCondition()
	chronic := testCondition()
	chronic.Name = "Lingering"
	neither := testCondition()
	neither.Name = "Other"
	base := 35 * 1.5 * 1.1

	tests := []struct {
		name      string
		condition Condition
		duration  Duration
		factor    float64
	}{
		{"acute short", acute, DurationUnder24Hours, 1.2},
		{"acute long", acute, DurationOverWeek, 0.7},
		{"acute mid", acute, DurationFourToSeven, 1.0},
		{"chronic short", chronic, DurationUnder24Hours, 0.8},
		{"chronic long", chronic, DurationOverWeek, 1.2},
		{"neither", neither, DurationUnder24Hours, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.condition, []string{"alpha", "beta"}, 6, tt.duration)
			assert.InDelta(t, base*tt.factor, got.Confidence, 0.06)
		})
	}
}

func TestScoreCountsEveryMatchingPair(t *testing.T) {
	s := testScorer()
	c := Condition{
		Name:     "Overlap",
		Severity: SeverityModerate,
		Symptoms: []SymptomWeight{
			{Name: "chest pain", Weight: 0.5},
			{Name: "chest pain on exertion", Weight: 0.5},
			{Name: "fever", Weight: 1.0},
		},
	}

	got := s.Score(c, []string{"chest pain"}, 6, DurationFewDays)

	assert.InDelta(t, 1.0, got.MatchScore, 1e-9)
	require.Len(t, got.Matched, 2)
	assert.Equal(t, "chest pain", got.Matched[0].Symptom)
	assert.Equal(t, "chest pain on exertion", got.Matched[1].Symptom)
	// two matched pairs: no single-symptom boost. 50 * 1.1
	assert.InDelta(t, 55.0, got.Confidence, 0.06)
}

func TestScoreClampsAt100(t *testing.T) {
	s := testScorer()
	c := Condition{
		Name:     "Single",
		Severity: SeverityModerate,
		Symptoms: []SymptomWeight{{Name: "omega", Weight: 1.0}},
	}

	got := s.Score(c, []string{"omega"}, 6, DurationFewDays)
	assert.Equal(t, 100.0, got.Confidence)
	assert.Equal(t, "100%", got.Matched[0].Relevance)
}

func TestScoreNoMatch(t *testing.T) {
	got := testScorer().Score(testCondition(), []string{"zeta"}, 6, DurationFewDays)
	assert.Zero(t, got.Confidence)
	assert.Empty(t, got.Matched)
	assert.Equal(t, []string{"zeta"}, got.Unmatched)
}
