package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(name, category string, confidence float64) ScoredCondition {
	return ScoredCondition{
		Condition:  Condition{Name: name, Category: category},
		Confidence: confidence,
	}
}

func names(list []ScoredCondition) []string {
	out := make([]string, 0, len(list))
	for _, sc := range list {
		out = append(out, sc.Name)
	}
	return out
}

func TestRankIsStableDescending(t *testing.T) {
	list := []ScoredCondition{
		scored("a", "x", 20),
		scored("b", "x", 50),
		scored("c", "x", 20),
		scored("d", "x", 70),
	}

	Rank(list)

	assert.Equal(t, []string{"d", "b", "a", "c"}, names(list))
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, 15.0, Threshold(1))
	assert.Equal(t, 20.0, Threshold(2))
	assert.Equal(t, 20.0, Threshold(7))
}

func TestSelectThresholdAndPrimarySlice(t *testing.T) {
	ranked := []ScoredCondition{
		scored("a", "x", 90),
		scored("b", "x", 80),
		scored("c", "x", 70),
		scored("d", "x", 60),
		scored("e", "x", 50),
		scored("f", "x", 40),
		scored("g", "x", 20),
		scored("h", "x", 17),
		scored("i", "x", 14.9),
	}

	all, primary := Select(ranked, Threshold(1))
	require.Len(t, all, 8)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names(primary))

	// 17 is admitted for a single-symptom query only
	all, _ = Select(ranked, Threshold(3))
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, names(all))
}

func TestSelectEmpty(t *testing.T) {
	all, primary := Select(nil, Threshold(1))
	assert.Empty(t, all)
	assert.Empty(t, primary)
}
