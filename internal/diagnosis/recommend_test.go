package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func priorities(recs []Recommendation) []Priority {
	out := make([]Priority, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Priority)
	}
	return out
}

func TestRecommendations(t *testing.T) {
	severe := scored("Stroke", "Neurological", 80)
	severe.Severity = SeveritySevere
	mild := scored("Common Cold", "Respiratory Infection", 40)
	mild.Severity = SeverityMild
	flags := []RedFlag{
		{Type: RedFlagStroke, Message: "stroke message"},
		{Type: RedFlagEmergencyRespiratory, Message: "respiratory message"},
	}

	tests := []struct {
		name     string
		ranked   []ScoredCondition
		severity int
		flags    []RedFlag
		want     []Priority
	}{
		{
			name:     "red flags suppress severity advice",
			ranked:   []ScoredCondition{severe},
			severity: 9,
			flags:    flags,
			want: []Priority{PriorityCritical, PriorityCriticalDetail, PriorityCriticalDetail,
				PriorityHigh, PriorityGeneral, PriorityGeneral},
		},
		{
			name:     "high severity",
			ranked:   []ScoredCondition{mild},
			severity: 8,
			want:     []Priority{PriorityHigh, PriorityGeneral, PriorityGeneral},
		},
		{
			name:     "medium severity",
			ranked:   []ScoredCondition{mild},
			severity: 6,
			want:     []Priority{PriorityMedium, PriorityGeneral, PriorityGeneral},
		},
		{
			name:     "low severity, no results",
			severity: 3,
			want:     []Priority{PriorityGeneral, PriorityGeneral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, priorities(Recommendations(tt.ranked, tt.severity, tt.flags)))
		})
	}
}

func TestRecommendationsText(t *testing.T) {
	severe := scored("Meningitis", "Neurological Infection", 80)
	severe.Severity = SeverityModerateSevere
	flags := []RedFlag{{Type: RedFlagMeningitis, Message: meningitisMessage}}

	recs := Recommendations([]ScoredCondition{severe}, 4, flags)

	assert.Equal(t, emergencyBanner, recs[0].Text)
	assert.Equal(t, IconEmergency, recs[0].Icon)
	assert.Equal(t, meningitisMessage, recs[1].Text)
	assert.Equal(t, "Meningitis may require professional medical care", recs[2].Text)
	assert.Equal(t, monitorText, recs[3].Text)
	assert.Equal(t, hydrateText, recs[4].Text)
}
