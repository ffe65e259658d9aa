package diagnosis

import "fmt"

const (
	emergencyBanner = "EMERGENCY: One or more life-threatening symptom clusters detected. Call 911 or visit the nearest ER immediately."
	urgentCareText  = "Seek immediate medical attention due to high severity level"
	consultText     = "Consider consulting a healthcare provider soon"
	monitorText     = "Monitor your symptoms and track any changes"
	hydrateText     = "Stay hydrated and get adequate rest"
)

// Recommendations builds the advisory list in emission order; entries are
// never re-sorted by priority.
func Recommendations(ranked []ScoredCondition, severity int, flags []RedFlag) []Recommendation {
	recs := []Recommendation{}

	if len(flags) > 0 {
		recs = append(recs, Recommendation{Priority: PriorityCritical, Text: emergencyBanner, Icon: IconEmergency})
		for _, f := range flags {
			recs = append(recs, Recommendation{Priority: PriorityCriticalDetail, Text: f.Message, Icon: IconAmbulance})
		}
	} else if severity >= 8 {
		recs = append(recs, Recommendation{Priority: PriorityHigh, Text: urgentCareText, Icon: IconAlert})
	} else if severity >= 6 {
		recs = append(recs, Recommendation{Priority: PriorityMedium, Text: consultText, Icon: IconWarning})
	}

	if len(ranked) > 0 {
		top := ranked[0]
		if top.Severity == SeveritySevere || top.Severity == SeverityModerateSevere {
			recs = append(recs, Recommendation{
				Priority: PriorityHigh,
				Text:     fmt.Sprintf("%s may require professional medical care", top.Name),
				Icon:     IconHospital,
			})
		}
	}

	recs = append(recs,
		Recommendation{Priority: PriorityGeneral, Text: monitorText, Icon: IconMonitor},
		Recommendation{Priority: PriorityGeneral, Text: hydrateText, Icon: IconHydrate},
	)
	return recs
}
