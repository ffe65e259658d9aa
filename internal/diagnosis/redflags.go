package diagnosis

var (
	strokeSymptoms     = []string{"facial droop", "arm weakness", "speech difficulty"}
	cardiacAddons      = []string{"radiating pain", "sweating", "shortness of breath", "nausea"}
	meningitisSymptoms = []string{"stiff neck", "light sensitivity", "fever", "headache"}
)

const (
	strokeMessage      = "Possible STROKE detected (FAST symptoms present). Time is critical."
	cardiacMessage     = "Potential MYOCARDIAL INFARCTION (Heart Attack) cluster detected."
	meningitisMessage  = "Potential MENINGITIS cluster detected (Neck stiffness + Fever/Photophobia)."
	respiratoryMessage = "Coughing blood (Hemoptysis) requires immediate medical evaluation."
)

// DetectRedFlags scans normalized symptoms for emergency clusters. Every
// cluster is checked independently; the ranked diagnoses play no part.
func DetectRedFlags(m *Matcher, symptoms []string) []RedFlag {
	flags := []RedFlag{}

	if found := present(m, symptoms, strokeSymptoms); len(found) > 0 {
		flags = append(flags, RedFlag{
			Type:     RedFlagStroke,
			Severity: AlertCritical,
			Message:  strokeMessage,
			Symptoms: found,
		})
	}

	if m.Any(symptoms, "chest pain") {
		if addons := present(m, symptoms, cardiacAddons); len(addons) >= 2 {
			flags = append(flags, RedFlag{
				Type:     RedFlagCardiac,
				Severity: AlertCritical,
				Message:  cardiacMessage,
				Symptoms: append([]string{"chest pain"}, addons...),
			})
		}
	}

	found := present(m, symptoms, meningitisSymptoms)
	if contains(found, "stiff neck") && (contains(found, "fever") || contains(found, "light sensitivity")) {
		flags = append(flags, RedFlag{
			Type:     RedFlagMeningitis,
			Severity: AlertCritical,
			Message:  meningitisMessage,
			Symptoms: found,
		})
	}

	if m.Any(symptoms, "coughing blood") {
		flags = append(flags, RedFlag{
			Type:     RedFlagEmergencyRespiratory,
			Severity: AlertHigh,
			Message:  respiratoryMessage,
			Symptoms: []string{"coughing blood"},
		})
	}

	return flags
}

// present returns the members of cluster matched by any symptom, in
// cluster order.
func present(m *Matcher, symptoms, cluster []string) []string {
	var found []string
	for _, c := range cluster {
		if m.Any(symptoms, c) {
			found = append(found, c)
		}
	}
	return found
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
