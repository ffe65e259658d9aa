package diagnosis

// SeverityLabel is the expected severity profile of a condition.
type SeverityLabel string

const (
	SeverityMild           SeverityLabel = "mild"
	SeverityMildModerate   SeverityLabel = "mild-moderate"
	SeverityModerate       SeverityLabel = "moderate"
	SeverityModerateSevere SeverityLabel = "moderate-severe"
	SeverityMildSevere     SeverityLabel = "mild-severe"
	SeveritySevere         SeverityLabel = "severe"
)

// Valid reports whether s is one of the known labels.
func (s SeverityLabel) Valid() bool {
	switch s {
	case SeverityMild, SeverityMildModerate, SeverityModerate,
		SeverityModerateSevere, SeverityMildSevere, SeveritySevere:
		return true
	}
	return false
}

// SymptomWeight ties a symptom name to how characteristic it is of a condition.
type SymptomWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Condition is one knowledge-base record. Symptoms keep their declared order.
type Condition struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Severity        SeverityLabel   `json:"severity"`
	Symptoms        []SymptomWeight `json:"symptoms"`
	Recommendations []string        `json:"recommendations"`
}

// Query is a single diagnosis request.
type Query struct {
	Symptoms []string
	Duration Duration
	Severity int
	Note     string
}

type MatchedSymptom struct {
	Symptom   string  `json:"symptom"`
	Weight    float64 `json:"weight"`
	Relevance string  `json:"relevance"`
}

// ScoredCondition is a condition annotated with its score for one query.
type ScoredCondition struct {
	Condition
	MatchScore        float64          `json:"matchScore"`
	Confidence        float64          `json:"confidence"`
	MatchedSymptoms   []MatchedSymptom `json:"matchedSymptoms"`
	UnmatchedSymptoms []string         `json:"unmatchedSymptoms"`
}

type CombinationType string

const (
	CombinationCategoryGroup CombinationType = "category_group"
	CombinationCoOccurrence  CombinationType = "co_occurrence"
)

type CombinationMember struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Combination is either a category group (Category, Diseases) or a
// co-occurrence pair (Primary, Secondary, CombinedConfidence).
type Combination struct {
	Type               CombinationType     `json:"type"`
	Category           string              `json:"category,omitempty"`
	Diseases           []CombinationMember `json:"diseases,omitempty"`
	Primary            string              `json:"primary,omitempty"`
	Secondary          string              `json:"secondary,omitempty"`
	CombinedConfidence float64             `json:"combinedConfidence,omitempty"`
	Description        string              `json:"description"`
}

type RedFlagKind string

const (
	RedFlagStroke               RedFlagKind = "STROKE"
	RedFlagCardiac              RedFlagKind = "CARDIAC"
	RedFlagMeningitis           RedFlagKind = "MENINGITIS"
	RedFlagEmergencyRespiratory RedFlagKind = "EMERGENCY_RESPIRATORY"
)

type AlertLevel string

const (
	AlertCritical AlertLevel = "CRITICAL"
	AlertHigh     AlertLevel = "HIGH"
)

type RedFlag struct {
	Type     RedFlagKind `json:"type"`
	Severity AlertLevel  `json:"severity"`
	Message  string      `json:"message"`
	Symptoms []string    `json:"symptoms"`
}

type Priority string

const (
	PriorityCritical       Priority = "CRITICAL"
	PriorityCriticalDetail Priority = "CRITICAL_DETAIL"
	PriorityHigh           Priority = "HIGH"
	PriorityMedium         Priority = "MEDIUM"
	PriorityGeneral        Priority = "GENERAL"
)

// Icon is a symbolic tag; clients pick the glyph.
type Icon string

const (
	IconEmergency Icon = "emergency"
	IconAmbulance Icon = "ambulance"
	IconAlert     Icon = "alert"
	IconWarning   Icon = "warning"
	IconHospital  Icon = "hospital"
	IconMonitor   Icon = "monitor"
	IconHydrate   Icon = "hydrate"
)

type Recommendation struct {
	Priority Priority `json:"priority"`
	Text     string   `json:"text"`
	Icon     Icon     `json:"icon"`
}

type InputData struct {
	Symptoms       []string `json:"symptoms"`
	SymptomCount   int      `json:"symptomCount"`
	Duration       Duration `json:"duration"`
	Severity       int      `json:"severity"`
	AdditionalInfo string   `json:"additionalInfo"`
}

type Findings struct {
	PrimaryDiagnoses []ScoredCondition `json:"primaryDiagnoses"`
	AllPossibilities []ScoredCondition `json:"allPossibilities"`
	Combinations     []Combination     `json:"combinations"`
	TotalMatches     int               `json:"totalMatches"`
	RedFlags         []RedFlag         `json:"redFlags"`
}

// Result is the aggregate output of Engine.Diagnose.
type Result struct {
	Success         bool             `json:"success"`
	InputData       InputData        `json:"inputData"`
	Results         Findings         `json:"results"`
	Recommendations []Recommendation `json:"recommendations"`
}
