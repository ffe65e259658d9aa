package diagnosis

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SynonymTable maps a canonical phrasing to its alternates. Entries are
// compared against normalized input as-is, so they must be lowercase.
type SynonymTable map[string][]string

// DefaultSynonyms returns a fresh copy of the built-in synonym groups.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"stomach pain":        {"abdominal pain", "belly pain", "tummy ache", "stomach ache"},
		"shortness of breath": {"difficulty breathing", "breathlessness", "dyspnea", "labored breathing"},
		"body aches":          {"muscle pain", "myalgia", "body pain", "aching joints"},
		"sore throat":         {"throat pain", "pharyngitis", "strep throat"},
		"runny nose":          {"nasal congestion", "stuffy nose", "sinus pressure"},
		"tiredness":           {"fatigue", "exhaustion", "weakness", "lethargy"},
		"sweating":            {"night sweats", "diaphoresis", "perspiration"},
		"radiating pain":      {"pain moving to arm", "pain moving to jaw", "referred pain"},
		"chest pain":          {"chest pressure", "chest tightness", "angina"},
		"dizziness":           {"vertigo", "lightheadedness", "unsteadiness"},
		"fainting":            {"syncope", "passed out", "lost consciousness"},
		"confusion":           {"disorientation", "altered mental state", "brain fog"},
	}
}

// Normalize folds compatibility forms, trims and lowercases a symptom.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// NormalizeAll normalizes every symptom and drops entries that end up empty.
func NormalizeAll(symptoms []string) []string {
	out := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if n := Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Matcher decides whether two symptom strings name the same complaint.
// A Matcher is read-only after construction and safe for concurrent use.
type Matcher struct {
	synonyms SynonymTable
}

func NewMatcher(synonyms SynonymTable) *Matcher {
	table := make(SynonymTable, len(synonyms))
	for k, v := range synonyms {
		table[k] = append([]string(nil), v...)
	}
	return &Matcher{synonyms: table}
}

// Matches is commutative. Substring containment counts as a match, so
// "cough" matches "coughing blood".
func (m *Matcher) Matches(a, b string) bool {
	s1, s2 := Normalize(a), Normalize(b)

	if s1 == s2 {
		return true
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return true
	}

	for key, alternates := range m.synonyms {
		if inGroup(s1, key, alternates) && inGroup(s2, key, alternates) {
			return true
		}
	}
	return false
}

// Any reports whether target matches at least one of symptoms.
func (m *Matcher) Any(symptoms []string, target string) bool {
	for _, s := range symptoms {
		if m.Matches(s, target) {
			return true
		}
	}
	return false
}

func inGroup(s, key string, alternates []string) bool {
	if s == key {
		return true
	}
	for _, alt := range alternates {
		if s == alt {
			return true
		}
	}
	return false
}
