// Package diagnosis ranks knowledge-base conditions against a set of
// self-reported symptoms and derives red flags and advice from the ranking.
//
// The engine is a pure function of its inputs: it performs no I/O and keeps
// no state between calls, so one Engine can serve concurrent requests.
package diagnosis

import "errors"

// ErrNoSymptoms is returned when a query carries no usable symptom.
var ErrNoSymptoms = errors.New("no symptoms provided")

type Engine struct {
	conditions []Condition
	matcher    *Matcher
	scorer     *Scorer
}

type options struct {
	synonyms SynonymTable
	tables   ScoringTables
}

type Option func(*options)

// WithSynonyms replaces the built-in synonym table.
func WithSynonyms(t SynonymTable) Option {
	return func(o *options) { o.synonyms = t }
}

// WithScoringTables replaces the built-in severity and duration tables.
func WithScoringTables(t ScoringTables) Option {
	return func(o *options) { o.tables = t }
}

// NewEngine copies conditions; later changes to the slice are not observed.
func NewEngine(conditions []Condition, opts ...Option) *Engine {
	o := options{
		synonyms: DefaultSynonyms(),
		tables:   DefaultScoringTables(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	matcher := NewMatcher(o.synonyms)
	return &Engine{
		conditions: append([]Condition(nil), conditions...),
		matcher:    matcher,
		scorer:     NewScorer(matcher, o.tables),
	}
}

// Matcher exposes the engine's symptom matcher.
func (e *Engine) Matcher() *Matcher {
	return e.matcher
}

// Diagnose scores every condition against q and assembles the full result.
// It fails only with ErrNoSymptoms.
func (e *Engine) Diagnose(q Query) (*Result, error) {
	symptoms := NormalizeAll(q.Symptoms)
	if len(symptoms) == 0 {
		return nil, ErrNoSymptoms
	}

	ranked := e.scoreAll(symptoms, q.Severity, q.Duration)
	Rank(ranked)
	all, primary := Select(ranked, Threshold(len(symptoms)))

	flags := DetectRedFlags(e.matcher, symptoms)

	return &Result{
		Success: true,
		InputData: InputData{
			Symptoms:       append([]string(nil), q.Symptoms...),
			SymptomCount:   len(q.Symptoms),
			Duration:       q.Duration,
			Severity:       q.Severity,
			AdditionalInfo: q.Note,
		},
		Results: Findings{
			PrimaryDiagnoses: primary,
			AllPossibilities: all,
			Combinations:     Combinations(all),
			TotalMatches:     len(all),
			RedFlags:         flags,
		},
		Recommendations: Recommendations(all, q.Severity, flags),
	}, nil
}
