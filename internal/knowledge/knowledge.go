// Package knowledge loads the condition knowledge base consumed by the
// diagnosis engine. A Base is immutable once loaded.
package knowledge

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Skufu/GoSymptom/internal/diagnosis"
)

//go:embed conditions.yaml
var defaultConditions []byte

var ErrConditionNotFound = errors.New("condition not found")

type document struct {
	Conditions []record `yaml:"conditions"`
}

type record struct {
	ID              int             `yaml:"id"`
	Name            string          `yaml:"name"`
	Category        string          `yaml:"category"`
	Description     string          `yaml:"description"`
	Severity        string          `yaml:"severity"`
	Symptoms        []symptomRecord `yaml:"symptoms"`
	Recommendations []string        `yaml:"recommendations"`
}

type symptomRecord struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// Summary is the listing view of a condition.
type Summary struct {
	ID          int                     `json:"id"`
	Name        string                  `json:"name"`
	Category    string                  `json:"category"`
	Description string                  `json:"description"`
	Severity    diagnosis.SeverityLabel `json:"severity"`
}

type Base struct {
	conditions []diagnosis.Condition
	byID       map[int]int
	symptoms   []string
}

// Load reads the knowledge base at path, or the embedded default when path
// is empty.
func Load(path string) (*Base, error) {
	if path == "" {
		return Parse(defaultConditions)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	base, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return base, nil
}

// Default returns the embedded knowledge base.
func Default() (*Base, error) {
	return Parse(defaultConditions)
}

// Parse decodes and validates a YAML knowledge base.
func Parse(data []byte) (*Base, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	if len(doc.Conditions) == 0 {
		return nil, errors.New("knowledge base has no conditions")
	}

	base := &Base{
		conditions: make([]diagnosis.Condition, 0, len(doc.Conditions)),
		byID:       make(map[int]int, len(doc.Conditions)),
	}
	allSymptoms := make(map[string]struct{})

	for i, r := range doc.Conditions {
		c, err := r.toCondition()
		if err != nil {
			return nil, fmt.Errorf("condition #%d (%q): %w", i+1, r.Name, err)
		}
		if _, dup := base.byID[c.ID]; dup {
			return nil, fmt.Errorf("condition #%d (%q): duplicate id %d", i+1, r.Name, c.ID)
		}
		base.byID[c.ID] = len(base.conditions)
		base.conditions = append(base.conditions, c)
		for _, s := range c.Symptoms {
			allSymptoms[s.Name] = struct{}{}
		}
	}

	base.symptoms = make([]string, 0, len(allSymptoms))
	for s := range allSymptoms {
		base.symptoms = append(base.symptoms, s)
	}
	sort.Strings(base.symptoms)

	return base, nil
}

func (r record) toCondition() (diagnosis.Condition, error) {
	if strings.TrimSpace(r.Name) == "" {
		return diagnosis.Condition{}, errors.New("name is required")
	}
	severity := diagnosis.SeverityLabel(r.Severity)
	if !severity.Valid() {
		return diagnosis.Condition{}, fmt.Errorf("unknown severity %q", r.Severity)
	}
	if len(r.Symptoms) == 0 {
		return diagnosis.Condition{}, errors.New("at least one symptom is required")
	}

	seen := make(map[string]struct{}, len(r.Symptoms))
	symptoms := make([]diagnosis.SymptomWeight, 0, len(r.Symptoms))
	for _, s := range r.Symptoms {
		key := diagnosis.Normalize(s.Name)
		if key == "" {
			return diagnosis.Condition{}, errors.New("symptom name is required")
		}
		if _, dup := seen[key]; dup {
			return diagnosis.Condition{}, fmt.Errorf("duplicate symptom %q", s.Name)
		}
		seen[key] = struct{}{}
		if s.Weight <= 0 || s.Weight > 1 {
			return diagnosis.Condition{}, fmt.Errorf("symptom %q: weight %v outside (0,1]", s.Name, s.Weight)
		}
		symptoms = append(symptoms, diagnosis.SymptomWeight{Name: s.Name, Weight: s.Weight})
	}

	return diagnosis.Condition{
		ID:              r.ID,
		Name:            r.Name,
		Category:        r.Category,
		Description:     r.Description,
		Severity:        severity,
		Symptoms:        symptoms,
		Recommendations: append([]string{}, r.Recommendations...),
	}, nil
}

// Conditions returns the records in declaration order. The slice is a copy;
// the records share their symptom and recommendation slices with the Base
// and must not be modified.
func (b *Base) Conditions() []diagnosis.Condition {
	return append([]diagnosis.Condition(nil), b.conditions...)
}

func (b *Base) Len() int {
	return len(b.conditions)
}

func (b *Base) ByID(id int) (diagnosis.Condition, error) {
	idx, ok := b.byID[id]
	if !ok {
		return diagnosis.Condition{}, fmt.Errorf("%w: id %d", ErrConditionNotFound, id)
	}
	return b.conditions[idx], nil
}

// Symptoms returns every distinct symptom name, sorted.
func (b *Base) Symptoms() []string {
	return append([]string(nil), b.symptoms...)
}

func (b *Base) Summaries() []Summary {
	out := make([]Summary, 0, len(b.conditions))
	for _, c := range b.conditions {
		out = append(out, Summary{
			ID:          c.ID,
			Name:        c.Name,
			Category:    c.Category,
			Description: c.Description,
			Severity:    c.Severity,
		})
	}
	return out
}
