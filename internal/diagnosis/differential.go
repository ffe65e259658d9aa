package diagnosis

import (
	"fmt"
	"strings"
)

const (
	coOccurrenceMinConfidence = 30.0
	coOccurrenceCandidates    = 2
)

// Combinations groups ranked results by category and pairs the leading
// result with up to two runners-up from other categories. Categories are
// reported in order of first appearance.
func Combinations(ranked []ScoredCondition) []Combination {
	combinations := []Combination{}

	var order []string
	groups := make(map[string][]CombinationMember)
	for _, sc := range ranked {
		if _, seen := groups[sc.Category]; !seen {
			order = append(order, sc.Category)
		}
		groups[sc.Category] = append(groups[sc.Category], CombinationMember{
			Name:       sc.Name,
			Confidence: sc.Confidence,
		})
	}

	for _, category := range order {
		members := groups[category]
		if len(members) < 2 {
			continue
		}
		combinations = append(combinations, Combination{
			Type:        CombinationCategoryGroup,
			Category:    category,
			Diseases:    members,
			Description: fmt.Sprintf("Multiple %s conditions possible", strings.ToLower(category)),
		})
	}

	if len(ranked) < 2 {
		return combinations
	}

	primary := ranked[0]
	for i := 1; i < len(ranked) && i <= coOccurrenceCandidates; i++ {
		secondary := ranked[i]
		if secondary.Category == primary.Category || secondary.Confidence <= coOccurrenceMinConfidence {
			continue
		}
		combinations = append(combinations, Combination{
			Type:               CombinationCoOccurrence,
			Primary:            primary.Name,
			Secondary:          secondary.Name,
			CombinedConfidence: round1((primary.Confidence + secondary.Confidence) / 2),
			Description:        fmt.Sprintf("%s with possible %s", primary.Name, secondary.Name),
		})
	}

	return combinations
}
