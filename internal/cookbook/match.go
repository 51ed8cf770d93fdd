package cookbook

import (
	"sort"
	"strings"

	"cookbook-go/internal/model"
)

// Score bands used by callers when presenting match results. Scores below
// CloseMatchThreshold are still returned but not surfaced as a band.
const (
	ExactMatchScore     = 1.0
	CloseMatchThreshold = 0.4
)

// MatchRecipes scores every recipe against the selected ingredient names
// and returns the matches ranked by score, best first. A recipe ingredient
// counts as matched when it and any selected name contain each other as a
// substring in either direction, so "tomato" matches "diced tomatoes".
// Recipes with no overlap at all are omitted; an empty selection returns
// no results. The sort is stable: ties keep their input order.
func MatchRecipes(recipes []model.Recipe, selected []string) []model.MatchResult {
	if len(selected) == 0 {
		return nil
	}

	lowered := make([]string, 0, len(selected))
	for _, s := range selected {
		lowered = append(lowered, strings.ToLower(s))
	}

	results := make([]model.MatchResult, 0, len(recipes))
	for _, r := range recipes {
		matched := 0
		missing := make([]string, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			name := strings.ToLower(ing.Name)
			if matchesAny(name, lowered) {
				matched++
			} else {
				missing = append(missing, name)
			}
		}

		// A recipe with no ingredients can never match; skipping it here
		// also avoids a zero denominator below.
		if matched == 0 {
			continue
		}

		results = append(results, model.MatchResult{
			Recipe:             r,
			MatchScore:         float64(matched) / float64(len(r.Ingredients)),
			MissingIngredients: missing,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// matchesAny reports whether name and at least one selected name contain
// each other as a substring in either direction.
func matchesAny(name string, selected []string) bool {
	for _, s := range selected {
		if strings.Contains(name, s) || strings.Contains(s, name) {
			return true
		}
	}
	return false
}

// IsExactMatch reports whether every recipe ingredient was matched.
func IsExactMatch(m model.MatchResult) bool {
	return m.MatchScore == ExactMatchScore
}

// IsCloseMatch reports whether the score falls in the close band.
func IsCloseMatch(m model.MatchResult) bool {
	return m.MatchScore >= CloseMatchThreshold && m.MatchScore < ExactMatchScore
}
