package cookbook

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cookbook-go/internal/model"
)

// FilterRecipes narrows recipes to those matching filter and returns them
// in the requested order. It is pure: now is injected so the expiry check
// is deterministic. The pipeline runs expiry, search, category, tags, and
// favorites before the final stable sort.
func FilterRecipes(recipes []model.Recipe, filter model.FilterState, now time.Time) []model.Recipe {
	result := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.Expired(now) {
			continue
		}
		result = append(result, r)
	}

	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		result = keep(result, func(r *model.Recipe) bool { return matchesSearch(r, q) })
	}

	if filter.Category != "" && filter.Category != model.CategoryAll {
		result = keep(result, func(r *model.Recipe) bool { return r.Category == filter.Category })
	}

	if len(filter.Tags) > 0 {
		result = keep(result, func(r *model.Recipe) bool {
			for _, tag := range filter.Tags {
				if !r.HasTag(tag) {
					return false
				}
			}
			return true
		})
	}

	if filter.FavoritesOnly {
		result = keep(result, func(r *model.Recipe) bool { return r.IsFavorite })
	}

	sortRecipes(result, filter.SortBy)
	return result
}

// keep filters result in place, preserving order.
func keep(recipes []model.Recipe, pred func(*model.Recipe) bool) []model.Recipe {
	kept := recipes[:0]
	for i := range recipes {
		if pred(&recipes[i]) {
			kept = append(kept, recipes[i])
		}
	}
	return kept
}

// matchesSearch reports whether the lowercased query q is a substring of
// the recipe's title, description, any ingredient name, or any tag.
func matchesSearch(r *model.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// sortRecipes orders recipes by the given option. All sorts are stable, so
// recipes comparing equal retain the order they entered with. The
// "favorites" sort is a stable partition with favorites first.
func sortRecipes(recipes []model.Recipe, by model.SortOption) {
	switch by {
	case model.SortNewest:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].CreatedAt.After(recipes[j].CreatedAt)
		})
	case model.SortOldest:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].CreatedAt.Before(recipes[j].CreatedAt)
		})
	case model.SortName:
		c := collate.New(language.Und, collate.Loose)
		sort.SliceStable(recipes, func(i, j int) bool {
			return c.CompareString(recipes[i].Title, recipes[j].Title) < 0
		})
	case model.SortPopular:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].TimesCooked > recipes[j].TimesCooked
		})
	case model.SortFavorites:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].IsFavorite && !recipes[j].IsFavorite
		})
	}
}
