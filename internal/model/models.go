package model

import (
	"strings"
	"time"
)

// Category classifies a recipe. The set is closed; values outside it are
// coerced to CategoryOther when a stored collection is decoded.
type Category string

const (
	CategoryBreakfast  Category = "breakfast"
	CategoryLunch      Category = "lunch"
	CategoryDinner     Category = "dinner"
	CategoryDessert    Category = "dessert"
	CategorySnack      Category = "snack"
	CategoryVegan      Category = "vegan"
	CategoryVegetarian Category = "vegetarian"
	CategorySoup       Category = "soup"
	CategorySalad      Category = "salad"
	CategoryBeverage   Category = "beverage"
	CategoryOther      Category = "other"

	// CategoryAll is a query-only value meaning "no category narrowing".
	// It is never stored on a recipe.
	CategoryAll Category = "all"
)

// AllCategories lists every storable category in display order.
var AllCategories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryDessert,
	CategorySnack,
	CategoryVegan,
	CategoryVegetarian,
	CategorySoup,
	CategorySalad,
	CategoryBeverage,
	CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
// CategoryAll is not a storable category and is not valid here.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory returns the category matching s (case-insensitive).
// Unknown values return CategoryOther and false.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c, true
	}
	return CategoryOther, false
}

// Ingredient is one line of a recipe's ingredient list. Amount and unit are
// free text; an ingredient with an empty name is a placeholder and is
// dropped when the recipe is saved.
type Ingredient struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Step is one cooking instruction. Order is a dense 0-based index that is
// re-assigned on every save.
type Step struct {
	ID          string `json:"id"`
	Order       int    `json:"order"`
	Description string `json:"description"`
}

// Recipe is a user-authored cooking record. The JSON field names are the
// persisted wire format; a stored collection round-trips field for field.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	Image       string       `json:"image,omitempty"` // opaque encoded blob reference
	Category    Category     `json:"category"`
	Tags        []string     `json:"tags"`
	IsFavorite  bool         `json:"isFavorite"`
	TimesCooked int          `json:"timesCooked"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	ExpiresAt   *time.Time   `json:"expiresAt,omitempty"` // seasonal expiry; nil means never expires
	PrepTime    int          `json:"prepTime"`            // minutes
	CookTime    int          `json:"cookTime"`            // minutes
	Servings    int          `json:"servings"`
}

// Expired reports whether the recipe has an expiry strictly before now.
// A recipe expiring exactly at now is not yet expired.
func (r *Recipe) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && r.ExpiresAt.Before(now)
}

// HasTag reports whether the recipe carries the given tag exactly.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PantryItem is one ingredient the user has on hand. Names are unique
// case-insensitively within the pantry.
type PantryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SortOption selects the ordering of a browse query.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
	SortName      SortOption = "name"
	SortPopular   SortOption = "popular"
	SortFavorites SortOption = "favorites"
)

// ParseSortOption returns the sort option matching s, or SortNewest and
// false for unknown values.
func ParseSortOption(s string) (SortOption, bool) {
	switch SortOption(strings.ToLower(strings.TrimSpace(s))) {
	case SortNewest:
		return SortNewest, true
	case SortOldest:
		return SortOldest, true
	case SortName:
		return SortName, true
	case SortPopular:
		return SortPopular, true
	case SortFavorites:
		return SortFavorites, true
	}
	return SortNewest, false
}

// FilterState describes one browse query. It is never persisted.
type FilterState struct {
	Search        string
	Category      Category // CategoryAll (or empty) disables category narrowing
	Tags          []string // AND semantics: a recipe must carry every tag
	FavoritesOnly bool
	SortBy        SortOption
}

// MatchResult pairs a recipe with its pantry-match score. MatchScore is
// matched recipe ingredients over total recipe ingredients, in [0, 1].
// MissingIngredients holds the lowercased names of unmatched recipe
// ingredients in recipe order.
type MatchResult struct {
	Recipe             Recipe
	MatchScore         float64
	MissingIngredients []string
}
