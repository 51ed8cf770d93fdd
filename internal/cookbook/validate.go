package cookbook

import (
	"errors"
	"strings"

	"cookbook-go/internal/model"
)

// Validation errors returned before any store write.
var (
	ErrTitleRequired = errors.New("recipe title is required")
	ErrNoIngredients = errors.New("recipe needs at least one named ingredient")
	ErrNoSteps       = errors.New("recipe needs at least one step")
)

// normalizeRecipe prepares a recipe for saving: it trims the title and
// description, drops placeholder ingredients and empty steps, re-indexes
// the remaining steps to a dense 0-based order, and clamps numeric fields.
// It returns a validation error when a required part is missing.
func normalizeRecipe(r *model.Recipe) error {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	if r.Title == "" {
		return ErrTitleRequired
	}

	ingredients := make([]model.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			continue
		}
		ingredients = append(ingredients, ing)
	}
	r.Ingredients = ingredients
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}

	steps := make([]model.Step, 0, len(r.Steps))
	for _, st := range r.Steps {
		if strings.TrimSpace(st.Description) == "" {
			continue
		}
		st.Order = len(steps)
		steps = append(steps, st)
	}
	r.Steps = steps
	if len(r.Steps) == 0 {
		return ErrNoSteps
	}

	if r.Tags == nil {
		r.Tags = []string{}
	}
	clampRecipe(r)
	return nil
}

// coerceRecipes is the decode boundary for recipe data read from the
// store. Stored blobs carry no schema, so malformed entities are defaulted
// or dropped here rather than propagated into the filter and match
// engines. Steps are re-indexed to restore the dense order invariant.
func coerceRecipes(recipes []model.Recipe) []model.Recipe {
	out := recipes[:0]
	for _, r := range recipes {
		if r.ID == "" {
			continue
		}
		if r.Ingredients == nil {
			r.Ingredients = []model.Ingredient{}
		}
		if r.Steps == nil {
			r.Steps = []model.Step{}
		}
		if r.Tags == nil {
			r.Tags = []string{}
		}
		for i := range r.Steps {
			r.Steps[i].Order = i
		}
		clampRecipe(&r)
		out = append(out, r)
	}
	return out
}

// clampRecipe forces numeric fields and the category into their valid
// ranges.
func clampRecipe(r *model.Recipe) {
	if !r.Category.Valid() {
		r.Category = model.CategoryOther
	}
	if r.TimesCooked < 0 {
		r.TimesCooked = 0
	}
	if r.PrepTime < 0 {
		r.PrepTime = 0
	}
	if r.CookTime < 0 {
		r.CookTime = 0
	}
	if r.Servings < 1 {
		r.Servings = 1
	}
}

// coercePantry drops pantry entries without an id or name.
func coercePantry(items []model.PantryItem) []model.PantryItem {
	out := items[:0]
	for _, it := range items {
		if it.ID == "" || strings.TrimSpace(it.Name) == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}
