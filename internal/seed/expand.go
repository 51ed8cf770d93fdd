package seed

import (
	"fmt"
	"strings"
	"time"

	"cookbook-go/internal/model"
)

// variantWords cycle through the generated variants so seeded titles and
// tags stay searchable and distinct.
var variantWords = []string{
	"Quick",
	"Spicy",
	"Creamy",
	"Herby",
	"Zesty",
	"Smoky",
	"Rustic",
	"Light",
	"Hearty",
	"Simple",
}

// Expand grows the catalog to at least minCount recipes by cycling through
// the base templates and generating labeled variants, then materializes
// each one with fresh ids and timestamps. The perturbation is
// deterministic, keyed only by the variant's index.
func Expand(cat Catalog, minCount int, now time.Time, newID func() string) []model.Recipe {
	base := cat.Recipes
	if len(base) == 0 {
		return nil
	}

	target := max(minCount, len(base))
	out := make([]model.Recipe, 0, target)
	for i := 0; len(out) < target; i++ {
		b := variant(base[i%len(base)], len(out))
		out = append(out, materialize(b, now, newID))
	}
	return out
}

// variant derives the index-th labeled clone of a base template: variant
// word plus "#n" in the title, the word as an extra tag, and small timing
// and serving offsets so the dataset isn't uniform.
func variant(b CatalogRecipe, index int) CatalogRecipe {
	word := variantWords[index%len(variantWords)]

	b.Title = fmt.Sprintf("%s %s #%d", word, b.Title, index+1)
	if b.Description != "" {
		b.Description = fmt.Sprintf("%s (%s variant)", b.Description, strings.ToLower(word))
	} else {
		b.Description = word + " variant."
	}

	tags := make([]string, 0, len(b.Tags)+1)
	seen := make(map[string]bool, len(b.Tags)+1)
	for _, t := range append(append([]string{}, b.Tags...), strings.ToLower(word)) {
		if seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	b.Tags = tags

	prep := b.PrepTime
	if prep == 0 {
		prep = 10
	}
	b.PrepTime = max(0, prep+((index%3)-1)*2)

	cook := b.CookTime
	if cook == 0 {
		cook = 15
	}
	b.CookTime = max(0, cook+((index%4)-2)*3)

	servings := b.Servings
	if servings == 0 {
		servings = 2
	}
	b.Servings = max(1, servings+index%2)

	return b
}

// materialize turns a catalog template into a full recipe with fresh ids,
// dense step ordering, and both timestamps set to now.
func materialize(b CatalogRecipe, now time.Time, newID func() string) model.Recipe {
	ingredients := make([]model.Ingredient, 0, len(b.Ingredients))
	for _, ing := range b.Ingredients {
		ingredients = append(ingredients, model.Ingredient{
			ID:     newID(),
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	steps := make([]model.Step, 0, len(b.Steps))
	for i, desc := range b.Steps {
		steps = append(steps, model.Step{
			ID:          newID(),
			Order:       i,
			Description: desc,
		})
	}

	category, _ := model.ParseCategory(b.Category)

	var expiresAt *time.Time
	if b.ExpiresAt != "" {
		if t, err := time.Parse(time.RFC3339, b.ExpiresAt); err == nil {
			expiresAt = &t
		}
	}

	prep := b.PrepTime
	if prep == 0 {
		prep = 10
	}
	cook := b.CookTime
	if cook == 0 {
		cook = 20
	}
	servings := b.Servings
	if servings == 0 {
		servings = 2
	}

	return model.Recipe{
		ID:          newID(),
		Title:       b.Title,
		Description: b.Description,
		Ingredients: ingredients,
		Steps:       steps,
		Category:    category,
		Tags:        b.Tags,
		IsFavorite:  false,
		TimesCooked: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   expiresAt,
		PrepTime:    prep,
		CookTime:    cook,
		Servings:    servings,
	}
}
