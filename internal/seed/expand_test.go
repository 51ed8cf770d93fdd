package seed

import (
	"strings"
	"testing"

	"cookbook-go/internal/model"
	"cookbook-go/internal/testutil"
)

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(cat.Recipes) == 0 {
		t.Fatal("embedded catalog has no recipes")
	}

	for _, r := range cat.Recipes {
		if r.Title == "" {
			t.Error("catalog recipe with empty title")
		}
		if len(r.Ingredients) == 0 {
			t.Errorf("catalog recipe %q has no ingredients", r.Title)
		}
		if len(r.Steps) == 0 {
			t.Errorf("catalog recipe %q has no steps", r.Title)
		}
		if r.Category != "" {
			if _, ok := model.ParseCategory(r.Category); !ok {
				t.Errorf("catalog recipe %q has unknown category %q", r.Title, r.Category)
			}
		}
	}
}

func smallCatalog() Catalog {
	return Catalog{Recipes: []CatalogRecipe{
		{
			Title:       "Pancakes",
			Description: "Fluffy breakfast stack.",
			Category:    "breakfast",
			Tags:        []string{"sweet"},
			PrepTime:    10,
			CookTime:    15,
			Servings:    4,
			Ingredients: []CatalogIngredient{{Name: "Flour", Amount: "2", Unit: "cups"}},
			Steps:       []string{"Mix.", "Fry."},
		},
		{
			Title:       "Guacamole",
			Category:    "snack",
			Ingredients: []CatalogIngredient{{Name: "Avocado"}},
			Steps:       []string{"Mash."},
		},
	}}
}

func TestExpand(t *testing.T) {
	t.Run("reaches at least the minimum count", func(t *testing.T) {
		idgen := testutil.NewStubIDGenerator()

		got := Expand(smallCatalog(), 25, testutil.FixedTime, idgen.New)
		if len(got) != 25 {
			t.Errorf("Expand() produced %d recipes, want 25", len(got))
		}
	})

	t.Run("small minimum still yields every template", func(t *testing.T) {
		idgen := testutil.NewStubIDGenerator()

		got := Expand(smallCatalog(), 1, testutil.FixedTime, idgen.New)
		if len(got) != 2 {
			t.Errorf("Expand() produced %d recipes, want 2", len(got))
		}
	})

	t.Run("empty catalog yields nothing", func(t *testing.T) {
		idgen := testutil.NewStubIDGenerator()

		if got := Expand(Catalog{}, 10, testutil.FixedTime, idgen.New); got != nil {
			t.Errorf("Expand() = %d recipes, want none", len(got))
		}
	})

	t.Run("variants are labeled and tagged", func(t *testing.T) {
		idgen := testutil.NewStubIDGenerator()

		got := Expand(smallCatalog(), 4, testutil.FixedTime, idgen.New)

		if got[0].Title != "Quick Pancakes #1" {
			t.Errorf("first title = %q, want %q", got[0].Title, "Quick Pancakes #1")
		}
		if got[1].Title != "Spicy Guacamole #2" {
			t.Errorf("second title = %q, want %q", got[1].Title, "Spicy Guacamole #2")
		}

		var hasVariantTag bool
		for _, tag := range got[0].Tags {
			if tag == "quick" {
				hasVariantTag = true
			}
		}
		if !hasVariantTag {
			t.Errorf("first variant tags = %v, want quick tag", got[0].Tags)
		}

		if !strings.Contains(got[0].Description, "(quick variant)") {
			t.Errorf("first description = %q, want variant suffix", got[0].Description)
		}
		// templates without a description get a synthesized one
		if got[1].Description != "Spicy variant." {
			t.Errorf("second description = %q, want %q", got[1].Description, "Spicy variant.")
		}
	})

	t.Run("every recipe gets fresh unique ids and timestamps", func(t *testing.T) {
		idgen := testutil.NewStubIDGenerator()

		got := Expand(smallCatalog(), 10, testutil.FixedTime, idgen.New)

		seen := make(map[string]bool)
		for _, r := range got {
			if r.ID == "" || seen[r.ID] {
				t.Fatalf("recipe id %q missing or duplicated", r.ID)
			}
			seen[r.ID] = true

			for _, ing := range r.Ingredients {
				if ing.ID == "" || seen[ing.ID] {
					t.Fatalf("ingredient id %q missing or duplicated", ing.ID)
				}
				seen[ing.ID] = true
			}
			for i, st := range r.Steps {
				if st.ID == "" || seen[st.ID] {
					t.Fatalf("step id %q missing or duplicated", st.ID)
				}
				seen[st.ID] = true
				if st.Order != i {
					t.Errorf("step order = %d, want %d", st.Order, i)
				}
			}

			if !r.CreatedAt.Equal(testutil.FixedTime) || !r.UpdatedAt.Equal(testutil.FixedTime) {
				t.Errorf("timestamps = %v/%v, want %v", r.CreatedAt, r.UpdatedAt, testutil.FixedTime)
			}
			if r.IsFavorite || r.TimesCooked != 0 {
				t.Errorf("counters = %v/%d, want fresh", r.IsFavorite, r.TimesCooked)
			}
		}
	})

	t.Run("timings and servings stay in valid ranges", func(t *testing.T) {
		idgen := testutil.NewStubIDGenerator()

		got := Expand(smallCatalog(), 40, testutil.FixedTime, idgen.New)
		for _, r := range got {
			if r.PrepTime < 0 || r.CookTime < 0 {
				t.Errorf("recipe %q has negative timing %d/%d", r.Title, r.PrepTime, r.CookTime)
			}
			if r.Servings < 1 {
				t.Errorf("recipe %q has servings %d, want >= 1", r.Title, r.Servings)
			}
		}
	})

	t.Run("deterministic for the same inputs", func(t *testing.T) {
		first := Expand(smallCatalog(), 12, testutil.FixedTime, testutil.NewStubIDGenerator().New)
		second := Expand(smallCatalog(), 12, testutil.FixedTime, testutil.NewStubIDGenerator().New)

		for i := range first {
			if first[i].Title != second[i].Title || first[i].PrepTime != second[i].PrepTime {
				t.Fatalf("expansion differs at %d: %q vs %q", i, first[i].Title, second[i].Title)
			}
		}
	})
}
