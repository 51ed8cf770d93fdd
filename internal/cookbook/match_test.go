package cookbook_test

import (
	"math"
	"reflect"
	"testing"

	"cookbook-go/internal/cookbook"
	"cookbook-go/internal/model"
)

func recipeWithIngredients(id string, names ...string) model.Recipe {
	ings := make([]model.Ingredient, 0, len(names))
	for _, n := range names {
		ings = append(ings, model.Ingredient{Name: n})
	}
	return model.Recipe{ID: id, Title: id, Ingredients: ings}
}

func TestMatchRecipes(t *testing.T) {
	t.Run("full coverage scores 1.0", func(t *testing.T) {
		t.Parallel()
		recipes := []model.Recipe{recipeWithIngredients("omelette", "Egg", "Cheese")}

		got := cookbook.MatchRecipes(recipes, []string{"egg", "cheese"})
		if len(got) != 1 {
			t.Fatalf("MatchRecipes() returned %d results, want 1", len(got))
		}
		if got[0].MatchScore != cookbook.ExactMatchScore {
			t.Errorf("MatchScore = %v, want 1.0", got[0].MatchScore)
		}
		if len(got[0].MissingIngredients) != 0 {
			t.Errorf("MissingIngredients = %v, want empty", got[0].MissingIngredients)
		}
		if !cookbook.IsExactMatch(got[0]) {
			t.Error("IsExactMatch() = false, want true")
		}
	})

	t.Run("partial coverage scores matched over total", func(t *testing.T) {
		t.Parallel()
		recipes := []model.Recipe{recipeWithIngredients("cake", "Flour", "Sugar", "Egg")}

		got := cookbook.MatchRecipes(recipes, []string{"flour"})
		if len(got) != 1 {
			t.Fatalf("MatchRecipes() returned %d results, want 1", len(got))
		}
		if math.Abs(got[0].MatchScore-1.0/3.0) > 1e-9 {
			t.Errorf("MatchScore = %v, want 1/3", got[0].MatchScore)
		}
		want := []string{"sugar", "egg"}
		if !reflect.DeepEqual(got[0].MissingIngredients, want) {
			t.Errorf("MissingIngredients = %v, want %v", got[0].MissingIngredients, want)
		}
		if cookbook.IsCloseMatch(got[0]) {
			t.Error("IsCloseMatch() = true for score 1/3, want false")
		}
	})

	t.Run("substring matching works in both directions", func(t *testing.T) {
		t.Parallel()
		recipes := []model.Recipe{
			recipeWithIngredients("salsa", "Diced Tomatoes"),
			recipeWithIngredients("soup", "Tomato"),
		}

		got := cookbook.MatchRecipes(recipes, []string{"tomato"})
		if len(got) != 2 {
			t.Fatalf("MatchRecipes(tomato) returned %d results, want 2", len(got))
		}

		got = cookbook.MatchRecipes(recipes, []string{"diced tomatoes"})
		if len(got) != 2 {
			t.Fatalf("MatchRecipes(diced tomatoes) returned %d results, want 2", len(got))
		}
	})

	t.Run("recipes with no overlap are omitted", func(t *testing.T) {
		t.Parallel()
		recipes := []model.Recipe{
			recipeWithIngredients("toast", "Bread"),
			recipeWithIngredients("omelette", "Egg"),
		}

		got := cookbook.MatchRecipes(recipes, []string{"egg"})
		if len(got) != 1 || got[0].Recipe.ID != "omelette" {
			t.Errorf("MatchRecipes() = %v results, want only omelette", len(got))
		}
	})

	t.Run("empty selection returns nothing", func(t *testing.T) {
		t.Parallel()
		recipes := []model.Recipe{recipeWithIngredients("omelette", "Egg")}

		if got := cookbook.MatchRecipes(recipes, nil); got != nil {
			t.Errorf("MatchRecipes(nil) = %v, want nil", got)
		}
	})

	t.Run("recipe with no ingredients never matches", func(t *testing.T) {
		t.Parallel()
		recipes := []model.Recipe{{ID: "empty", Title: "empty"}}

		if got := cookbook.MatchRecipes(recipes, []string{"egg"}); len(got) != 0 {
			t.Errorf("MatchRecipes() returned %d results, want 0", len(got))
		}
	})

	t.Run("ranked by score with stable ties", func(t *testing.T) {
		t.Parallel()
		recipes := []model.Recipe{
			recipeWithIngredients("half-a", "Egg", "Bacon"),
			recipeWithIngredients("full", "Egg"),
			recipeWithIngredients("half-b", "Egg", "Toast"),
		}

		got := cookbook.MatchRecipes(recipes, []string{"egg"})
		want := []string{"full", "half-a", "half-b"}
		for i, w := range want {
			if got[i].Recipe.ID != w {
				t.Fatalf("result[%d] = %s, want %s", i, got[i].Recipe.ID, w)
			}
		}
	})
}

func TestIsCloseMatch(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		want  bool
	}{
		{"below threshold", 0.39, false},
		{"at threshold", 0.4, true},
		{"between bands", 0.75, true},
		{"exact is not close", 1.0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cookbook.IsCloseMatch(model.MatchResult{MatchScore: tc.score})
			if got != tc.want {
				t.Errorf("IsCloseMatch(%v) = %v, want %v", tc.score, got, tc.want)
			}
		})
	}
}
