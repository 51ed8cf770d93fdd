package cookbook_test

import (
	"testing"

	"cookbook-go/internal/cookbook"
	"cookbook-go/internal/testutil"
)

func TestSuggester_Suggest(t *testing.T) {
	t.Run("known combination picks from its candidates", func(t *testing.T) {
		t.Parallel()
		s := cookbook.NewSuggester(testutil.DeterministicRand())

		got := s.Suggest([]string{"Spinach", "Tomato", "Cheese"})
		candidates := map[string]bool{
			"Spinach Tomato Cheese Omelette": true,
			"Caprese Salad with Spinach":     true,
		}
		if !candidates[got] {
			t.Errorf("Suggest() = %q, want one of the spinach/tomato/cheese candidates", got)
		}
	})

	t.Run("order and case of the selection do not matter", func(t *testing.T) {
		t.Parallel()
		a := cookbook.NewSuggester(testutil.DeterministicRand())
		b := cookbook.NewSuggester(testutil.DeterministicRand())

		first := a.Suggest([]string{"CHEESE", "spinach", "Tomato"})
		second := b.Suggest([]string{"tomato", "cheese", "spinach"})
		if first != second {
			t.Errorf("Suggest() = %q and %q for the same selection, want equal", first, second)
		}
	})

	t.Run("compound names still hit the table", func(t *testing.T) {
		t.Parallel()
		s := cookbook.NewSuggester(testutil.DeterministicRand())

		got := s.Suggest([]string{"chicken breast", "garlic cloves", "lemon juice"})
		candidates := map[string]bool{
			"Lemon Garlic Chicken":        true,
			"Garlic Herb Roasted Chicken": true,
		}
		if !candidates[got] {
			t.Errorf("Suggest() = %q, want one of the chicken/garlic/lemon candidates", got)
		}
	})

	t.Run("unknown pair falls back to delight name", func(t *testing.T) {
		t.Parallel()
		s := cookbook.NewSuggester(testutil.DeterministicRand())

		got := s.Suggest([]string{"kale", "carrot"})
		if got != "Kale & Carrot Delight" {
			t.Errorf("Suggest() = %q, want %q", got, "Kale & Carrot Delight")
		}
	})

	t.Run("fallback uses at most three names", func(t *testing.T) {
		t.Parallel()
		s := cookbook.NewSuggester(testutil.DeterministicRand())

		got := s.Suggest([]string{"kale", "carrot", "parsnip", "turnip"})
		if got != "Kale & Carrot & Parsnip Delight" {
			t.Errorf("Suggest() = %q, want %q", got, "Kale & Carrot & Parsnip Delight")
		}
	})

	t.Run("fewer than two unknown names yields nothing", func(t *testing.T) {
		t.Parallel()
		s := cookbook.NewSuggester(testutil.DeterministicRand())

		if got := s.Suggest([]string{"kale"}); got != "" {
			t.Errorf("Suggest() = %q, want empty", got)
		}
		if got := s.Suggest(nil); got != "" {
			t.Errorf("Suggest(nil) = %q, want empty", got)
		}
	})
}
