package cookbook

import (
	"math/rand"
	"sort"
	"strings"
)

// nameCombination maps a set of keyword ingredients to candidate titles.
type nameCombination struct {
	keywords    []string
	suggestions []string
}

// nameCombinations is the fixed lookup table of known ingredient
// combinations, checked in order.
var nameCombinations = []nameCombination{
	{[]string{"spinach", "tomato", "cheese"}, []string{"Spinach Tomato Cheese Omelette", "Caprese Salad with Spinach"}},
	{[]string{"chicken", "garlic", "lemon"}, []string{"Lemon Garlic Chicken", "Garlic Herb Roasted Chicken"}},
	{[]string{"potato", "onion", "egg"}, []string{"Spanish Tortilla", "Potato Frittata"}},
	{[]string{"tomato", "basil", "mozzarella"}, []string{"Caprese Salad", "Margherita Pizza"}},
	{[]string{"banana", "oat", "honey"}, []string{"Banana Oat Pancakes", "Honey Banana Smoothie"}},
	{[]string{"pasta", "tomato", "basil"}, []string{"Classic Marinara Pasta", "Tomato Basil Pasta"}},
	{[]string{"egg", "flour", "milk"}, []string{"Classic Pancakes", "French Crepes"}},
	{[]string{"chicken", "rice", "broth"}, []string{"Chicken Rice Soup", "Arroz con Pollo"}},
	{[]string{"beef", "onion", "tomato"}, []string{"Beef Stew", "Bolognese Sauce"}},
	{[]string{"avocado", "lime", "cilantro"}, []string{"Guacamole", "Avocado Salsa"}},
}

// Suggester proposes recipe titles for a set of ingredient names. The rand
// source is injected so candidate selection is deterministic in tests.
type Suggester struct {
	rng *rand.Rand
}

// NewSuggester creates a Suggester drawing from rng.
func NewSuggester(rng *rand.Rand) *Suggester {
	return &Suggester{rng: rng}
}

// Suggest returns a title for the given ingredient names, or "" when no
// suggestion applies.
//
// Table entries are matched by substring containment over the whole
// lowercased, sorted, comma-joined selection, not per token; a keyword
// spanning a comma still counts. When no entry matches and at least two
// names were given, the fallback takes the first three names in their
// original order, capitalizes each, and joins them with " & ".
func (s *Suggester) Suggest(names []string) string {
	joined := joinedKey(names)
	for _, combo := range nameCombinations {
		if containsAll(joined, combo.keywords) {
			return combo.suggestions[s.rng.Intn(len(combo.suggestions))]
		}
	}

	if len(names) >= 2 {
		picked := names
		if len(picked) > 3 {
			picked = picked[:3]
		}
		parts := make([]string, 0, len(picked))
		for _, n := range picked {
			parts = append(parts, capitalize(n))
		}
		return strings.Join(parts, " & ") + " Delight"
	}

	return ""
}

// joinedKey lowercases and sorts the names, then joins them with commas to
// form the lookup candidate.
func joinedKey(names []string) string {
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(n))
	}
	sort.Strings(lowered)
	return strings.Join(lowered, ",")
}

func containsAll(joined string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(joined, k) {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
