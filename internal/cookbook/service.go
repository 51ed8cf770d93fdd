package cookbook

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"cookbook-go/internal/model"
)

// Service is the orchestration layer coordinating the store and the pure
// engines for the operations the CLI needs. Every mutation reads the whole
// stored collection, applies one change, and writes the whole collection
// back; the last writer wins.
type Service struct {
	store     Store
	logger    Logger
	clock     Clock
	idgen     IDGenerator
	suggester *Suggester
}

// NewService creates a Service with the provided dependencies. rng feeds
// the name suggestion engine.
func NewService(store Store, logger Logger, clock Clock, idgen IDGenerator, rng *rand.Rand) *Service {
	return &Service{
		store:     store,
		logger:    logger,
		clock:     clock,
		idgen:     idgen,
		suggester: NewSuggester(rng),
	}
}

// Recipes returns the full stored recipe collection. An absent, unreadable,
// or malformed blob degrades to an empty collection rather than an error.
func (s *Service) Recipes() []model.Recipe {
	var recipes []model.Recipe
	if !s.load(RecipesKey, &recipes) {
		return nil
	}
	return coerceRecipes(recipes)
}

// Pantry returns the stored pantry collection, with the same degrade-to-
// empty behavior as Recipes.
func (s *Service) Pantry() []model.PantryItem {
	var items []model.PantryItem
	if !s.load(PantryKey, &items) {
		return nil
	}
	return coercePantry(items)
}

// load reads and decodes the blob under key into v, reporting whether v
// was populated. Store errors and corrupt blobs are logged and swallowed:
// the caller sees an empty collection either way.
func (s *Service) load(key string, v any) bool {
	data, found, err := s.store.Get(key)
	if err != nil {
		s.logger.Warn("reading collection failed, treating as empty", "key", key, "error", err)
		return false
	}
	if !found || len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("discarding corrupt collection", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.store.Put(key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// AddRecipe validates and saves a new recipe. It assigns the recipe id and
// any missing ingredient/step ids, stamps both timestamps, zeroes the
// counters, and prepends the recipe so the collection stays newest-first.
func (s *Service) AddRecipe(r model.Recipe) (model.Recipe, error) {
	if err := normalizeRecipe(&r); err != nil {
		return model.Recipe{}, err
	}

	now := s.clock.Now()
	r.ID = s.idgen.New()
	for i := range r.Ingredients {
		if r.Ingredients[i].ID == "" {
			r.Ingredients[i].ID = s.idgen.New()
		}
	}
	for i := range r.Steps {
		if r.Steps[i].ID == "" {
			r.Steps[i].ID = s.idgen.New()
		}
	}
	r.CreatedAt = now
	r.UpdatedAt = now
	r.TimesCooked = 0
	r.IsFavorite = false

	recipes := append([]model.Recipe{r}, s.Recipes()...)
	if err := s.save(RecipesKey, recipes); err != nil {
		return model.Recipe{}, err
	}

	s.logger.Info("recipe added", "id", r.ID, "title", r.Title)
	return r, nil
}

// UpdateRecipe validates and replaces the stored recipe with the same id,
// bumping updatedAt. The creation timestamp is preserved from the stored
// copy. An unknown id is a silent no-op.
func (s *Service) UpdateRecipe(r model.Recipe) (model.Recipe, error) {
	if err := normalizeRecipe(&r); err != nil {
		return model.Recipe{}, err
	}
	for i := range r.Ingredients {
		if r.Ingredients[i].ID == "" {
			r.Ingredients[i].ID = s.idgen.New()
		}
	}
	for i := range r.Steps {
		if r.Steps[i].ID == "" {
			r.Steps[i].ID = s.idgen.New()
		}
	}

	recipes := s.Recipes()
	for i := range recipes {
		if recipes[i].ID != r.ID {
			continue
		}
		r.CreatedAt = recipes[i].CreatedAt
		r.UpdatedAt = s.clock.Now()
		recipes[i] = r
		if err := s.save(RecipesKey, recipes); err != nil {
			return model.Recipe{}, err
		}
		s.logger.Info("recipe updated", "id", r.ID, "title", r.Title)
		return r, nil
	}
	return r, nil
}

// DeleteRecipe removes the recipe with the given id. An unknown id is a
// silent no-op.
func (s *Service) DeleteRecipe(id string) error {
	recipes := s.Recipes()
	kept := recipes[:0]
	for _, r := range recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(recipes) {
		return nil
	}
	if err := s.save(RecipesKey, kept); err != nil {
		return err
	}
	s.logger.Info("recipe deleted", "id", id)
	return nil
}

// ToggleFavorite flips the favorite flag on the recipe with the given id
// and bumps updatedAt. An unknown id is a silent no-op.
func (s *Service) ToggleFavorite(id string) error {
	return s.mutate(id, func(r *model.Recipe) {
		r.IsFavorite = !r.IsFavorite
	})
}

// IncrementCooked bumps the times-cooked counter on the recipe with the
// given id and bumps updatedAt. An unknown id is a silent no-op.
func (s *Service) IncrementCooked(id string) error {
	return s.mutate(id, func(r *model.Recipe) {
		r.TimesCooked++
	})
}

// mutate applies fn to the stored recipe with the given id, bumps
// updatedAt, and writes the collection back. Unknown ids are a no-op.
func (s *Service) mutate(id string, fn func(*model.Recipe)) error {
	recipes := s.Recipes()
	for i := range recipes {
		if recipes[i].ID != id {
			continue
		}
		fn(&recipes[i])
		recipes[i].UpdatedAt = s.clock.Now()
		return s.save(RecipesKey, recipes)
	}
	return nil
}

// FindRecipe returns the stored recipe with the given id, or false.
func (s *Service) FindRecipe(id string) (model.Recipe, bool) {
	for _, r := range s.Recipes() {
		if r.ID == id {
			return r, true
		}
	}
	return model.Recipe{}, false
}

// ListRecipes returns the stored collection narrowed and sorted by filter,
// evaluated against the current time.
func (s *Service) ListRecipes(filter model.FilterState) []model.Recipe {
	return FilterRecipes(s.Recipes(), filter, s.clock.Now())
}

// PantryMix ranks the stored recipes against the selected ingredient
// names. Expiry does not apply here: it only hides recipes from browsing.
func (s *Service) PantryMix(selected []string) []model.MatchResult {
	return MatchRecipes(s.Recipes(), selected)
}

// PantryMixFromPantry runs PantryMix with the stored pantry item names.
func (s *Service) PantryMixFromPantry() []model.MatchResult {
	items := s.Pantry()
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return s.PantryMix(names)
}

// SuggestName proposes a recipe title for the given ingredient names.
func (s *Service) SuggestName(names []string) string {
	return s.suggester.Suggest(names)
}

// AddPantryItem adds a pantry entry with the trimmed name. Empty names and
// case-insensitive duplicates are silent no-ops; for a duplicate the
// existing item is returned.
func (s *Service) AddPantryItem(name string) (model.PantryItem, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.PantryItem{}, nil
	}

	items := s.Pantry()
	for _, it := range items {
		if strings.EqualFold(it.Name, trimmed) {
			return it, nil
		}
	}

	item := model.PantryItem{ID: s.idgen.New(), Name: trimmed}
	items = append(items, item)
	if err := s.save(PantryKey, items); err != nil {
		return model.PantryItem{}, err
	}
	s.logger.Info("pantry item added", "id", item.ID, "name", item.Name)
	return item, nil
}

// RemovePantryItem removes the pantry entry with the given id. An unknown
// id is a silent no-op.
func (s *Service) RemovePantryItem(id string) error {
	items := s.Pantry()
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.save(PantryKey, kept)
}

// ReplaceRecipes overwrites the stored recipe collection wholesale. Used
// by bootstrap seeding and archive import.
func (s *Service) ReplaceRecipes(recipes []model.Recipe) error {
	return s.save(RecipesKey, coerceRecipes(recipes))
}

// ReplacePantry overwrites the stored pantry collection wholesale.
func (s *Service) ReplacePantry(items []model.PantryItem) error {
	return s.save(PantryKey, coercePantry(items))
}
