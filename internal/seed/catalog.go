package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var catalogJSON []byte

// CatalogIngredient is one ingredient line in the bootstrap catalog.
// Amount and unit are optional free text.
type CatalogIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// CatalogRecipe is one recipe template in the bootstrap catalog. Steps are
// plain descriptions; ids, order, and timestamps are assigned when the
// template is materialized.
type CatalogRecipe struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Category    string              `json:"category,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	PrepTime    int                 `json:"prepTime,omitempty"`
	CookTime    int                 `json:"cookTime,omitempty"`
	Servings    int                 `json:"servings,omitempty"`
	ExpiresAt   string              `json:"expiresAt,omitempty"`
	Ingredients []CatalogIngredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
}

// Catalog is the bootstrap data source: a small fixed set of recipe
// templates expanded into a larger demonstration dataset on first run.
type Catalog struct {
	Recipes []CatalogRecipe `json:"recipes"`
}

// LoadCatalog decodes the embedded bootstrap catalog.
func LoadCatalog() (Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(catalogJSON, &cat); err != nil {
		return Catalog{}, fmt.Errorf("decoding embedded catalog: %w", err)
	}
	return cat, nil
}
