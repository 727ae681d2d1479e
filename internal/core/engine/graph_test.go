package engine

import (
	"testing"

	"recipe-recommender/internal/core/catalog"
)

func TestBuildGraphBipartiteMaps(t *testing.T) {
	cat, err := catalog.New([]catalog.Recipe{
		{ID: 1, Name: "A", Ingredients: []string{"Egg", "Milk"}},
		{ID: 2, Name: "B", Ingredients: []string{"Milk", "Sugar"}},
		{ID: 3, Name: "C", Ingredients: []string{"Soap"}},
	})
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	idx := NewIndex(cat)

	g := BuildGraph(cat, idx, []string{"Milk", "salt"})

	ids, ok := g.IngredientToRecipes["milk"]
	if !ok || len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("expected milk -> [1 2], got %v", ids)
	}
	// Available ingredient with no recipes maps to an empty set, not a miss.
	if ids, ok := g.IngredientToRecipes["salt"]; !ok || len(ids) != 0 {
		t.Errorf("expected salt -> [], got %v (present %v)", ids, ok)
	}

	// Zero-overlap recipe 3 is excluded entirely.
	if _, ok := g.RecipeToIngredients[3]; ok {
		t.Error("expected recipe 3 to be excluded from the graph")
	}
	// Overlapping recipes expose their full requirement set.
	req, ok := g.RecipeToIngredients[1]
	if !ok || len(req) != 2 || req[0] != "egg" || req[1] != "milk" {
		t.Errorf("expected recipe 1 -> [egg milk], got %v", req)
	}
}

func TestBuildGraphEmptyAvailable(t *testing.T) {
	cat := testCatalog(t)
	g := BuildGraph(cat, NewIndex(cat), nil)
	if len(g.IngredientToRecipes) != 0 {
		t.Errorf("expected no ingredient entries, got %v", g.IngredientToRecipes)
	}
	if len(g.RecipeToIngredients) != 0 {
		t.Errorf("expected no recipe entries, got %v", g.RecipeToIngredients)
	}
}
