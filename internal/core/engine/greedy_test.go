package engine

import (
	"testing"

	"recipe-recommender/internal/core/catalog"
)

func greedyTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Recipe{
		{ID: 1, Name: "A", Ingredients: []string{"egg", "milk"}},
		{ID: 2, Name: "B", Ingredients: []string{"milk", "sugar"}},
		{ID: 3, Name: "C", Ingredients: []string{"flour", "egg", "butter"}},
	})
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	return cat
}

func TestGreedyPrefersMaxNewCoverage(t *testing.T) {
	cat := greedyTestCatalog(t)

	// Recipe 2 covers both available ingredients, recipe 1 only one.
	choices, covered := Greedy(cat, []string{"milk", "sugar"}, 1)
	if len(choices) != 1 {
		t.Fatalf("expected 1 choice, got %d", len(choices))
	}
	if choices[0].Recipe.ID != 2 {
		t.Errorf("expected recipe 2 chosen, got %d", choices[0].Recipe.ID)
	}
	if len(covered) != 2 || covered[0] != "milk" || covered[1] != "sugar" {
		t.Errorf("expected covered [milk sugar], got %v", covered)
	}
}

func TestGreedyStopsWhenNothingLeftToCover(t *testing.T) {
	cat := greedyTestCatalog(t)

	// After recipe 2 takes milk+sugar nothing else overlaps, so only one choice.
	choices, _ := Greedy(cat, []string{"milk", "sugar"}, 3)
	if len(choices) != 1 {
		t.Errorf("expected early stop after 1 choice, got %d", len(choices))
	}
}

func TestGreedyChoicesDisjointAndUnique(t *testing.T) {
	cat := greedyTestCatalog(t)
	available := []string{"egg", "milk", "sugar", "flour", "butter"}

	choices, covered := Greedy(cat, available, 3)

	seenRecipes := make(map[int]bool)
	seenIngredients := make(map[string]bool)
	union := 0
	availSet := NormalizeSet(available)
	for _, c := range choices {
		if seenRecipes[c.Recipe.ID] {
			t.Errorf("recipe %d selected twice", c.Recipe.ID)
		}
		seenRecipes[c.Recipe.ID] = true
		if len(c.Covered) == 0 {
			t.Errorf("recipe %d has empty covered set", c.Recipe.ID)
		}
		for _, ing := range c.Covered {
			if seenIngredients[ing] {
				t.Errorf("ingredient %q covered twice", ing)
			}
			if _, ok := availSet[ing]; !ok {
				t.Errorf("covered ingredient %q not in available set", ing)
			}
			seenIngredients[ing] = true
			union++
		}
	}
	if union != len(covered) {
		t.Errorf("total covered (%d) does not match union of choices (%d)", len(covered), union)
	}
}

// Ties on coverage go to the recipe that appears first in the catalog.
func TestGreedyTieBreaksOnCatalogOrder(t *testing.T) {
	cat, err := catalog.New([]catalog.Recipe{
		{ID: 10, Name: "First", Ingredients: []string{"milk"}},
		{ID: 20, Name: "Second", Ingredients: []string{"milk"}},
	})
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}

	choices, _ := Greedy(cat, []string{"milk"}, 1)
	if len(choices) != 1 || choices[0].Recipe.ID != 10 {
		t.Errorf("expected first catalog recipe to win the tie, got %v", choices)
	}
}

func TestGreedyNonPositiveK(t *testing.T) {
	cat := greedyTestCatalog(t)
	for _, k := range []int{0, -1} {
		choices, covered := Greedy(cat, []string{"milk"}, k)
		if len(choices) != 0 || len(covered) != 0 {
			t.Errorf("k=%d: expected empty result, got %v / %v", k, choices, covered)
		}
	}
}
