package engine

import (
	"testing"
)

func TestSuggestKnownIngredient(t *testing.T) {
	a := NewAdvisor()
	got := a.Suggest([]string{"egg"})
	subs, ok := got["egg"]
	if !ok {
		t.Fatal("expected suggestions for egg")
	}
	if len(subs) != 3 || subs[0] != "banana (mashed)" {
		t.Errorf("unexpected suggestions for egg: %v", subs)
	}
}

// Ingredients outside the table are omitted from the result, never an error.
func TestSuggestOmitsUnknownIngredients(t *testing.T) {
	a := NewAdvisor()
	got := a.Suggest([]string{"unobtainium", "egg"})
	if _, ok := got["unobtainium"]; ok {
		t.Error("expected unknown ingredient to be omitted")
	}
	if len(got) != 1 {
		t.Errorf("expected 1 entry, got %d", len(got))
	}
}

// Lookup is by lowercased name but the result keeps the caller's spelling.
func TestSuggestLowercasesLookupKey(t *testing.T) {
	a := NewAdvisor()
	got := a.Suggest([]string{"Egg"})
	if _, ok := got["Egg"]; !ok {
		t.Errorf("expected result keyed by original string, got %v", got)
	}
}

func TestSuggestCustomTable(t *testing.T) {
	a := NewAdvisorWithTable(map[string][]string{"tofu": {"paneer"}})
	got := a.Suggest([]string{"tofu", "egg"})
	if len(got) != 1 {
		t.Errorf("expected only the custom table entry, got %v", got)
	}
}

func TestSuggestEmptyMissingList(t *testing.T) {
	a := NewAdvisor()
	if got := a.Suggest(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
