package engine

import (
	"recipe-recommender/internal/core/catalog"
)

// Graph 以使用者的可用食材為界的二部圖投影，供檢視與視覺化使用
type Graph struct {
	// IngredientToRecipes 每個可用食材對應需要它的食譜 id（可為空）
	IngredientToRecipes map[string][]int `json:"ingredient_to_recipes"`
	// RecipeToIngredients 與可用食材有交集的食譜，其完整需求集合
	RecipeToIngredients map[int][]string `json:"recipe_to_ingredients"`
}

// BuildGraph 建立二部圖。零交集的食譜完全不進 RecipeToIngredients，
// 這是診斷用的投影，不參與排名。
func BuildGraph(cat *catalog.Catalog, idx *Index, available []string) *Graph {
	availSet := NormalizeSet(available)

	g := &Graph{
		IngredientToRecipes: make(map[string][]int, len(availSet)),
		RecipeToIngredients: make(map[int][]string),
	}

	for ing := range availSet {
		g.IngredientToRecipes[ing] = idx.LookupIDs(ing)
	}

	for _, r := range cat.Recipes() {
		required := requiredSet(&r)
		if intersects(required, availSet) {
			g.RecipeToIngredients[r.ID] = sortedKeys(required)
		}
	}

	return g
}

// intersects 檢查兩集合是否有共同元素
func intersects(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}
