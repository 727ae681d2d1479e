package engine

import (
	"sort"

	"recipe-recommender/internal/core/catalog"
)

// Index 正規化食材名稱到食譜 id 集合的反向索引，建立一次後唯讀
type Index struct {
	byIngredient map[string]map[int]struct{}
}

// NewIndex 從目錄建立索引，同一食譜內重複的食材以集合語義合併
func NewIndex(cat *catalog.Catalog) *Index {
	idx := &Index{
		byIngredient: make(map[string]map[int]struct{}),
	}
	for _, r := range cat.Recipes() {
		for _, ing := range r.Ingredients {
			key := NormalizeIngredient(ing)
			set, ok := idx.byIngredient[key]
			if !ok {
				set = make(map[int]struct{})
				idx.byIngredient[key] = set
			}
			set[r.ID] = struct{}{}
		}
	}
	return idx
}

// Lookup 查找需要某食材的食譜 id 集合，未知食材回傳空集合
func (idx *Index) Lookup(ingredient string) map[int]struct{} {
	if set, ok := idx.byIngredient[NormalizeIngredient(ingredient)]; ok {
		return set
	}
	return map[int]struct{}{}
}

// LookupIDs 同 Lookup，但回傳排序後的 id 切片
func (idx *Index) LookupIDs(ingredient string) []int {
	set := idx.Lookup(ingredient)
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
