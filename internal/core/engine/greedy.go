package engine

import (
	"recipe-recommender/internal/core/catalog"
)

// GreedyChoice 貪婪選擇的單步結果，covered 為選擇當下新覆蓋的食材
type GreedyChoice struct {
	Recipe  *catalog.Recipe `json:"recipe"`
	Covered []string        `json:"covered"`
}

// Greedy 最大新覆蓋貪婪法：每輪在剩餘食材上挑覆蓋最多的食譜，最多 k 輪。
// 同覆蓋數時目錄順序在前者勝出，輸出因此是確定性的。
// 回傳選擇序列與全部被覆蓋食材的排序聯集。
func Greedy(cat *catalog.Catalog, available []string, k int) ([]GreedyChoice, []string) {
	availSet := NormalizeSet(available)
	remaining := make(map[string]struct{}, len(availSet))
	for ing := range availSet {
		remaining[ing] = struct{}{}
	}

	recipes := cat.Recipes()
	used := make(map[int]bool, k)
	chosen := make([]GreedyChoice, 0, max(k, 0))

	for round := 0; round < k; round++ {
		var best *catalog.Recipe
		var bestCover map[string]struct{}

		for i := range recipes {
			r := &recipes[i]
			if used[r.ID] {
				continue
			}
			cover := intersect(requiredSet(r), remaining)
			// 嚴格大於：同覆蓋數時保留先遇到的候選
			if len(cover) > len(bestCover) {
				best = r
				bestCover = cover
			}
		}

		if best == nil || len(bestCover) == 0 {
			break
		}

		chosen = append(chosen, GreedyChoice{
			Recipe:  best,
			Covered: sortedKeys(bestCover),
		})
		for ing := range bestCover {
			delete(remaining, ing)
		}
		used[best.ID] = true
	}

	// 總覆蓋 = 可用集合 − 剩餘集合
	covered := make(map[string]struct{}, len(availSet)-len(remaining))
	for ing := range availSet {
		if _, ok := remaining[ing]; !ok {
			covered[ing] = struct{}{}
		}
	}
	return chosen, sortedKeys(covered)
}

// intersect 回傳 a ∩ b 的新集合
func intersect(a, b map[string]struct{}) map[string]struct{} {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
