package engine

import (
	"recipe-recommender/internal/core/catalog"
)

// ComboSolution 組合搜尋的最佳解
type ComboSolution struct {
	Recipes       []*catalog.Recipe `json:"recipes"`
	CoverageCount int               `json:"coverage_count"`
	ScoreSum      float64           `json:"score_sum"`
	Covered       []string          `json:"covered"`
}

// comboCandidate 與可用集合有交集的候選食譜，分數對完整可用集合預先算好
type comboCandidate struct {
	recipe *catalog.Recipe
	cover  map[string]struct{} // required ∩ available
	score  float64
}

// comboSearch 深度優先搜尋的累加器，best 狀態顯式放在結構內
type comboSearch struct {
	candidates []comboCandidate
	maxRecipes int

	bestChosen  []int
	bestCovered map[string]struct{}
	bestScore   float64
}

// BestCombo 回溯搜尋最多 maxRecipes 筆食譜的組合，最大化覆蓋食材數，
// 次要鍵為各食譜對完整可用集合的分數總和。
// 固定起始索引只枚舉組合，不會重排同一集合；平手保留先找到的解。
func BestCombo(cat *catalog.Catalog, available []string, maxRecipes int) ComboSolution {
	availSet := NormalizeSet(available)

	// 只考慮有交集的食譜，純剪枝，不影響結果
	recipes := cat.Recipes()
	candidates := make([]comboCandidate, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		cover := intersect(requiredSet(r), availSet)
		if len(cover) == 0 {
			continue
		}
		score, _, _ := Score(r, availSet)
		candidates = append(candidates, comboCandidate{recipe: r, cover: cover, score: score})
	}

	s := &comboSearch{
		candidates:  candidates,
		maxRecipes:  maxRecipes,
		bestCovered: map[string]struct{}{},
	}
	s.dfs(0, nil, map[string]struct{}{}, 0)

	solution := ComboSolution{
		Recipes:       make([]*catalog.Recipe, 0, len(s.bestChosen)),
		CoverageCount: len(s.bestCovered),
		ScoreSum:      s.bestScore,
		Covered:       sortedKeys(s.bestCovered),
	}
	for _, idx := range s.bestChosen {
		solution.Recipes = append(solution.Recipes, s.candidates[idx].recipe)
	}
	return solution
}

// dfs 以固定起始索引枚舉組合，每個節點（含空選擇）都和目前最佳解比較
func (s *comboSearch) dfs(start int, chosen []int, covered map[string]struct{}, scoreSum float64) {
	if len(covered) > len(s.bestCovered) ||
		(len(covered) == len(s.bestCovered) && scoreSum > s.bestScore) {
		s.bestChosen = append([]int(nil), chosen...)
		s.bestCovered = copySet(covered)
		s.bestScore = scoreSum
	}

	if len(chosen) >= s.maxRecipes {
		return
	}

	for i := start; i < len(s.candidates); i++ {
		cand := s.candidates[i]
		next := copySet(covered)
		for ing := range cand.cover {
			next[ing] = struct{}{}
		}
		s.dfs(i+1, append(chosen, i), next, scoreSum+cand.score)
	}
}

// copySet 複製集合
func copySet(set map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(set))
	for k := range set {
		out[k] = struct{}{}
	}
	return out
}
