package engine

import (
	"sort"

	"recipe-recommender/internal/core/catalog"
)

// MatchResult 單一食譜對可用食材集合的配對結果
type MatchResult struct {
	Recipe        *catalog.Recipe     `json:"recipe"`
	Score         float64             `json:"score"`
	Missing       []string            `json:"missing"`
	Present       []string            `json:"present"`
	Substitutions map[string][]string `json:"substitutions,omitempty"`
}

// requiredSet 食譜需求食材的正規化集合，重複項目收斂
func requiredSet(r *catalog.Recipe) map[string]struct{} {
	return NormalizeSet(r.Ingredients)
}

// Score 計算單一食譜的覆蓋分數與缺少、已有的食材清單。
// 分數 = |present| / max(|required|, 1)，分母下限 1 避免空食譜除以零。
func Score(r *catalog.Recipe, available map[string]struct{}) (float64, []string, []string) {
	required := requiredSet(r)

	present := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for ing := range required {
		if _, ok := available[ing]; ok {
			present = append(present, ing)
		} else {
			missing = append(missing, ing)
		}
	}
	sort.Strings(present)
	sort.Strings(missing)

	denom := len(required)
	if denom < 1 {
		denom = 1
	}
	score := float64(len(present)) / float64(denom)
	return score, missing, present
}

// Rank 為整個目錄評分並排序，零分食譜不進結果。
// 排序鍵：分數遞減，其次已有食材數遞減；同分維持目錄順序（穩定排序）。
func Rank(cat *catalog.Catalog, available map[string]struct{}, advisor *Advisor) []MatchResult {
	recipes := cat.Recipes()
	matched := make([]MatchResult, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		score, missing, present := Score(r, available)
		if score <= 0 {
			continue
		}
		matched = append(matched, MatchResult{
			Recipe:        r,
			Score:         score,
			Missing:       missing,
			Present:       present,
			Substitutions: advisor.Suggest(missing),
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		return len(matched[i].Present) > len(matched[j].Present)
	})

	return matched
}
