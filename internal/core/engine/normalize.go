package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeIngredient 正規化單一食材名稱：NFKC、去頭尾空白、轉小寫
func NormalizeIngredient(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// Normalize 逐一正規化食材名稱，輸出與輸入等長
func Normalize(ingredients []string) []string {
	out := make([]string, len(ingredients))
	for i, ing := range ingredients {
		out[i] = NormalizeIngredient(ing)
	}
	return out
}

// NormalizeSet 正規化後收斂成集合，重複與空字串會被合併保留
func NormalizeSet(ingredients []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ingredients))
	for _, ing := range ingredients {
		set[NormalizeIngredient(ing)] = struct{}{}
	}
	return set
}

// SplitIngredients 將逗號分隔的輸入切成食材清單，空白項目會被略過
func SplitIngredients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// sortedKeys 集合轉排序切片，輸出需要確定性時使用
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
