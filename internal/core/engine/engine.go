package engine

import (
	"context"
	"time"

	"recipe-recommender/internal/core/catalog"
	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// Engine 推薦引擎。目錄與索引在建立後唯讀，
// 單一 Engine 可被任意數量的請求並行使用。
type Engine struct {
	catalog *catalog.Catalog
	index   *Index
	advisor *Advisor
}

// GreedyResult 貪婪推薦的彙總結果
type GreedyResult struct {
	Choices      []GreedyChoice `json:"choices"`
	TotalCovered []string       `json:"total_covered"`
}

// Recommendation 單次推薦請求的完整輸出
type Recommendation struct {
	Available []string      `json:"available"`
	Matches   []MatchResult `json:"matches"`
	Graph     *Graph        `json:"graph,omitempty"`
	Greedy    GreedyResult  `json:"greedy"`
	Combo     ComboSolution `json:"combo"`
}

// New 建立引擎，索引只在此建立一次
func New(cat *catalog.Catalog) *Engine {
	return &Engine{
		catalog: cat,
		index:   NewIndex(cat),
		advisor: NewAdvisor(),
	}
}

// Catalog 回傳底層目錄
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Index 回傳食材反向索引
func (e *Engine) Index() *Index {
	return e.index
}

// Advisor 回傳替代建議服務
func (e *Engine) Advisor() *Advisor {
	return e.advisor
}

// FindRecipe 依 id 查找食譜
func (e *Engine) FindRecipe(id int) (*catalog.Recipe, bool) {
	return e.catalog.FindByID(id)
}

// Recommend 執行一次完整推薦：排名、二部圖、貪婪選擇與組合搜尋。
// numCombo <= 0 時貪婪與組合回傳空結果；insights 控制是否附帶二部圖。
func (e *Engine) Recommend(ctx context.Context, rawIngredients []string, numCombo int, insights bool) *Recommendation {
	start := time.Now()

	availSet := NormalizeSet(rawIngredients)
	rec := &Recommendation{
		Available: sortedKeys(availSet),
		Matches:   Rank(e.catalog, availSet, e.advisor),
	}

	if insights {
		rec.Graph = BuildGraph(e.catalog, e.index, rawIngredients)
	}

	choices, covered := Greedy(e.catalog, rawIngredients, numCombo)
	rec.Greedy = GreedyResult{Choices: choices, TotalCovered: covered}

	rec.Combo = BestCombo(e.catalog, rawIngredients, numCombo)

	common.LogDebug("推薦計算",
		zap.Int("可用食材數", len(availSet)),
		zap.Int("匹配食譜數", len(rec.Matches)),
		zap.Int("num_combo", numCombo),
		zap.Duration("耗時", time.Since(start)),
	)

	return rec
}
