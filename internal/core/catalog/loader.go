package catalog

import (
	"context"
	"fmt"
	"os"
	"time"

	"recipe-recommender/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// rawRecipe 載入用中繼結構，指標欄位用來偵測缺漏
type rawRecipe struct {
	ID          *int      `json:"id"`
	Name        string    `json:"name"`
	Ingredients *[]string `json:"ingredients"`
}

// LoadFile 從本地 JSON 檔案載入目錄
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return parse(data, path)
}

// LoadURL 從遠端 URL 抓取目錄
func LoadURL(ctx context.Context, url string, timeout time.Duration) (*Catalog, error) {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("failed to fetch catalog: status %d", resp.StatusCode())
	}
	return parse(resp.Body(), url)
}

// parse 解析並驗證目錄內容，任何缺漏欄位都視為致命錯誤
func parse(data []byte, source string) (*Catalog, error) {
	var raw []rawRecipe
	if err := common.ParseJSONBytes(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	recipes := make([]Recipe, 0, len(raw))
	for i, r := range raw {
		if r.ID == nil {
			return nil, fmt.Errorf("catalog entry %d: missing id", i)
		}
		if r.Ingredients == nil {
			return nil, fmt.Errorf("catalog entry %d (id %d): missing ingredients", i, *r.ID)
		}
		recipes = append(recipes, Recipe{
			ID:          *r.ID,
			Name:        r.Name,
			Ingredients: *r.Ingredients,
		})
	}

	cat, err := New(recipes)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	common.LogInfo("食譜目錄已載入",
		zap.String("來源", source),
		zap.Int("食譜數", cat.Len()),
	)

	return cat, nil
}
