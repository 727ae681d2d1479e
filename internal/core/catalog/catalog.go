package catalog

import (
	"fmt"
)

// Recipe 單筆食譜，載入後不再變動
type Recipe struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// Catalog 食譜目錄，啟動時載入一次，之後唯讀
type Catalog struct {
	recipes []Recipe
	byID    map[int]*Recipe
}

// New 建立目錄並驗證內容，id 重複視為目錄損毀
func New(recipes []Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: recipes,
		byID:    make(map[int]*Recipe, len(recipes)),
	}
	for i := range c.recipes {
		r := &c.recipes[i]
		if _, exists := c.byID[r.ID]; exists {
			return nil, fmt.Errorf("duplicate recipe id %d", r.ID)
		}
		c.byID[r.ID] = r
	}
	return c, nil
}

// Recipes 依載入順序回傳全部食譜
func (c *Catalog) Recipes() []Recipe {
	return c.recipes
}

// Len 目錄大小
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// FindByID 依 id 查找食譜，找不到回傳 false
func (c *Catalog) FindByID(id int) (*Recipe, bool) {
	r, ok := c.byID[id]
	return r, ok
}
