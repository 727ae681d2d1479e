package recommend

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"recipe-recommender/internal/core/catalog"
	"recipe-recommender/internal/core/engine"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Engine: config.EngineConfig{
			DefaultNumCombo: 2,
			MaxNumCombo:     3,
			MaxIngredients:  5,
		},
	}
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cat, err := catalog.New([]catalog.Recipe{
		{ID: 1, Name: "Omelette", Ingredients: []string{"egg", "milk"}},
		{ID: 2, Name: "Custard", Ingredients: []string{"milk", "sugar"}},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	handler := NewHandler(engine.New(cat), testConfig())

	router := gin.New()
	router.POST("/api/v1/recipes/recommend", handler.HandleRecommend)
	router.GET("/api/v1/recipes", handler.HandleListRecipes)
	router.GET("/api/v1/recipes/:id", handler.HandleRecipeByID)
	return router
}

func postRecommend(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/recommend", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendWithIngredientArray(t *testing.T) {
	router := testRouter(t)

	w := postRecommend(t, router, `{"ingredients": ["Egg", "MILK"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Available []string `json:"available"`
		Matches   []struct {
			Score float64 `json:"score"`
		} `json:"matches"`
		NumCombo int `json:"num_combo"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	// Ingredients are lowercased before matching, so both recipes overlap.
	if len(resp.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(resp.Matches))
	}
	if resp.Matches[0].Score != 1.0 {
		t.Errorf("expected top score 1.0, got %v", resp.Matches[0].Score)
	}
	// num_combo omitted in the request falls back to the configured default.
	if resp.NumCombo != 2 {
		t.Errorf("expected default num_combo 2, got %d", resp.NumCombo)
	}
}

func TestRecommendWithCommaSeparatedString(t *testing.T) {
	router := testRouter(t)

	w := postRecommend(t, router, `{"ingredients": "egg, milk, sugar"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Available []string `json:"available"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Available) != 3 {
		t.Fatalf("expected 3 available ingredients, got %v", resp.Available)
	}
}

func TestRecommendInsightsToggle(t *testing.T) {
	router := testRouter(t)

	w := postRecommend(t, router, `{"ingredients": ["egg"], "insights": false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if _, ok := resp["graph"]; ok {
		t.Error("graph should be omitted when insights is disabled")
	}
}

func TestRecommendNumComboTooLarge(t *testing.T) {
	router := testRouter(t)

	w := postRecommend(t, router, `{"ingredients": ["egg"], "num_combo": 4}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Code != "NUM_COMBO_TOO_LARGE" {
		t.Errorf("unexpected error code %q", resp.Code)
	}
}

func TestRecommendNegativeNumCombo(t *testing.T) {
	router := testRouter(t)

	// Negative values are clamped to zero, not rejected.
	w := postRecommend(t, router, `{"ingredients": ["egg"], "num_combo": -1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		NumCombo int `json:"num_combo"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.NumCombo != 0 {
		t.Errorf("expected num_combo clamped to 0, got %d", resp.NumCombo)
	}
}

func TestRecommendTooManyIngredients(t *testing.T) {
	router := testRouter(t)

	w := postRecommend(t, router, `{"ingredients": ["a", "b", "c", "d", "e", "f"]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Code != "TOO_MANY_INGREDIENTS" {
		t.Errorf("unexpected error code %q", resp.Code)
	}
}

func TestRecommendInvalidBody(t *testing.T) {
	router := testRouter(t)

	w := postRecommend(t, router, `{"ingredients": 42}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListRecipes(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Recipes []struct {
			ID int `json:"id"`
		} `json:"recipes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(resp.Recipes))
	}
}

func TestRecipeByID(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Recipe struct {
			Name string `json:"name"`
		} `json:"recipe"`
		Substitutions map[string][]string `json:"substitutions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Recipe.Name != "Omelette" {
		t.Errorf("unexpected recipe %q", resp.Recipe.Name)
	}
	// Both egg and milk have substitution suggestions in the default table.
	if len(resp.Substitutions) != 2 {
		t.Errorf("expected substitutions for 2 ingredients, got %v", resp.Substitutions)
	}
}

func TestRecipeByIDNotFound(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Code != "RECIPE_NOT_FOUND" {
		t.Errorf("unexpected error code %q", resp.Code)
	}
}

func TestRecipeByIDInvalid(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
