package recommend

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"recipe-recommender/internal/core/engine"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IngredientList 可用食材清單。接受 JSON 字串陣列，
// 也接受單一逗號分隔字串（對應表單輸入格式）。
type IngredientList []string

// UnmarshalJSON 實現兩種輸入格式的解析
func (l *IngredientList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := common.ParseJSONBytes(data, &list); err == nil {
		*l = list
		return nil
	}
	var raw string
	if err := common.ParseJSONBytes(data, &raw); err != nil {
		return err
	}
	*l = engine.SplitIngredients(raw)
	return nil
}

// RecommendRequest 推薦請求
type RecommendRequest struct {
	Ingredients IngredientList `json:"ingredients"`         // 可用食材
	NumCombo    *int           `json:"num_combo,omitempty"` // 貪婪與組合搜尋的 k，省略時用預設值
	Insights    *bool          `json:"insights,omitempty"`  // 是否附帶二部圖，預設開啟
}

// RecommendResponse 推薦響應
type RecommendResponse struct {
	*engine.Recommendation
	NumCombo int `json:"num_combo"`
}

// RecipeDetailResponse 食譜詳情響應
type RecipeDetailResponse struct {
	Recipe        interface{}         `json:"recipe"`
	Substitutions map[string][]string `json:"substitutions"`
}

// Handler 推薦處理程序
type Handler struct {
	engine *engine.Engine
	cfg    *config.Config
}

// NewHandler 創建新的推薦處理程序
func NewHandler(e *engine.Engine, cfg *config.Config) *Handler {
	return &Handler{
		engine: e,
		cfg:    cfg,
	}
}

// HandleRecommend 依可用食材推薦食譜
func (h *Handler) HandleRecommend(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理推薦請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if len(req.Ingredients) > h.cfg.Engine.MaxIngredients {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrTooManyIngredients.Message,
			"code":  common.ErrTooManyIngredients.Code,
			"max":   h.cfg.Engine.MaxIngredients,
		})
		return
	}

	// num_combo 省略時用預設值；負值視為 0，不是錯誤
	numCombo := h.cfg.Engine.DefaultNumCombo
	if req.NumCombo != nil {
		numCombo = *req.NumCombo
	}
	if numCombo < 0 {
		numCombo = 0
	}
	if numCombo > h.cfg.Engine.MaxNumCombo {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrNumComboTooLarge.Message,
			"code":  common.ErrNumComboTooLarge.Code,
			"max":   h.cfg.Engine.MaxNumCombo,
		})
		return
	}

	insights := true
	if req.Insights != nil {
		insights = *req.Insights
	}

	start := time.Now()
	rec := h.engine.Recommend(c.Request.Context(), req.Ingredients, numCombo, insights)
	common.LogRecommendation(len(rec.Available), len(rec.Matches), numCombo, time.Since(start), requestID)

	c.JSON(http.StatusOK, RecommendResponse{
		Recommendation: rec,
		NumCombo:       numCombo,
	})
}

// HandleListRecipes 回傳完整目錄
func (h *Handler) HandleListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"recipes": h.engine.Catalog().Recipes(),
	})
}

// HandleRecipeByID 依 id 查詢單筆食譜，附帶其食材的替代建議
func (h *Handler) HandleRecipeByID(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid recipe id",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	recipe, ok := h.engine.FindRecipe(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": common.ErrRecipeNotFound.Message,
			"code":  common.ErrRecipeNotFound.Code,
		})
		return
	}

	c.JSON(http.StatusOK, RecipeDetailResponse{
		Recipe:        recipe,
		Substitutions: h.engine.Advisor().Suggest(engine.Normalize(recipe.Ingredients)),
	})
}
