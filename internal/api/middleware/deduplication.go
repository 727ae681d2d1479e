package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Deduplicator 請求指紋去重。設定 Redis 位址時由多個實例共享狀態，
// 否則退回行程內的 TTL 快取。只記錄請求指紋，不保存任何回應內容。
type Deduplicator struct {
	window time.Duration
	client *redis.Client
	local  *gocache.Cache
}

// NewDeduplicator 依設定建立去重器
func NewDeduplicator(cfg config.DedupConfig) *Deduplicator {
	window := cfg.Window
	if window <= 0 {
		window = time.Second
	}

	d := &Deduplicator{window: window}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		// 測試連接，失敗時退回本地快取
		if err := client.Ping(context.Background()).Err(); err != nil {
			common.LogWarn("Redis 連線失敗，去重退回本地快取",
				zap.String("addr", cfg.RedisAddr),
				zap.Error(err),
			)
		} else {
			d.client = client
		}
	}

	if d.client == nil {
		d.local = gocache.New(window, 10*window)
	}

	return d
}

// seen 檢查指紋是否在去重窗口內出現過，第一次寫入者回傳 false
func (d *Deduplicator) seen(ctx context.Context, fingerprint string) bool {
	if d.client != nil {
		ok, err := d.client.SetNX(ctx, "dedup:"+fingerprint, 1, d.window).Result()
		if err != nil {
			// Redis 故障時放行，不因去重層擋下正常請求
			common.LogWarn("去重檢查失敗", zap.Error(err))
			return false
		}
		return !ok
	}
	return d.local.Add(fingerprint, struct{}{}, d.window) != nil
}

// Close 釋放 Redis 連線
func (d *Deduplicator) Close() error {
	if d.client != nil {
		return d.client.Close()
	}
	return nil
}

// Deduplication 請求去重中間件，對相同 POST 請求體在窗口內只放行一次
func Deduplication(d *Deduplicator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 只處理 POST 請求
		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		// 計算請求體哈希
		bodyHash := ""
		if c.Request.Body != nil {
			// 讀取請求體
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}

			// 計算哈希
			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		// 生成請求指紋
		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if bodyHash != "" {
			fingerprint += ":" + bodyHash
		}

		// 檢查是否是重複請求
		if d.seen(c.Request.Context(), fingerprint) {
			c.JSON(429, gin.H{
				"error": "Request too frequent",
				"code":  "TOO_MANY_REQUESTS",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
