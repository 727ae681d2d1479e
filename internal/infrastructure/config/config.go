package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Engine    EngineConfig    `mapstructure:"engine"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Dedup     DedupConfig     `mapstructure:"dedup"`
	LogLevel  string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// CatalogConfig 食譜目錄來源設定
type CatalogConfig struct {
	Path         string        `mapstructure:"path"`          // 本地 JSON 檔案路徑
	URL          string        `mapstructure:"url"`           // 遠端目錄 URL（設定時優先）
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"` // 遠端抓取逾時
}

// EngineConfig 推薦引擎設定
type EngineConfig struct {
	DefaultNumCombo int `mapstructure:"default_num_combo"` // 未指定 num_combo 時的預設值
	MaxNumCombo     int `mapstructure:"max_num_combo"`     // num_combo 上限，組合搜尋成本為指數
	MaxIngredients  int `mapstructure:"max_ingredients"`   // 單一請求的食材數量上限
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// DedupConfig 請求去重設定
type DedupConfig struct {
	Window    time.Duration `mapstructure:"window"`
	RedisAddr string        `mapstructure:"redis_addr"` // 設定時以 Redis 共享去重狀態
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件，檔案不存在時以環境變數與預設值執行
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("catalog.path", "CATALOG_PATH")
	viper.BindEnv("catalog.url", "CATALOG_URL")
	viper.BindEnv("engine.default_num_combo", "ENGINE_DEFAULT_NUM_COMBO")
	viper.BindEnv("engine.max_num_combo", "ENGINE_MAX_NUM_COMBO")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup.window", "DEDUP_WINDOW")
	viper.BindEnv("dedup.redis_addr", "DEDUP_REDIS_ADDR")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 添加調試日誌（logger 尚未初始化，改用 fmt.Println）
	fmt.Println("Loading configuration", "catalog_path:", viper.GetString("catalog.path"), "catalog_url:", viper.GetString("catalog.url"))

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-recommender")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 目錄設定
	viper.SetDefault("catalog.path", "recipes.json")
	viper.SetDefault("catalog.url", "")
	viper.SetDefault("catalog.fetch_timeout", "10s")

	// 引擎設定
	viper.SetDefault("engine.default_num_combo", 3)
	viper.SetDefault("engine.max_num_combo", 5)
	viper.SetDefault("engine.max_ingredients", 100)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 去重設定
	viper.SetDefault("dedup.window", "1s")
	viper.SetDefault("dedup.redis_addr", "")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證目錄設定
	if config.Catalog.Path == "" && config.Catalog.URL == "" {
		return fmt.Errorf("catalog path or url is required")
	}
	if config.Catalog.URL != "" && config.Catalog.FetchTimeout <= 0 {
		return fmt.Errorf("invalid catalog fetch timeout")
	}

	// 驗證引擎設定
	if config.Engine.DefaultNumCombo < 0 {
		return fmt.Errorf("invalid engine default num combo")
	}
	if config.Engine.MaxNumCombo <= 0 {
		return fmt.Errorf("invalid engine max num combo")
	}
	if config.Engine.MaxIngredients <= 0 {
		return fmt.Errorf("invalid engine max ingredients")
	}

	return nil
}
