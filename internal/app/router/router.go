// Package router はHTTPルーティングを定義します。
package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	pricehandler "pricecheck_backend/internal/feature/pricing/transport/handler"
	"pricecheck_backend/internal/platform/config"
	platformhandler "pricecheck_backend/internal/platform/http/handler"
)

// Config はルーターの設定です。
type Config struct {
	AllowedOrigins []string // ALLOWED_ORIGINS（カンマ区切り）。"*" で全オリジンを許可
}

// LoadConfig は環境変数からルーター設定を読み込みます。
func LoadConfig() Config {
	return Config{
		AllowedOrigins: config.List("ALLOWED_ORIGINS", []string{"*"}),
	}
}

// NewRouter はgin.Engineを生成し、全ルートを登録します。
func NewRouter(cfg Config, price *pricehandler.PriceHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザのフロントエンドから直接呼ばれるためCORSを有効にする
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	// 導通確認用
	platformhandler.RegisterHealth(r, "/health", "/healthz")

	api := r.Group("/api")
	{
		api.POST("/scan", price.Scan)
		api.POST("/search", price.Search)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
