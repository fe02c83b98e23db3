// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health はサービスヘルスチェック用の /health（および /healthz）エンドポイントを処理します。
// GETでは {"status":"ok"} を返し、HEADはボディなしの200、OPTIONSは204を返します。
func Health(c *gin.Context) {
	// プロキシやブラウザにキャッシュさせない
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// RegisterHealth はヘルスチェック用ルートをGET/HEAD/OPTIONSで登録します。
func RegisterHealth(r gin.IRoutes, paths ...string) {
	for _, p := range paths {
		r.GET(p, Health)
		r.HEAD(p, Health)
		r.OPTIONS(p, Health)
	}
}
