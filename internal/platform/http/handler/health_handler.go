// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	// すべてのGET/HEAD/OPTIONSリクエストに対して200または204を返す
	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}

// APIHealth は /api/health エンドポイント用のハンドラを返します。
// データベース接続の状態を含めてレスポンスします。
func APIHealth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := "Connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			state = "Disconnected"
		}

		c.JSON(200, gin.H{
			"success":   true,
			"message":   "Resume Builder API is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  state,
		})
	}
}
