// Package handler はsuggestフィーチャーのHTTPハンドラを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuggestUsecase はハンドラが必要とする文例提案のユースケースです。
// インターフェースは利用側で定義します。
type SuggestUsecase interface {
	Suggest(ctx context.Context, role string) (string, error)
}

// SuggestHandler は文例提案のHTTPハンドラです。
type SuggestHandler struct {
	suggest SuggestUsecase
}

// NewSuggestHandler はSuggestHandlerの新しいインスタンスを生成します。
func NewSuggestHandler(suggest SuggestUsecase) *SuggestHandler {
	return &SuggestHandler{suggest: suggest}
}

// Suggest は職種に合わせた経験欄の文例を1つ返します。
// GET /api/suggestions?role=...
func (h *SuggestHandler) Suggest(c *gin.Context) {
	role := c.Query("role")

	suggestion, err := h.suggest.Suggest(c.Request.Context(), role)
	if err != nil {
		slog.Error("suggestion generation failed", "role", role, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"message": "Failed to generate suggestion",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"suggestion": suggestion,
	})
}
