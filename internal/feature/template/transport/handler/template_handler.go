// Package handler はtemplateフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume_backend/internal/feature/template/domain/entity"
)

// TemplateLister はテンプレートカタログの一覧取得を抽象化します。
type TemplateLister interface {
	List() []entity.Template
}

// TemplateHandler はテンプレートカタログのHTTPリクエストを処理します。
type TemplateHandler struct {
	catalog TemplateLister
}

// NewTemplateHandler はTemplateHandlerの新しいインスタンスを生成します。
func NewTemplateHandler(catalog TemplateLister) *TemplateHandler {
	return &TemplateHandler{catalog: catalog}
}

// List はテンプレート一覧APIエンドポイントを処理します。
// カタログは静的なので認証不要です。
func (h *TemplateHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"templates": h.catalog.List(),
	})
}
