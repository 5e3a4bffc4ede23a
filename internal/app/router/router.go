package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authhandler "resume_backend/internal/feature/auth/transport/handler"
	resumehandler "resume_backend/internal/feature/resume/transport/handler"
	suggesthandler "resume_backend/internal/feature/suggest/transport/handler"
	templatehandler "resume_backend/internal/feature/template/transport/handler"
	"resume_backend/internal/platform/http/handler"
	jwtmw "resume_backend/internal/platform/jwt"
)

func NewRouter(db *gorm.DB, jwtSecret string,
	authHandler *authhandler.AuthHandler,
	templateHandler *templatehandler.TemplateHandler,
	resumeHandler *resumehandler.ResumeHandler,
	suggestHandler *suggesthandler.SuggestHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/api/health", handler.APIHealth(db))

	// アカウント登録と認証
	api := r.Group("/api")
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/verify-email", authHandler.Verify)
		api.POST("/auth/resend-code", authHandler.Resend)
		api.POST("/auth/login", authHandler.Login)

		// テンプレートカタログは公開
		api.GET("/templates", templateHandler.List)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/api")
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.POST("/resume/create", resumeHandler.Create)
		auth.GET("/resume/list", resumeHandler.List)
		auth.PUT("/resume/draft", resumeHandler.SaveDraft)
		auth.GET("/resume/draft", resumeHandler.LoadDraft)
		auth.PUT("/resume/:id", resumeHandler.Update)
		auth.GET("/resume/:id/export/:format", resumeHandler.Export)
		auth.POST("/resume/preview", resumeHandler.Preview)
		auth.GET("/suggestions", suggestHandler.Suggest)
	}

	return r
}
