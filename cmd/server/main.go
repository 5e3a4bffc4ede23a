package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"resume_backend/internal/app/di"
	"resume_backend/internal/app/router"
	authadapters "resume_backend/internal/feature/auth/adapters"
	authhandler "resume_backend/internal/feature/auth/transport/handler"
	authusecase "resume_backend/internal/feature/auth/usecase"
	resumeadapters "resume_backend/internal/feature/resume/adapters"
	resumehandler "resume_backend/internal/feature/resume/transport/handler"
	resumeusecase "resume_backend/internal/feature/resume/usecase"
	suggesthandler "resume_backend/internal/feature/suggest/transport/handler"
	suggestusecase "resume_backend/internal/feature/suggest/usecase"
	"resume_backend/internal/feature/template/catalog"
	templatehandler "resume_backend/internal/feature/template/transport/handler"
	platformdb "resume_backend/internal/platform/db"
	jwtmw "resume_backend/internal/platform/jwt"
	platformredis "resume_backend/internal/platform/redis"
	"resume_backend/internal/shared/ratelimiter"
)

func main() {
	// .env があれば読み込む（本番では環境変数を直接設定）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using environment variables")
	}

	// JWT_SECRETは必須
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Drafts fall back to Postgres.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	resumeRepo := resumeadapters.NewResumePostgres(db)
	draftRepo := di.NewDraftRepository(rdb, db)

	// テンプレートカタログ（組み込み定義）
	templates := catalog.New()

	// 外部依存（SMTP / Gemini）はフォールバック付きで解決
	mailSender := di.NewMailSender()
	source := di.NewSuggestionSource(context.Background())

	jwtGen := jwtmw.NewGenerator(jwtSecret, jwtmw.TokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, mailSender, jwtGen)
	resumeUC := resumeusecase.NewResumeUsecase(resumeRepo, draftRepo, templates)
	suggestUC := suggestusecase.NewSuggestUsecase(source)

	// 再送はメールアドレスごとに1分3回まで
	resendThrottle := ratelimiter.NewKeyedLimiter(3, time.Minute)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, resendThrottle)
	templateH := templatehandler.NewTemplateHandler(templates)
	resumeH := resumehandler.NewResumeHandler(resumeUC, templates)
	suggestH := suggesthandler.NewSuggestHandler(suggestUC)

	// ルータ生成
	router := router.NewRouter(db, jwtSecret, authH, templateH, resumeH, suggestH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
