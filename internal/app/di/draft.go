package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	resumeadapters "resume_backend/internal/feature/resume/adapters"
	"resume_backend/internal/feature/resume/usecase"
	"resume_backend/internal/platform/draft"
)

// NewDraftRepository creates a DraftRepository implementation.
// If Redis is available, it returns a Redis-backed implementation with TTL.
// Otherwise, it falls back to Postgres.
func NewDraftRepository(rdb *redis.Client, db *gorm.DB) usecase.DraftRepository {
	if rdb != nil {
		return draft.NewDraftRedis(rdb, "draft", draft.DefaultTTL)
	}
	return resumeadapters.NewDraftPostgres(db)
}
