package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resume_backend/internal/feature/resume/domain/entity"
	"resume_backend/internal/feature/resume/usecase"
)

// draftPostgres はDraftRepositoryインターフェースのSQLフォールバック実装です。
// Redisが利用できない環境ではこちらが使われます（di参照）。
type draftPostgres struct {
	db *gorm.DB
}

// draftPostgresがDraftRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.DraftRepository = (*draftPostgres)(nil)

// NewDraftPostgres は指定されたgorm.DB接続でdraftPostgresの新しいインスタンスを生成します。
func NewDraftPostgres(db *gorm.DB) *draftPostgres {
	return &draftPostgres{db: db}
}

// Save はアカウントのドラフトをUPSERTで上書き保存します。
func (r *draftPostgres) Save(ctx context.Context, userID uint, content entity.Content) error {
	draft := entity.Draft{
		UserID:    userID,
		Content:   content,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(&draft).Error
}

// Load はアカウントの最新ドラフトを取得します。
func (r *draftPostgres) Load(ctx context.Context, userID uint) (*entity.Content, error) {
	var draft entity.Draft
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrDraftNotFound
		}
		return nil, err
	}
	return &draft.Content, nil
}
