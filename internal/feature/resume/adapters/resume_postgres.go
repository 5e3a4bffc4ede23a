// Package adapters はresumeフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resume_backend/internal/feature/resume/domain/entity"
	"resume_backend/internal/feature/resume/usecase"
)

// resumePostgres はResumeRepositoryインターフェースのPostgreSQL実装です。
type resumePostgres struct {
	db *gorm.DB
}

// resumePostgresがResumeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ResumeRepository = (*resumePostgres)(nil)

// NewResumePostgres は指定されたgorm.DB接続でresumePostgresの新しいインスタンスを生成します。
func NewResumePostgres(db *gorm.DB) *resumePostgres {
	return &resumePostgres{db: db}
}

// Create はレジュメをデータベースに追加します。
func (r *resumePostgres) Create(ctx context.Context, resume *entity.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

// FindByUser は所有者のレジュメを最終更新の新しい順で取得します。
func (r *resumePostgres) FindByUser(ctx context.Context, userID uint) ([]entity.Resume, error) {
	var resumes []entity.Resume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

// FindByIDForUser は所有者のレジュメをIDで取得します。
// 他人のレジュメは存在しないものとして扱います。
func (r *resumePostgres) FindByIDForUser(ctx context.Context, id, userID uint) (*entity.Resume, error) {
	var resume entity.Resume
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&resume).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

// UpdateContent は所有者条件付きのUPDATEでコンテンツを全置換します。
// read-then-writeではなくWHERE句で所有者を確認するため、
// 他人のレジュメへの書き込みは行が一致せずErrResumeNotFoundになります。
func (r *resumePostgres) UpdateContent(ctx context.Context, id, userID uint, content entity.Content) (*entity.Resume, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Resume{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrResumeNotFound
	}

	var resume entity.Resume
	if err := r.db.WithContext(ctx).First(&resume, id).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}
