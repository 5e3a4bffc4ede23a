// Package usecase はresumeフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"resume_backend/internal/feature/resume/domain/entity"
	"resume_backend/internal/render"
)

// ResumeRepository はレジュメエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ResumeRepository interface {
	// Create は新しいレジュメをストレージに永続化します。
	Create(ctx context.Context, resume *entity.Resume) error

	// FindByUser は所有者のレジュメを最終更新の新しい順で取得します。
	FindByUser(ctx context.Context, userID uint) ([]entity.Resume, error)

	// FindByIDForUser は所有者のレジュメをIDで取得します。
	// 存在しない、または所有者が異なる場合はErrResumeNotFoundを返します。
	FindByIDForUser(ctx context.Context, id, userID uint) (*entity.Resume, error)

	// UpdateContent は所有者条件付きでコンテンツを全置換します。
	// 該当行がない場合はErrResumeNotFoundを返します。
	UpdateContent(ctx context.Context, id, userID uint, content entity.Content) (*entity.Resume, error)
}

// DraftRepository はフォームの自動保存スナップショットを抽象化します。
type DraftRepository interface {
	// Save はアカウントのドラフトを上書き保存します。
	Save(ctx context.Context, userID uint, content entity.Content) error

	// Load はアカウントの最新ドラフトを取得します。
	// 存在しない場合はErrDraftNotFoundを返します。
	Load(ctx context.Context, userID uint) (*entity.Content, error)
}

// TemplateCatalog はテンプレートカタログへの参照を抽象化します。
type TemplateCatalog interface {
	// Exists は指定IDのテンプレートがカタログにあるかを返します。
	Exists(id int) bool
}

// ExportResult はエクスポート成果物を表します。
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// resumeUsecase はレジュメのCRUD・エクスポート・ドラフトのビジネスロジックを実装します。
type resumeUsecase struct {
	resumes ResumeRepository
	drafts  DraftRepository
	catalog TemplateCatalog
}

// NewResumeUsecase はresumeUsecaseの新しいインスタンスを生成します。
func NewResumeUsecase(resumes ResumeRepository, drafts DraftRepository, catalog TemplateCatalog) *resumeUsecase {
	return &resumeUsecase{
		resumes: resumes,
		drafts:  drafts,
		catalog: catalog,
	}
}

// Create は指定テンプレートで新しいレジュメを作成し、IDを返します。
// カタログにないテンプレートIDは拒否します。
func (u *resumeUsecase) Create(ctx context.Context, userID uint, templateID int, content entity.Content) (uint, error) {
	if !u.catalog.Exists(templateID) {
		return 0, ErrTemplateNotFound
	}
	resume := &entity.Resume{
		UserID:     userID,
		TemplateID: templateID,
		Content:    content,
	}
	if err := u.resumes.Create(ctx, resume); err != nil {
		return 0, err
	}
	return resume.ID, nil
}

// List は所有者のレジュメを最終更新の新しい順で返します。
func (u *resumeUsecase) List(ctx context.Context, userID uint) ([]entity.Resume, error) {
	return u.resumes.FindByUser(ctx, userID)
}

// Update はコンテンツを全置換します。所有者チェックは永続化層の
// WHERE句で行われるため、他人のレジュメはErrResumeNotFoundになります。
func (u *resumeUsecase) Update(ctx context.Context, userID, id uint, content entity.Content) (*entity.Resume, error) {
	return u.resumes.UpdateContent(ctx, id, userID, content)
}

// Export はレジュメを指定フォーマットでエクスポートします。
// フルネームが空の場合はrender.ErrNameRequiredで拒否されます。
func (u *resumeUsecase) Export(ctx context.Context, userID, id uint, format string) (*ExportResult, error) {
	resume, err := u.resumes.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	switch format {
	case "pdf":
		data, err := render.PDF(resume.Content)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Filename:    render.Filename(resume.Content.PersonalInfo.FullName, "pdf"),
			ContentType: render.PDFContentType,
			Data:        data,
		}, nil
	case "doc":
		data, err := render.Doc(resume.Content)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			Filename:    render.Filename(resume.Content.PersonalInfo.FullName, "doc"),
			ContentType: render.DocContentType,
			Data:        data,
		}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// SaveDraft はアカウントのドラフトスナップショットを上書き保存します。
// 空のコンテンツは保存しません。
func (u *resumeUsecase) SaveDraft(ctx context.Context, userID uint, content entity.Content) error {
	if content.IsEmpty() {
		return ErrEmptyDraft
	}
	return u.drafts.Save(ctx, userID, content)
}

// LoadDraft はアカウントの最新ドラフトスナップショットを返します。
func (u *resumeUsecase) LoadDraft(ctx context.Context, userID uint) (*entity.Content, error) {
	return u.drafts.Load(ctx, userID)
}
