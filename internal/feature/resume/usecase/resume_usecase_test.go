package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume_backend/internal/feature/resume/domain/entity"
	"resume_backend/internal/render"
)

// mockResumeRepository is a mock implementation of the ResumeRepository interface.
type mockResumeRepository struct {
	CreateFunc          func(ctx context.Context, resume *entity.Resume) error
	FindByUserFunc      func(ctx context.Context, userID uint) ([]entity.Resume, error)
	FindByIDForUserFunc func(ctx context.Context, id, userID uint) (*entity.Resume, error)
	UpdateContentFunc   func(ctx context.Context, id, userID uint, content entity.Content) (*entity.Resume, error)
}

func (m *mockResumeRepository) Create(ctx context.Context, resume *entity.Resume) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, resume)
	}
	resume.ID = 1
	return nil
}

func (m *mockResumeRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Resume, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockResumeRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*entity.Resume, error) {
	if m.FindByIDForUserFunc != nil {
		return m.FindByIDForUserFunc(ctx, id, userID)
	}
	return nil, ErrResumeNotFound
}

func (m *mockResumeRepository) UpdateContent(ctx context.Context, id, userID uint, content entity.Content) (*entity.Resume, error) {
	if m.UpdateContentFunc != nil {
		return m.UpdateContentFunc(ctx, id, userID, content)
	}
	return nil, ErrResumeNotFound
}

// mockDraftRepository is a mock implementation of the DraftRepository interface.
type mockDraftRepository struct {
	SaveFunc func(ctx context.Context, userID uint, content entity.Content) error
	LoadFunc func(ctx context.Context, userID uint) (*entity.Content, error)
	saved    []entity.Content
}

func (m *mockDraftRepository) Save(ctx context.Context, userID uint, content entity.Content) error {
	m.saved = append(m.saved, content)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, content)
	}
	return nil
}

func (m *mockDraftRepository) Load(ctx context.Context, userID uint) (*entity.Content, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, userID)
	}
	return nil, ErrDraftNotFound
}

// mockCatalog is a mock implementation of the TemplateCatalog interface.
type mockCatalog struct {
	ids map[int]bool
}

func (m *mockCatalog) Exists(id int) bool {
	return m.ids[id]
}

func newTestUsecase(resumes *mockResumeRepository, drafts *mockDraftRepository) *resumeUsecase {
	return NewResumeUsecase(resumes, drafts, &mockCatalog{ids: map[int]bool{1: true, 2: true}})
}

func sampleContent() entity.Content {
	return entity.Content{
		PersonalInfo: entity.PersonalInfo{
			FullName: "Taro Yamada",
			Email:    "taro@example.com",
		},
		Summary: "Backend engineer",
	}
}

func TestResumeUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		var created *entity.Resume
		mockRepo := &mockResumeRepository{
			CreateFunc: func(ctx context.Context, resume *entity.Resume) error {
				resume.ID = 11
				created = resume
				return nil
			},
		}

		uc := newTestUsecase(mockRepo, &mockDraftRepository{})
		id, err := uc.Create(ctx, 3, 2, sampleContent())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 11 {
			t.Errorf("expected resume ID 11, got %d", id)
		}
		if created.UserID != 3 || created.TemplateID != 2 {
			t.Errorf("owner or template not carried: %+v", created)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		uc := newTestUsecase(&mockResumeRepository{}, &mockDraftRepository{})

		_, err := uc.Create(ctx, 3, 99, sampleContent())

		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got %v", err)
		}
	})
}

func TestResumeUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("ownership is enforced by the repository predicate", func(t *testing.T) {
		var gotID, gotUserID uint
		mockRepo := &mockResumeRepository{
			UpdateContentFunc: func(ctx context.Context, id, userID uint, content entity.Content) (*entity.Resume, error) {
				gotID, gotUserID = id, userID
				return &entity.Resume{ID: id, UserID: userID, Content: content}, nil
			},
		}

		uc := newTestUsecase(mockRepo, &mockDraftRepository{})
		updated, err := uc.Update(ctx, 3, 11, sampleContent())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotID != 11 || gotUserID != 3 {
			t.Errorf("repository called with id=%d userID=%d", gotID, gotUserID)
		}
		if updated.Content.PersonalInfo.FullName != "Taro Yamada" {
			t.Errorf("content not replaced")
		}
	})

	t.Run("someone else's resume looks like not found", func(t *testing.T) {
		uc := newTestUsecase(&mockResumeRepository{}, &mockDraftRepository{})

		_, err := uc.Update(ctx, 3, 11, sampleContent())

		if !errors.Is(err, ErrResumeNotFound) {
			t.Errorf("expected ErrResumeNotFound, got %v", err)
		}
	})
}

func TestResumeUsecase_Export(t *testing.T) {
	ctx := context.Background()

	ownedResume := func(content entity.Content) *mockResumeRepository {
		return &mockResumeRepository{
			FindByIDForUserFunc: func(ctx context.Context, id, userID uint) (*entity.Resume, error) {
				return &entity.Resume{ID: id, UserID: userID, TemplateID: 1, Content: content}, nil
			},
		}
	}

	t.Run("pdf export", func(t *testing.T) {
		uc := newTestUsecase(ownedResume(sampleContent()), &mockDraftRepository{})

		result, err := uc.Export(ctx, 3, 11, "pdf")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Filename != "taro_yamada_resume.pdf" {
			t.Errorf("unexpected filename: %q", result.Filename)
		}
		if result.ContentType != render.PDFContentType {
			t.Errorf("unexpected content type: %q", result.ContentType)
		}
		if len(result.Data) == 0 || !strings.HasPrefix(string(result.Data[:5]), "%PDF-") {
			t.Errorf("result does not look like a PDF")
		}
	})

	t.Run("doc export", func(t *testing.T) {
		uc := newTestUsecase(ownedResume(sampleContent()), &mockDraftRepository{})

		result, err := uc.Export(ctx, 3, 11, "doc")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Filename != "taro_yamada_resume.doc" {
			t.Errorf("unexpected filename: %q", result.Filename)
		}
		if result.ContentType != render.DocContentType {
			t.Errorf("unexpected content type: %q", result.ContentType)
		}
		if !strings.Contains(string(result.Data), "Taro Yamada") {
			t.Errorf("document should contain the name")
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		uc := newTestUsecase(ownedResume(sampleContent()), &mockDraftRepository{})

		_, err := uc.Export(ctx, 3, 11, "docx")

		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("blank name is refused", func(t *testing.T) {
		content := sampleContent()
		content.PersonalInfo.FullName = "   "
		uc := newTestUsecase(ownedResume(content), &mockDraftRepository{})

		_, err := uc.Export(ctx, 3, 11, "pdf")

		if !errors.Is(err, render.ErrNameRequired) {
			t.Errorf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("missing resume", func(t *testing.T) {
		uc := newTestUsecase(&mockResumeRepository{}, &mockDraftRepository{})

		_, err := uc.Export(ctx, 3, 11, "pdf")

		if !errors.Is(err, ErrResumeNotFound) {
			t.Errorf("expected ErrResumeNotFound, got %v", err)
		}
	})
}

func TestResumeUsecase_SaveDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("saves a non-empty draft", func(t *testing.T) {
		drafts := &mockDraftRepository{}
		uc := newTestUsecase(&mockResumeRepository{}, drafts)

		err := uc.SaveDraft(ctx, 3, sampleContent())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(drafts.saved) != 1 {
			t.Errorf("expected one save, got %d", len(drafts.saved))
		}
	})

	t.Run("empty draft is rejected", func(t *testing.T) {
		drafts := &mockDraftRepository{}
		uc := newTestUsecase(&mockResumeRepository{}, drafts)

		err := uc.SaveDraft(ctx, 3, entity.Content{})

		if !errors.Is(err, ErrEmptyDraft) {
			t.Errorf("expected ErrEmptyDraft, got %v", err)
		}
		if len(drafts.saved) != 0 {
			t.Errorf("empty draft should not reach the repository")
		}
	})
}

func TestResumeUsecase_LoadDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored draft", func(t *testing.T) {
		content := sampleContent()
		drafts := &mockDraftRepository{
			LoadFunc: func(ctx context.Context, userID uint) (*entity.Content, error) {
				return &content, nil
			},
		}
		uc := newTestUsecase(&mockResumeRepository{}, drafts)

		loaded, err := uc.LoadDraft(ctx, 3)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loaded.PersonalInfo.FullName != "Taro Yamada" {
			t.Errorf("draft content mismatch")
		}
	})

	t.Run("missing draft", func(t *testing.T) {
		uc := newTestUsecase(&mockResumeRepository{}, &mockDraftRepository{})

		_, err := uc.LoadDraft(ctx, 3)

		if !errors.Is(err, ErrDraftNotFound) {
			t.Errorf("expected ErrDraftNotFound, got %v", err)
		}
	})
}
