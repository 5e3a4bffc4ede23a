// Package handler はresumeフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume_backend/internal/feature/resume/domain/entity"
	"resume_backend/internal/feature/resume/transport/http/dto"
	"resume_backend/internal/feature/resume/usecase"
	jwtmw "resume_backend/internal/platform/jwt"
	"resume_backend/internal/render"
)

// ResumeUsecase はレジュメ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ResumeUsecase interface {
	Create(ctx context.Context, userID uint, templateID int, content entity.Content) (uint, error)
	List(ctx context.Context, userID uint) ([]entity.Resume, error)
	Update(ctx context.Context, userID, id uint, content entity.Content) (*entity.Resume, error)
	Export(ctx context.Context, userID, id uint, format string) (*usecase.ExportResult, error)
	SaveDraft(ctx context.Context, userID uint, content entity.Content) error
	LoadDraft(ctx context.Context, userID uint) (*entity.Content, error)
}

// TemplateStyles はテンプレートIDからプレビュー用スタイルクラスを引きます。
type TemplateStyles interface {
	// StyleClass は指定IDのテンプレートのスタイルクラスを返します。
	// テンプレートが存在しない場合は ok=false を返します。
	StyleClass(id int) (string, bool)
}

// ResumeHandler はレジュメ操作のHTTPリクエストを処理します。
type ResumeHandler struct {
	resumes ResumeUsecase
	styles  TemplateStyles
}

// NewResumeHandler はResumeHandlerの新しいインスタンスを生成します。
func NewResumeHandler(resumes ResumeUsecase, styles TemplateStyles) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, styles: styles}
}

// Create はレジュメ作成APIエンドポイントを処理します。
func (h *ResumeHandler) Create(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.CreateResumeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("resume create validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Template ID and content are required"})
		return
	}

	id, err := h.resumes.Create(c.Request.Context(), userID, req.TemplateID, req.Content)
	if err != nil {
		slog.Warn("resume create failed", "error", err, "user_id", userID)
		if errors.Is(err, usecase.ErrTemplateNotFound) {
			c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Unknown template"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error while creating resume"})
		return
	}

	slog.Info("resume created", "resume_id", id, "user_id", userID)
	c.JSON(http.StatusCreated, dto.CreateRes{
		Success:  true,
		Message:  "Resume created successfully",
		ResumeID: id,
	})
}

// List は所有者のレジュメ一覧APIエンドポイントを処理します。
func (h *ResumeHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	resumes, err := h.resumes.List(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("resume list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error while fetching resumes"})
		return
	}

	items := make([]dto.ResumeRes, 0, len(resumes))
	for i := range resumes {
		items = append(items, dto.NewResumeRes(&resumes[i]))
	}
	c.JSON(http.StatusOK, dto.ListRes{Success: true, Resumes: items, Count: len(items)})
}

// Update はレジュメ更新APIエンドポイントを処理します。
// 所有者以外からの更新は404として扱います。
func (h *ResumeHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Invalid resume id"})
		return
	}

	var req dto.UpdateResumeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("resume update validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Resume content is required"})
		return
	}

	resume, err := h.resumes.Update(c.Request.Context(), userID, id, req.Content)
	if err != nil {
		slog.Warn("resume update failed", "error", err, "resume_id", id, "user_id", userID)
		if errors.Is(err, usecase.ErrResumeNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Resume not found or access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error while updating resume"})
		return
	}

	slog.Info("resume updated", "resume_id", id, "user_id", userID)
	c.JSON(http.StatusOK, dto.UpdateRes{
		Success: true,
		Message: "Resume updated successfully",
		Resume:  dto.NewResumeRes(resume),
	})
}

// Export はレジュメエクスポートAPIエンドポイントを処理します。
// 成功時はダウンロード可能なバイナリをattachmentとして返します。
func (h *ResumeHandler) Export(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Invalid resume id"})
		return
	}
	format := c.Param("format")

	result, err := h.resumes.Export(c.Request.Context(), userID, id, format)
	if err != nil {
		slog.Warn("resume export failed", "error", err, "resume_id", id, "format", format, "user_id", userID)
		switch {
		case errors.Is(err, usecase.ErrResumeNotFound):
			c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Resume not found or access denied"})
		case errors.Is(err, usecase.ErrUnsupportedFormat):
			c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Unsupported export format"})
		case errors.Is(err, render.ErrNameRequired):
			c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Please fill in at least your name to download the resume"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error while exporting resume"})
		}
		return
	}

	slog.Info("resume exported", "resume_id", id, "format", format, "user_id", userID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// Preview はプレビューAPIエンドポイントを処理します。
// ステートレスで、編集のたびに同じ入力から同じマークアップを返します。
func (h *ResumeHandler) Preview(c *gin.Context) {
	var req dto.PreviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Template ID is required"})
		return
	}

	styleClass, ok := h.styles.StyleClass(req.TemplateID)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Unknown template"})
		return
	}

	markup, err := render.Preview(req.Content, styleClass)
	if err != nil {
		slog.Error("preview render failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error while rendering preview"})
		return
	}
	c.JSON(http.StatusOK, dto.PreviewRes{Success: true, Markup: markup})
}

// SaveDraft はドラフト自動保存APIエンドポイントを処理します。
func (h *ResumeHandler) SaveDraft(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.DraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Draft content is required"})
		return
	}

	if err := h.resumes.SaveDraft(c.Request.Context(), userID, req.Content); err != nil {
		if errors.Is(err, usecase.ErrEmptyDraft) {
			c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Draft content is empty"})
			return
		}
		slog.Warn("draft save failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error while saving draft"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Success: true, Message: "Draft saved"})
}

// LoadDraft はドラフト取得APIエンドポイントを処理します。
func (h *ResumeHandler) LoadDraft(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	content, err := h.resumes.LoadDraft(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageRes{Message: "No draft found"})
			return
		}
		slog.Warn("draft load failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error while loading draft"})
		return
	}
	c.JSON(http.StatusOK, dto.DraftRes{Success: true, Content: *content})
}

// parseID converts a path parameter into a resume id.
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
