// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume_backend/internal/feature/auth/domain/entity"
	"resume_backend/internal/feature/auth/transport/http/dto"
	"resume_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録し認証コードを送信します。
	Signup(ctx context.Context, name, email, password string) (*usecase.SignupResult, error)
	// Verify は認証コードを検証し、成功時にトークンとユーザーを返します。
	Verify(ctx context.Context, email, code string) (string, *entity.User, error)
	// Resend は未認証アカウントに新しい認証コードを送信します。
	Resend(ctx context.Context, email string) error
	// Login はユーザーを認証し、成功時にトークンとユーザーを返します。
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// ResendThrottle はコード再送の頻度制限を抽象化します。
type ResendThrottle interface {
	// Allow は指定キーの操作を今実行してよいかを返します。
	Allow(key string) bool
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth     AuthUsecase
	throttle ResendThrottle
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseとResendThrottleを注入します。
func NewAuthHandler(auth AuthUsecase, throttle ResendThrottle) *AuthHandler {
	return &AuthHandler{auth: auth, throttle: throttle}
}

// userRes はエンティティをレスポンス用の形に変換します。
func userRes(u *entity.User) dto.UserRes {
	return dto.UserRes{ID: u.ID, Name: u.Name, Email: u.Email, IsVerified: u.IsVerified}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証済みメールの重複時は409を返却
// - メール送信失敗時は502を返却（新規作成はロールバック済み）
// - 新規作成成功時は201、未認証アカウントへの再発行時は200を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}

	result, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, dto.MessageRes{Message: "User already exists and is verified. Please login."})
		case errors.Is(err, usecase.ErrMailDispatch):
			c.JSON(http.StatusBadGateway, dto.MessageRes{Message: "Account creation failed. Unable to send verification email. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error during signup"})
		}
		return
	}

	if result.Resent {
		slog.Info("verification code reissued on signup retry", "email", req.Email)
		c.JSON(http.StatusOK, dto.SignupRes{
			Success: true,
			Message: "Verification email resent. Please check your inbox.",
			UserID:  result.UserID,
			Email:   req.Email,
		})
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SignupRes{
		Success: true,
		Message: "Account created successfully! Verification email sent to your inbox.",
		UserID:  result.UserID,
		Email:   req.Email,
	})
}

// Verify はメール認証APIエンドポイントを処理します。
// コード不一致と期限切れは別のエラーとして返し、クライアントは期限切れの
// 場合のみ再送を促せます。
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Email and verification code are required"})
		return
	}

	token, user, err := h.auth.Verify(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		slog.Warn("verification failed", "error", err, "email", req.Email)
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.MessageRes{Message: "User not found. Please signup first."})
		case errors.Is(err, usecase.ErrAlreadyVerified):
			c.JSON(http.StatusConflict, dto.MessageRes{Message: "Account already verified. Please login."})
		case errors.Is(err, usecase.ErrCodeMismatch):
			c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Invalid verification code. Please check and try again."})
		case errors.Is(err, usecase.ErrCodeExpired):
			c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Verification code expired. Please request a new one."})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error during verification"})
		}
		return
	}

	slog.Info("user verified successfully", "email", req.Email)
	c.JSON(http.StatusOK, dto.AuthRes{
		Success: true,
		Message: "Email verified successfully! Welcome to Resume Builder!",
		Token:   token,
		User:    userRes(user),
	})
}

// Resend は認証コード再送APIエンドポイントを処理します。
// 同じメールアドレスへの連続再送はレートリミットで429を返します。
func (h *AuthHandler) Resend(c *gin.Context) {
	var req dto.ResendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("resend validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Email is required"})
		return
	}

	if !h.throttle.Allow(req.Email) {
		slog.Warn("resend throttled", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusTooManyRequests, dto.MessageRes{Message: "Too many resend requests. Please wait before trying again."})
		return
	}

	if err := h.auth.Resend(c.Request.Context(), req.Email); err != nil {
		slog.Warn("resend failed", "error", err, "email", req.Email)
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.MessageRes{Message: "User not found. Please signup first."})
		case errors.Is(err, usecase.ErrAlreadyVerified):
			c.JSON(http.StatusConflict, dto.MessageRes{Message: "Account already verified. Please login."})
		case errors.Is(err, usecase.ErrMailDispatch):
			c.JSON(http.StatusBadGateway, dto.MessageRes{Message: "Failed to send verification email. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "Server error while resending code"})
		}
		return
	}

	slog.Info("verification code resent", "email", req.Email)
	c.JSON(http.StatusOK, dto.MessageRes{Success: true, Message: "New verification code sent successfully! Check your inbox."})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// 未認証アカウントには needsVerification を付けて403を返し、
// クライアントを認証フローへ誘導します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Email and password are required"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrNotVerified):
			c.JSON(http.StatusForbidden, dto.LoginFailRes{
				Message:           "Please verify your email before logging in. Check your inbox for verification code.",
				NeedsVerification: true,
				Email:             req.Email,
			})
		default:
			c.JSON(http.StatusUnauthorized, dto.MessageRes{Message: "Invalid email or password"})
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{
		Success: true,
		Message: "Login successful! Welcome back!",
		Token:   token,
		User:    userRes(user),
	})
}
