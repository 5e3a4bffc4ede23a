// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Save は既存ユーザーの状態を上書き保存します。
	Save(ctx context.Context, user *entity.User) error

	// Delete は指定されたIDのユーザーを削除します。
	Delete(ctx context.Context, id uint) error

	// MarkVerified はストレージ上のコードがまだ一致している場合に限り、
	// アカウントを認証済みに遷移させコードと期限をクリアします。
	// 条件に合う行がなかった場合はfalseを返します（compare-and-swap）。
	MarkVerified(ctx context.Context, id uint, code string) (bool, error)
}

// MailSender はメール送信のインターフェースを定義します。
type MailSender interface {
	// Send は指定された宛先にHTMLメールを送信します。
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// SignupResult はサインアップ処理の結果を表します。
// Resent は既存の未認証アカウントに対するコード再発行だったことを示します。
type SignupResult struct {
	UserID uint
	Resent bool
}

// authUsecase は認証・メール認証ライフサイクルのビジネスロジックを実装します。
type authUsecase struct {
	users UserRepository
	mail  MailSender
	jwt   JWTGenerator

	// now はテストから差し替え可能な現在時刻の供給源です。
	now func() time.Time
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, mail MailSender, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users: users,
		mail:  mail,
		jwt:   jwtGenerator,
		now:   time.Now,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup は新規ユーザーを未認証状態で登録し、認証コードを発行・送信します。
// 既存の未認証アカウントに対しては再発行として扱います（Resent=true）。
// 新規作成直後にメール送信が失敗した場合、到達不能なアカウントを残さないよう
// 作成したユーザーを削除してロールバックします。
func (u *authUsecase) Signup(ctx context.Context, name, email, password string) (*SignupResult, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	existing, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.IsVerified:
		return nil, ErrEmailAlreadyExists
	case err == nil:
		// 未認証アカウントの再サインアップはコード再発行として扱う。
		// 上書きした時点で古いコードは失効する。
		if err := u.reissueCode(ctx, existing); err != nil {
			return nil, err
		}
		return &SignupResult{UserID: existing.ID, Resent: true}, nil
	case !errors.Is(err, ErrUserNotFound):
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	code, err := u.stampCode(user)
	if err != nil {
		return nil, err
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if sendErr := u.sendCodeEmail(ctx, user, code); sendErr != nil {
		// 認証コードが届かないアカウントは残さない（補償削除）
		if delErr := u.users.Delete(ctx, user.ID); delErr != nil {
			return nil, errors.Join(sendErr, delErr)
		}
		return nil, sendErr
	}

	return &SignupResult{UserID: user.ID}, nil
}

// Verify は提出されたコードを検証し、アカウントを認証済みに遷移させます。
// 成功時はJWTトークンと更新後のユーザーを返します。
// 認証済みへの遷移はコード一致を条件とする条件付き更新で行うため、
// 同じ有効コードの同時提出は片方だけが成功し、もう片方はErrAlreadyVerifiedを観測します。
func (u *authUsecase) Verify(ctx context.Context, email, code string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user.IsVerified {
		return "", nil, ErrAlreadyVerified
	}

	// 文字列としての完全一致。数値比較にすると余計な整形を暗黙に受理してしまう。
	submitted := strings.TrimSpace(code)
	if user.VerificationCode == nil || *user.VerificationCode != submitted {
		return "", nil, ErrCodeMismatch
	}
	if user.CodeExpiry == nil || !u.now().Before(*user.CodeExpiry) {
		return "", nil, ErrCodeExpired
	}

	ok, err := u.users.MarkVerified(ctx, user.ID, submitted)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, ErrAlreadyVerified
	}

	user.IsVerified = true
	user.VerificationCode = nil
	user.CodeExpiry = nil

	token, err := u.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// Resend は未認証アカウントに新しい認証コードを発行・送信します。
// 新しいコードを生成した時点で、期限内であっても古いコードは無効になります。
func (u *authUsecase) Resend(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}
	return u.reissueCode(ctx, user)
}

// Login はユーザーを認証し、成功時にJWTトークンと対象ユーザーを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ。
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する。
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return "", nil, ErrNotVerified
	}

	token, tokenErr := u.jwt.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, user, nil
}

// stampCode は新しい認証コードと期限をユーザーに設定し、コードを返します。
func (u *authUsecase) stampCode(user *entity.User) (string, error) {
	code, err := generateVerificationCode()
	if err != nil {
		return "", err
	}
	expiry := u.now().Add(CodeTTL)
	user.VerificationCode = &code
	user.CodeExpiry = &expiry
	return code, nil
}

// reissueCode は既存ユーザーのコードを再発行・保存・送信します。
// 送信失敗時もロールバックはしません（新コードは保存済みのまま）。
func (u *authUsecase) reissueCode(ctx context.Context, user *entity.User) error {
	code, err := u.stampCode(user)
	if err != nil {
		return err
	}
	if err := u.users.Save(ctx, user); err != nil {
		return err
	}
	return u.sendCodeEmail(ctx, user, code)
}

// sendCodeEmail は認証コードメールを組み立てて送信します。
func (u *authUsecase) sendCodeEmail(ctx context.Context, user *entity.User, code string) error {
	subject, body, err := buildVerificationEmail(user.Name, user.Email, code)
	if err != nil {
		return err
	}
	if err := u.mail.Send(ctx, user.Email, subject, body); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDispatch, err)
	}
	return nil
}
