package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// CodeTTL は発行した認証コードの有効期間です。
	CodeTTL = 15 * time.Minute

	// codeMin / codeSpan は6桁コードの範囲 [100000, 999999] を定義します。
	// 下限を100000にすることで先頭ゼロのコードは構造上発生しません。
	codeMin  = 100000
	codeSpan = 900000
)

// generateVerificationCode draws a 6-digit one-time code uniformly from
// [100000, 999999].
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%d", codeMin+n.Int64()), nil
}
