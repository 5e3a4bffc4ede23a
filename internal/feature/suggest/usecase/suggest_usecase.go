// Package usecase はsuggestフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
)

// SuggestionSource は経験欄の文例を1つ生成するソースを抽象化します。
// Gemini実装とローカルの定型文実装があります（di参照）。
type SuggestionSource interface {
	// Generate はプロンプトに対する提案文を1つ返します。
	Generate(ctx context.Context, prompt string) (string, error)
}

// suggestUsecase は文例提案のビジネスロジックを実装します。
type suggestUsecase struct {
	source SuggestionSource
}

// NewSuggestUsecase はsuggestUsecaseの新しいインスタンスを生成します。
func NewSuggestUsecase(source SuggestionSource) *suggestUsecase {
	return &suggestUsecase{source: source}
}

// Suggest は職種に合わせた経験欄の文例を1つ返します。
// 職種が空の場合は汎用の文例になります。
func (u *suggestUsecase) Suggest(ctx context.Context, role string) (string, error) {
	prompt := buildPrompt(role)
	suggestion, err := u.source.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate suggestion: %w", err)
	}
	return strings.TrimSpace(suggestion), nil
}

// buildPrompt は提案生成用のプロンプトを組み立てます。
func buildPrompt(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return "Write one concise resume bullet point describing a measurable professional achievement. Reply with the bullet point text only."
	}
	return fmt.Sprintf("Write one concise resume bullet point describing a measurable achievement for a %s. Reply with the bullet point text only.", role)
}
