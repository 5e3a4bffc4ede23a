// Package gemini はGoogle Gemini APIを使用した文例生成クライアントを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"resume_backend/internal/feature/suggest/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiSource はGoogle Gemini APIを使用して経験欄の文例を生成します。
type GeminiSource struct {
	client *genai.Client
	model  string
}

// GeminiSourceがSuggestionSourceを実装していることをコンパイル時に検証します。
var _ usecase.SuggestionSource = (*GeminiSource)(nil)

// NewGeminiSource はADCを使用してGeminiSourceの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
func NewGeminiSource(ctx context.Context) (*GeminiSource, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiSource{client: client, model: DefaultModel}, nil
}

// Generate はプロンプトに対する文例を生成します。
func (g *GeminiSource) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
