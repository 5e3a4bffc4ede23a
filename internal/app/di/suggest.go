package di

import (
	"context"
	"log/slog"
	"time"

	"resume_backend/internal/feature/suggest/adapters/canned"
	"resume_backend/internal/feature/suggest/adapters/gemini"
	"resume_backend/internal/feature/suggest/usecase"
)

// NewSuggestionSource creates a SuggestionSource implementation.
// If the Gemini client can be initialized, it is used.
// Otherwise, it falls back to the local canned suggestions.
func NewSuggestionSource(ctx context.Context) usecase.SuggestionSource {
	source, err := gemini.NewGeminiSource(ctx)
	if err != nil {
		slog.Warn("Gemini unavailable, using canned suggestions", "error", err)
		return canned.NewCannedSource(time.Now().UnixNano())
	}
	return source
}
