// Package canned はローカルの定型文から文例を返すSuggestionSource実装を提供します。
// Geminiが利用できない環境でのフォールバックとして使用します。
package canned

import (
	"context"
	"math/rand"
	"sync"

	"resume_backend/internal/feature/suggest/usecase"
)

// suggestions は定型文の一覧です。
var suggestions = []string{
	"Managed a team of 5+ developers to deliver projects 20% ahead of schedule",
	"Implemented automated testing procedures that reduced bugs by 40%",
	"Collaborated with cross-functional teams to improve user experience",
	"Optimized database queries resulting in 30% faster application performance",
	"Led the migration to cloud infrastructure, reducing costs by 25%",
	"Developed and maintained scalable web applications serving 100k+ users",
	"Increased customer satisfaction by 35% through improved product features",
	"Reduced system downtime by 60% through proactive monitoring solutions",
}

// CannedSource は定型文からランダムに1つを返します。
type CannedSource struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// CannedSourceがSuggestionSourceを実装していることをコンパイル時に検証します。
var _ usecase.SuggestionSource = (*CannedSource)(nil)

// NewCannedSource はCannedSourceの新しいインスタンスを生成します。
func NewCannedSource(seed int64) *CannedSource {
	return &CannedSource{rand: rand.New(rand.NewSource(seed))}
}

// Generate はプロンプトの内容に関わらず定型文からランダムに1つ返します。
func (s *CannedSource) Generate(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return suggestions[s.rand.Intn(len(suggestions))], nil
}
