// Package draft provides a Redis-backed implementation of the resume
// draft repository. Drafts are throwaway autosave state, so they live
// in Redis with a TTL instead of the relational store.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resume_backend/internal/feature/resume/domain/entity"
	"resume_backend/internal/feature/resume/usecase"
)

// DefaultTTL is how long an untouched draft survives.
const DefaultTTL = 7 * 24 * time.Hour

// DraftRedis implements usecase.DraftRepository using Redis.
type DraftRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ usecase.DraftRepository = (*DraftRedis)(nil)

// NewDraftRedis creates a new DraftRedis instance. A zero ttl falls back
// to DefaultTTL.
func NewDraftRedis(client *redis.Client, prefix string, ttl time.Duration) *DraftRedis {
	if prefix == "" {
		prefix = "draft"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DraftRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// draftKey returns the Redis key for a user's draft.
func (r *DraftRedis) draftKey(userID uint) string {
	return fmt.Sprintf("%s:%d", r.prefix, userID)
}

// Save persists the draft content, resetting the TTL.
func (r *DraftRedis) Save(ctx context.Context, userID uint, content entity.Content) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	return r.client.Set(ctx, r.draftKey(userID), data, r.ttl).Err()
}

// Load retrieves the draft content for a user.
func (r *DraftRedis) Load(ctx context.Context, userID uint) (*entity.Content, error) {
	data, err := r.client.Get(ctx, r.draftKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrDraftNotFound
		}
		return nil, err
	}

	var content entity.Content
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &content, nil
}
