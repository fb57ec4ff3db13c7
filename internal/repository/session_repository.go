package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/pkg/cache"
)

// SessionRepository keeps the per-browser state of the web frontend in Redis:
// a JSON state blob, the topic selection set and the one-shot quiz handoff.
type SessionRepository struct {
	redis      *cache.RedisClient
	ttl        time.Duration
	handoffTTL time.Duration
}

func NewSessionRepository(redis *cache.RedisClient, ttl, handoffTTL time.Duration) *SessionRepository {
	return &SessionRepository{
		redis:      redis,
		ttl:        ttl,
		handoffTTL: handoffTTL,
	}
}

func stateKey(sessionID string) string   { return fmt.Sprintf("ppia:session:%s:state", sessionID) }
func topicsKey(sessionID string) string  { return fmt.Sprintf("ppia:session:%s:topics", sessionID) }
func handoffKey(sessionID string) string { return fmt.Sprintf("ppia:session:%s:handoff", sessionID) }

func answeredKey(sessionID, key string) string {
	return fmt.Sprintf("ppia:session:%s:answered:%s", sessionID, key)
}

func (r *SessionRepository) LoadState(ctx context.Context, sessionID string) (*models.SessionState, error) {
	data, err := r.redis.Get(ctx, stateKey(sessionID))
	if errors.Is(err, cache.ErrMiss) {
		return &models.SessionState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}

	var state models.SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return &state, nil
}

func (r *SessionRepository) SaveState(ctx context.Context, sessionID string, state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}
	if err := r.redis.Set(ctx, stateKey(sessionID), data, r.ttl); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return r.redis.Expire(ctx, topicsKey(sessionID), r.ttl)
}

// ToggleTopic flips membership of topic in the selection set and reports
// whether the topic is selected afterwards.
func (r *SessionRepository) ToggleTopic(ctx context.Context, sessionID, topic string) (bool, error) {
	key := topicsKey(sessionID)
	removed, err := r.redis.SetRemove(ctx, key, topic)
	if err != nil {
		return false, fmt.Errorf("failed to toggle topic: %w", err)
	}
	if removed > 0 {
		return false, nil
	}
	if err := r.redis.SetAdd(ctx, key, topic); err != nil {
		return false, fmt.Errorf("failed to toggle topic: %w", err)
	}
	if err := r.redis.Expire(ctx, key, r.ttl); err != nil {
		return true, fmt.Errorf("failed to refresh topic ttl: %w", err)
	}
	return true, nil
}

func (r *SessionRepository) Topics(ctx context.Context, sessionID string) ([]string, error) {
	members, err := r.redis.SetMembers(ctx, topicsKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to read topics: %w", err)
	}
	sort.Strings(members)
	return members, nil
}

func (r *SessionRepository) ClearTopics(ctx context.Context, sessionID string) error {
	return r.redis.Delete(ctx, topicsKey(sessionID))
}

func (r *SessionRepository) PutHandoff(ctx context.Context, sessionID string, q *dto.Question) error {
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to marshal handoff question: %w", err)
	}
	return r.redis.Set(ctx, handoffKey(sessionID), data, r.handoffTTL)
}

// TakeHandoff returns the pending handoff question, or nil, and empties the slot.
func (r *SessionRepository) TakeHandoff(ctx context.Context, sessionID string) (*dto.Question, error) {
	data, err := r.redis.GetDel(ctx, handoffKey(sessionID))
	if errors.Is(err, cache.ErrMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to take handoff: %w", err)
	}

	var q dto.Question
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal handoff question: %w", err)
	}
	return &q, nil
}

// ClaimAnswer is a SET NX on the answered key, so concurrent submissions of
// the same question race on Redis and exactly one wins.
func (r *SessionRepository) ClaimAnswer(ctx context.Context, sessionID, key string) (bool, error) {
	ok, err := r.redis.SetNX(ctx, answeredKey(sessionID, key), 1, r.ttl)
	if err != nil {
		return false, fmt.Errorf("failed to claim answer: %w", err)
	}
	return ok, nil
}

func (r *SessionRepository) ReleaseAnswer(ctx context.Context, sessionID, key string) error {
	if err := r.redis.Delete(ctx, answeredKey(sessionID, key)); err != nil {
		return fmt.Errorf("failed to release answer: %w", err)
	}
	return nil
}

func (r *SessionRepository) Destroy(ctx context.Context, sessionID string) error {
	return r.redis.Delete(ctx, stateKey(sessionID), topicsKey(sessionID), handoffKey(sessionID))
}
