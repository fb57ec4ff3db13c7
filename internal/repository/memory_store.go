package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/internal/models"
)

const sweepInterval = time.Minute

type stateEntry struct {
	data      []byte
	expiresAt time.Time
}

type topicsEntry struct {
	selection *models.Selection
	expiresAt time.Time
}

type handoffEntry struct {
	question  dto.Question
	expiresAt time.Time
}

// MemoryStore is the in-process session store used when Redis is not
// reachable. State is lost on restart and not shared between replicas.
// Entries expire like their Redis counterparts: state, topics and answer
// claims after ttl, handoffs after handoffTTL.
type MemoryStore struct {
	mu         sync.Mutex
	states     map[string]stateEntry
	topics     map[string]topicsEntry
	handoffs   map[string]handoffEntry
	claims     map[string]time.Time
	ttl        time.Duration
	handoffTTL time.Duration
	nextSweep  time.Time
	now        func() time.Time
}

func NewMemoryStore(ttl, handoffTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		states:     make(map[string]stateEntry),
		topics:     make(map[string]topicsEntry),
		handoffs:   make(map[string]handoffEntry),
		claims:     make(map[string]time.Time),
		ttl:        ttl,
		handoffTTL: handoffTTL,
		now:        time.Now,
	}
}

// sweep drops every expired entry. Callers hold mu.
func (m *MemoryStore) sweep(now time.Time) {
	if now.Before(m.nextSweep) {
		return
	}
	m.nextSweep = now.Add(sweepInterval)

	for id, e := range m.states {
		if now.After(e.expiresAt) {
			delete(m.states, id)
		}
	}
	for id, e := range m.topics {
		if now.After(e.expiresAt) {
			delete(m.topics, id)
		}
	}
	for id, e := range m.handoffs {
		if now.After(e.expiresAt) {
			delete(m.handoffs, id)
		}
	}
	for k, exp := range m.claims {
		if now.After(exp) {
			delete(m.claims, k)
		}
	}
}

func (m *MemoryStore) LoadState(_ context.Context, sessionID string) (*models.SessionState, error) {
	m.mu.Lock()
	entry, ok := m.states[sessionID]
	if ok && m.now().After(entry.expiresAt) {
		delete(m.states, sessionID)
		ok = false
	}
	m.mu.Unlock()

	state := &models.SessionState{}
	if !ok {
		return state, nil
	}
	if err := json.Unmarshal(entry.data, state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return state, nil
}

func (m *MemoryStore) SaveState(_ context.Context, sessionID string, state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	expiresAt := now.Add(m.ttl)
	m.states[sessionID] = stateEntry{data: data, expiresAt: expiresAt}
	if t, ok := m.topics[sessionID]; ok {
		t.expiresAt = expiresAt
		m.topics[sessionID] = t
	}
	return nil
}

// liveTopics returns the unexpired selection of a session. Callers hold mu.
func (m *MemoryStore) liveTopics(sessionID string, now time.Time) (topicsEntry, bool) {
	t, ok := m.topics[sessionID]
	if ok && now.After(t.expiresAt) {
		delete(m.topics, sessionID)
		return topicsEntry{}, false
	}
	return t, ok
}

func (m *MemoryStore) ToggleTopic(_ context.Context, sessionID, topic string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	t, ok := m.liveTopics(sessionID, now)
	if !ok {
		t = topicsEntry{selection: &models.Selection{}}
	}
	active := t.selection.Toggle(topic)
	t.expiresAt = now.Add(m.ttl)
	m.topics[sessionID] = t
	return active, nil
}

func (m *MemoryStore) Topics(_ context.Context, sessionID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.liveTopics(sessionID, m.now())
	if !ok {
		return []string{}, nil
	}
	return t.selection.Sorted(), nil
}

func (m *MemoryStore) ClearTopics(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.topics, sessionID)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) PutHandoff(_ context.Context, sessionID string, q *dto.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	m.handoffs[sessionID] = handoffEntry{question: *q, expiresAt: now.Add(m.handoffTTL)}
	return nil
}

func (m *MemoryStore) TakeHandoff(_ context.Context, sessionID string) (*dto.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.handoffs[sessionID]
	if !ok {
		return nil, nil
	}
	delete(m.handoffs, sessionID)
	if m.now().After(entry.expiresAt) {
		return nil, nil
	}
	q := entry.question
	return &q, nil
}

// HasHandoff reports whether a handoff is waiting, without consuming it.
func (m *MemoryStore) HasHandoff(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.handoffs[sessionID]
	return ok
}

func claimKey(sessionID, key string) string {
	return sessionID + ":" + key
}

func (m *MemoryStore) ClaimAnswer(_ context.Context, sessionID, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	k := claimKey(sessionID, key)
	if exp, ok := m.claims[k]; ok && !now.After(exp) {
		return false, nil
	}
	m.claims[k] = now.Add(m.ttl)
	return true, nil
}

func (m *MemoryStore) ReleaseAnswer(_ context.Context, sessionID, key string) error {
	m.mu.Lock()
	delete(m.claims, claimKey(sessionID, key))
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Destroy(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.states, sessionID)
	delete(m.topics, sessionID)
	delete(m.handoffs, sessionID)
	m.mu.Unlock()
	return nil
}
