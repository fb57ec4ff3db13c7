package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/internal/models"
)

func TestMemoryStoreHandoffExpires(t *testing.T) {
	m := NewMemoryStore(time.Hour, time.Minute)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	m.PutHandoff(ctx, "s1", &dto.Question{Tema: "Algebra"})
	now = now.Add(2 * time.Minute)

	q, err := m.TakeHandoff(ctx, "s1")
	if err != nil || q != nil {
		t.Fatalf("expired handoff should be dropped, got %+v, %v", q, err)
	}
	if m.HasHandoff("s1") {
		t.Fatal("expired handoff should be removed")
	}
}

func TestMemoryStoreHandoffIsConsumedOnce(t *testing.T) {
	m := NewMemoryStore(time.Hour, time.Minute)
	ctx := context.Background()

	m.PutHandoff(ctx, "s1", &dto.Question{Tema: "Algebra", HTML: "<p>Q</p>"})
	q, _ := m.TakeHandoff(ctx, "s1")
	if q == nil || q.HTML != "<p>Q</p>" {
		t.Fatalf("TakeHandoff = %+v", q)
	}
	if q, _ := m.TakeHandoff(ctx, "s1"); q != nil {
		t.Fatalf("second take should be empty, got %+v", q)
	}
}

func TestMemoryStoreTopics(t *testing.T) {
	m := NewMemoryStore(time.Hour, time.Minute)
	ctx := context.Background()

	m.ToggleTopic(ctx, "s1", "Lógica")
	m.ToggleTopic(ctx, "s1", "Conjuntos")
	m.ToggleTopic(ctx, "s2", "Funciones")

	got, _ := m.Topics(ctx, "s1")
	if len(got) != 2 || got[0] != "Conjuntos" {
		t.Fatalf("topics = %v", got)
	}
	m.ClearTopics(ctx, "s1")
	if got, _ := m.Topics(ctx, "s1"); len(got) != 0 {
		t.Fatalf("topics after clear = %v", got)
	}
	if got, _ := m.Topics(ctx, "s2"); len(got) != 1 {
		t.Fatalf("other session affected: %v", got)
	}
}

func TestMemoryStoreEvictsExpiredSessions(t *testing.T) {
	m := NewMemoryStore(time.Hour, time.Minute)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("s%d", i)
		m.SaveState(ctx, id, &models.SessionState{})
		m.ToggleTopic(ctx, id, "Lógica")
		m.ClaimAnswer(ctx, id, "q1")
	}

	now = now.Add(30 * 24 * time.Hour)
	m.SaveState(ctx, "fresh", &models.SessionState{})

	if len(m.states) != 1 || len(m.topics) != 0 || len(m.claims) != 0 {
		t.Fatalf("states %d, topics %d, claims %d after expiry", len(m.states), len(m.topics), len(m.claims))
	}
}

func TestMemoryStoreExpiredStateReadsEmpty(t *testing.T) {
	m := NewMemoryStore(time.Hour, time.Minute)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	state := &models.SessionState{}
	state.AddFlash(models.FlashInfo, "hola")
	m.SaveState(ctx, "s1", state)
	m.ToggleTopic(ctx, "s1", "Lógica")

	now = now.Add(30 * time.Minute)
	m.SaveState(ctx, "s1", state)
	now = now.Add(45 * time.Minute)
	if got, _ := m.Topics(ctx, "s1"); len(got) != 1 {
		t.Fatalf("saving state should keep topics alive, got %v", got)
	}

	now = now.Add(2 * time.Hour)
	got, err := m.LoadState(ctx, "s1")
	if err != nil || len(got.Flashes) != 0 {
		t.Fatalf("expired state = %+v, %v", got, err)
	}
	if topics, _ := m.Topics(ctx, "s1"); len(topics) != 0 {
		t.Fatalf("expired topics = %v", topics)
	}
}

func TestMemoryStoreClaimAnswerConcurrent(t *testing.T) {
	m := NewMemoryStore(time.Hour, time.Minute)
	ctx := context.Background()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := m.ClaimAnswer(ctx, "s1", "q1"); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("claims won = %d", wins.Load())
	}
	m.ReleaseAnswer(ctx, "s1", "q1")
	if ok, _ := m.ClaimAnswer(ctx, "s1", "q1"); !ok {
		t.Fatal("released question should be claimable again")
	}
}
