package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRepo(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := cache.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { rc.Close() })
	return NewSessionRepository(rc, time.Hour, time.Minute), mr
}

func TestStateRoundTripAndMissingState(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	state, err := repo.LoadState(ctx, "s1")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(state.Flashes) != 0 || state.Quiz.Question != nil {
		t.Fatalf("expected empty state, got %+v", state)
	}

	state.Credentials.Set("session", "abc")
	state.AddFlash(models.FlashInfo, "Semana guardada: 3")
	state.Quiz.Show(&dto.Question{Tema: "Algebra", Dif: 2, Week: 3, HTML: "<p>Q</p>"})
	if err := repo.SaveState(ctx, "s1", state); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got, err := repo.LoadState(ctx, "s1")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if got.Credentials.Cookies["session"] != "abc" {
		t.Fatalf("credentials lost: %+v", got.Credentials)
	}
	if len(got.Flashes) != 1 || got.Quiz.Question == nil || got.Quiz.Question.Tema != "Algebra" {
		t.Fatalf("state lost: %+v", got)
	}
}

func TestToggleTopicTwiceRestoresSelection(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if on, err := repo.ToggleTopic(ctx, "s1", "Lógica"); err != nil || !on {
		t.Fatalf("first toggle = %v, %v", on, err)
	}
	if on, err := repo.ToggleTopic(ctx, "s1", "Conjuntos"); err != nil || !on {
		t.Fatalf("second topic toggle = %v, %v", on, err)
	}
	topics, _ := repo.Topics(ctx, "s1")
	if len(topics) != 2 || topics[0] != "Conjuntos" || topics[1] != "Lógica" {
		t.Fatalf("topics = %v", topics)
	}

	if on, err := repo.ToggleTopic(ctx, "s1", "Lógica"); err != nil || on {
		t.Fatalf("untoggle = %v, %v", on, err)
	}
	topics, _ = repo.Topics(ctx, "s1")
	if len(topics) != 1 || topics[0] != "Conjuntos" {
		t.Fatalf("topics after untoggle = %v", topics)
	}

	if err := repo.ClearTopics(ctx, "s1"); err != nil {
		t.Fatalf("ClearTopics: %v", err)
	}
	topics, _ = repo.Topics(ctx, "s1")
	if len(topics) != 0 {
		t.Fatalf("topics after clear = %v", topics)
	}
}

func TestHandoffIsConsumedOnce(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	q := &dto.Question{Tema: "Algebra", Dif: 2, Week: 3, HTML: "<p>Q</p>"}
	if err := repo.PutHandoff(ctx, "s1", q); err != nil {
		t.Fatalf("PutHandoff: %v", err)
	}
	if ttl := mr.TTL(handoffKey("s1")); ttl != time.Minute {
		t.Fatalf("handoff ttl = %v", ttl)
	}

	got, err := repo.TakeHandoff(ctx, "s1")
	if err != nil || got == nil || got.HTML != "<p>Q</p>" {
		t.Fatalf("TakeHandoff = %+v, %v", got, err)
	}
	if mr.Exists(handoffKey("s1")) {
		t.Fatal("handoff slot should be empty after take")
	}
	again, err := repo.TakeHandoff(ctx, "s1")
	if err != nil || again != nil {
		t.Fatalf("second TakeHandoff = %+v, %v", again, err)
	}
}

func TestDestroyRemovesEverything(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	repo.SaveState(ctx, "s1", &models.SessionState{})
	repo.ToggleTopic(ctx, "s1", "Lógica")
	repo.PutHandoff(ctx, "s1", &dto.Question{Tema: "x"})

	if err := repo.Destroy(ctx, "s1"); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	for _, k := range []string{stateKey("s1"), topicsKey("s1"), handoffKey("s1")} {
		if mr.Exists(k) {
			t.Fatalf("key %s still exists", k)
		}
	}
}

func TestClaimAnswerIsExclusiveUntilReleased(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	if ok, err := repo.ClaimAnswer(ctx, "s1", "q1"); err != nil || !ok {
		t.Fatalf("first claim = %v, %v", ok, err)
	}
	if ttl := mr.TTL(answeredKey("s1", "q1")); ttl != time.Hour {
		t.Fatalf("claim ttl = %v", ttl)
	}
	if ok, err := repo.ClaimAnswer(ctx, "s1", "q1"); err != nil || ok {
		t.Fatalf("second claim = %v, %v", ok, err)
	}
	if ok, _ := repo.ClaimAnswer(ctx, "s2", "q1"); !ok {
		t.Fatal("claims must be scoped to the session")
	}

	if err := repo.ReleaseAnswer(ctx, "s1", "q1"); err != nil {
		t.Fatalf("ReleaseAnswer: %v", err)
	}
	if ok, _ := repo.ClaimAnswer(ctx, "s1", "q1"); !ok {
		t.Fatal("released question should be claimable again")
	}
}
