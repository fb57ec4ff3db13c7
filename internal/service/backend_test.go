package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Cj170303/PPIA-Pro/internal/client"
	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/internal/repository"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"
)

// fakeBackend answers backend paths with canned JSON and records every call.
type fakeBackend struct {
	mu      sync.Mutex
	replies map[string]string
	calls   []string
	bodies  map[string][]map[string]any
}

func newFakeBackend(t *testing.T, replies map[string]string) (*fakeBackend, *client.QuizAPIClient) {
	t.Helper()
	fb := &fakeBackend{replies: replies, bodies: make(map[string][]map[string]any)}
	srv := httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(srv.Close)
	return fb, client.NewQuizAPIClientWithHTTP(srv.URL, srv.Client())
}

func (f *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, r.URL.Path)
	if r.Method == http.MethodPost {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(data, &body)
		f.bodies[r.URL.Path] = append(f.bodies[r.URL.Path], body)
	}

	reply, ok := f.replies[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"not found"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, reply)
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) Count(path string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == path {
			n++
		}
	}
	return n
}

func (f *fakeBackend) LastBody(path string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	bodies := f.bodies[path]
	if len(bodies) == 0 {
		return nil
	}
	return bodies[len(bodies)-1]
}

func newSession() *Session {
	return &Session{ID: "sess-1", State: &models.SessionState{}}
}

func newStore() *repository.MemoryStore {
	return repository.NewMemoryStore(time.Hour, time.Minute)
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}
