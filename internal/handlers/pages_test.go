package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/internal/repository"
	"github.com/Cj170303/PPIA-Pro/internal/service"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

func TestRenderShowsPendingFlashesFirstAndConsumesThem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore(time.Hour, time.Minute)
	pages := NewPages(store, logger.Nop())

	sess := &service.Session{ID: "s1", State: &models.SessionState{}}
	sess.State.AddFlash(models.FlashInfo, "Semana guardada: 4")
	sess.State.AddFlash(models.FlashError, "Tema vacío")

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("flashes").Parse(`{{range .Flashes}}[{{.Kind}}:{{.Message}}]{{end}}`)))
	r.GET("/", func(c *gin.Context) {
		pages.Render(c, sess, "flashes", page{Flashes: errorFlash(&service.ValidationError{Message: "Semana inválida"})})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	want := "[info:Semana guardada: 4][error:Tema vacío][error:Semana inválida]"
	if rec.Code != http.StatusOK || rec.Body.String() != want {
		t.Fatalf("render = %d %q", rec.Code, rec.Body.String())
	}

	saved, err := store.LoadState(context.Background(), "s1")
	if err != nil || len(saved.Flashes) != 0 {
		t.Fatalf("flashes should be consumed, got %+v, %v", saved, err)
	}
}

func TestFailKeepsFlashForNextPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore(time.Hour, time.Minute)
	pages := NewPages(store, logger.Nop())
	sess := &service.Session{ID: "s1", State: &models.SessionState{}}

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		pages.Fail(c, sess, errors.New("boom"), "/dashboard")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("response = %d %s", rec.Code, rec.Header().Get("Location"))
	}
	saved, _ := store.LoadState(context.Background(), "s1")
	if len(saved.Flashes) != 1 || saved.Flashes[0].Message != service.MsgUnexpected {
		t.Fatalf("flashes = %+v", saved.Flashes)
	}
}
