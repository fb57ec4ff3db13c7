package handlers

import (
	"net/http"

	"github.com/Cj170303/PPIA-Pro/internal/middleware"
	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/internal/service"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

// page is the data every template receives.
type page struct {
	Title   string
	Flashes []models.Flash

	Email         string
	Form          service.RegisterForm
	Magistral     []string
	Complementary []string

	View *service.DashboardView
	Quiz models.QuizView
}

// Pages persists the session around every page response.
type Pages struct {
	store service.SessionStore
	log   *logger.Logger
}

func NewPages(store service.SessionStore, log *logger.Logger) *Pages {
	return &Pages{
		store: store,
		log:   log,
	}
}

func (p *Pages) save(c *gin.Context, sess *service.Session) {
	if err := p.store.SaveState(c.Request.Context(), sess.ID, sess.State); err != nil {
		p.log.Error("failed to save session state", "session_id", sess.ID, "error", err)
	}
}

// Render shows a page with the pending flashes and saves the session.
func (p *Pages) Render(c *gin.Context, sess *service.Session, name string, data page) {
	data.Flashes = append(sess.State.TakeFlashes(), data.Flashes...)
	p.save(c, sess)
	c.HTML(http.StatusOK, name, data)
}

// Redirect saves the session and sends the browser to location with a GET.
func (p *Pages) Redirect(c *gin.Context, sess *service.Session, location string) {
	p.save(c, sess)
	c.Redirect(http.StatusSeeOther, location)
}

// Fail turns err into a visible error flash and redirects.
func (p *Pages) Fail(c *gin.Context, sess *service.Session, err error, location string) {
	p.flashError(c, sess, err)
	p.Redirect(c, sess, location)
}

func (p *Pages) flashError(c *gin.Context, sess *service.Session, err error) {
	if !service.IsUserFacing(err) {
		_ = c.Error(err)
	}
	sess.State.AddFlash(models.FlashError, service.UserMessage(err))
}

func errorFlash(err error) []models.Flash {
	return []models.Flash{{Kind: models.FlashError, Message: service.UserMessage(err)}}
}

func current(c *gin.Context) *service.Session {
	return middleware.CurrentSession(c)
}
