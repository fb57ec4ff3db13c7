package handlers

import (
	"errors"
	"fmt"

	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
	pages     *Pages
}

func NewDashboardHandler(dashboard *service.DashboardService, pages *Pages) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		pages:     pages,
	}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	sess := current(c)

	view, err := h.dashboard.Load(c.Request.Context(), sess)
	if errors.Is(err, service.ErrNotLoggedIn) {
		h.pages.Redirect(c, sess, "/")
		return
	}
	if err != nil {
		h.pages.Fail(c, sess, err, "/")
		return
	}

	h.pages.Render(c, sess, "dashboard.html", page{Title: "Panel", View: view})
}

func (h *DashboardHandler) SaveWeek(c *gin.Context) {
	sess := current(c)

	week, err := h.dashboard.SaveWeek(c.Request.Context(), sess, c.PostForm("week"))
	if err != nil {
		h.pages.Fail(c, sess, err, "/dashboard")
		return
	}

	sess.State.AddFlash(models.FlashInfo, fmt.Sprintf(service.MsgWeekSaved, week))
	h.pages.Redirect(c, sess, "/dashboard")
}

func (h *DashboardHandler) ToggleTopic(c *gin.Context) {
	sess := current(c)

	if _, err := h.dashboard.ToggleTopic(c.Request.Context(), sess, c.PostForm("topic")); err != nil {
		h.pages.Fail(c, sess, err, "/dashboard")
		return
	}
	h.pages.Redirect(c, sess, "/dashboard")
}

func (h *DashboardHandler) StartQuiz(c *gin.Context) {
	sess := current(c)

	if err := h.dashboard.StartQuiz(c.Request.Context(), sess, c.PostForm("difficulty")); err != nil {
		h.pages.Fail(c, sess, err, "/dashboard")
		return
	}
	h.pages.Redirect(c, sess, "/quiz")
}
