package handlers

import (
	"errors"
	"net/http"

	"github.com/Cj170303/PPIA-Pro/internal/client"
	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/internal/service"

	"github.com/gin-gonic/gin"
)

// AppHandler serves the JSON endpoints used by the dashboard page.
type AppHandler struct {
	dashboard *service.DashboardService
	pages     *Pages
}

func NewAppHandler(dashboard *service.DashboardService, pages *Pages) *AppHandler {
	return &AppHandler{
		dashboard: dashboard,
		pages:     pages,
	}
}

// ToggleTopic godoc
// @Summary Toggle a topic chip
// @Description Adds the topic to the selection if absent, removes it otherwise, and returns the resulting selection
// @Tags app
// @Accept json
// @Produce json
// @Param request body dto.ToggleTopicRequest true "Topic to toggle"
// @Success 200 {object} dto.SelectionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /app/topics/toggle [post]
func (h *AppHandler) ToggleTopic(c *gin.Context) {
	var req dto.ToggleTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.JsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.dashboard.ToggleTopic(c.Request.Context(), current(c), req.Topic)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			dto.JsonError(c, http.StatusBadRequest, ve.Message)
			return
		}
		_ = c.Error(err)
		dto.JsonError(c, http.StatusInternalServerError, "Failed to toggle topic")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary Practice statistics
// @Description Aggregates the answer history of the logged user
// @Tags app
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /app/stats [get]
func (h *AppHandler) Stats(c *gin.Context) {
	sess := current(c)

	st, err := h.dashboard.Stats(c.Request.Context(), sess)
	h.pages.save(c, sess)
	if err != nil {
		var se *client.ServerError
		var te *client.TransportError
		if errors.As(err, &se) || errors.As(err, &te) {
			dto.JsonError(c, http.StatusBadGateway, service.UserMessage(err))
			return
		}
		_ = c.Error(err)
		dto.JsonError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, st.DTO())
}
