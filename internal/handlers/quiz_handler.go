package handlers

import (
	"strings"

	"github.com/Cj170303/PPIA-Pro/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quiz  *service.QuizService
	pages *Pages
}

func NewQuizHandler(quiz *service.QuizService, pages *Pages) *QuizHandler {
	return &QuizHandler{
		quiz:  quiz,
		pages: pages,
	}
}

func (h *QuizHandler) Show(c *gin.Context) {
	sess := current(c)

	if err := h.quiz.Load(c.Request.Context(), sess); err != nil {
		h.pages.Fail(c, sess, err, "/dashboard")
		return
	}

	view := sess.State.Quiz
	if view.Ended {
		// The overlay is shown once; the next visit starts over.
		sess.State.Quiz.Reset()
	}
	h.pages.Render(c, sess, "quiz.html", page{Title: "Quiz", Quiz: view})
}

func (h *QuizHandler) Answer(c *gin.Context) {
	sess := current(c)

	if _, err := h.quiz.Answer(c.Request.Context(), sess, c.PostForm("answer")); err != nil {
		h.pages.Fail(c, sess, err, "/quiz")
		return
	}
	h.pages.Redirect(c, sess, "/quiz")
}

func (h *QuizHandler) Continue(c *gin.Context) {
	sess := current(c)

	var cont bool
	switch strings.ToLower(strings.TrimSpace(c.PostForm("continue"))) {
	case "yes", "true":
		cont = true
	case "no", "false":
		cont = false
	default:
		h.pages.Fail(c, sess, &service.ValidationError{Message: service.MsgAnswerFirst}, "/quiz")
		return
	}

	if err := h.quiz.Continue(c.Request.Context(), sess, cont); err != nil {
		h.pages.Fail(c, sess, err, "/quiz")
		return
	}
	h.pages.Redirect(c, sess, "/quiz")
}
