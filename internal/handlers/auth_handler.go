package handlers

import (
	"net/http"

	"github.com/Cj170303/PPIA-Pro/config"
	"github.com/Cj170303/PPIA-Pro/internal/middleware"
	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth    *service.AuthService
	pages   *Pages
	session config.SessionConfig
}

func NewAuthHandler(auth *service.AuthService, pages *Pages, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		auth:    auth,
		pages:   pages,
		session: session,
	}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.pages.Render(c, current(c), "login.html", page{Title: "Iniciar sesión"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	sess := current(c)
	email := c.PostForm("email")

	if err := h.auth.Login(c.Request.Context(), sess, email, c.PostForm("password")); err != nil {
		if !service.IsUserFacing(err) {
			_ = c.Error(err)
		}
		h.pages.Render(c, sess, "login.html", page{
			Title:   "Iniciar sesión",
			Email:   email,
			Flashes: errorFlash(err),
		})
		return
	}

	h.pages.Redirect(c, sess, "/dashboard")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.renderRegister(c, current(c), service.RegisterForm{}, nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	sess := current(c)
	form := service.RegisterForm{
		FullName:        c.PostForm("full_name"),
		Email:           c.PostForm("email"),
		UniandesCode:    c.PostForm("uniandes_code"),
		Magistral:       c.PostForm("magistral"),
		Complementarios: c.PostForm("complementarios"),
		Password:        c.PostForm("password"),
	}

	if err := h.auth.Register(c.Request.Context(), sess, form); err != nil {
		if !service.IsUserFacing(err) {
			_ = c.Error(err)
		}
		form.Password = ""
		h.renderRegister(c, sess, form, errorFlash(err))
		return
	}

	sess.State.AddFlash(models.FlashInfo, service.MsgRegistered)
	h.pages.Redirect(c, sess, "/")
}

func (h *AuthHandler) renderRegister(c *gin.Context, sess *service.Session, form service.RegisterForm, flashes []models.Flash) {
	roster := h.auth.Roster()
	h.pages.Render(c, sess, "register.html", page{
		Title:         "Registro",
		Flashes:       flashes,
		Form:          form,
		Magistral:     roster.Magistral,
		Complementary: roster.Complementary,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := current(c)
	if err := h.auth.Logout(c.Request.Context(), sess); err != nil {
		_ = c.Error(err)
	}
	middleware.ClearSessionCookie(c, h.session)
	c.Redirect(http.StatusSeeOther, "/")
}
