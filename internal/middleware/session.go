package middleware

import (
	"net/http"
	"time"

	"github.com/Cj170303/PPIA-Pro/config"
	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/internal/service"
	"github.com/Cj170303/PPIA-Pro/pkg/jwt"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionKey   = "session"
	sessionIDKey = "session_id"
)

// Session attaches the frontend session of the calling browser. A missing,
// expired or forged cookie starts a new session with a fresh id.
func Session(store service.SessionStore, cfg config.SessionConfig, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, refresh := sessionFromCookie(c, cfg)
		if id == "" {
			id = uuid.NewString()
			refresh = true
		}
		if refresh {
			if err := SetSessionCookie(c, cfg, id); err != nil {
				log.Error("failed to issue session cookie", "error", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}

		state, err := store.LoadState(c.Request.Context(), id)
		if err != nil {
			log.Warn("failed to load session state, starting empty", "session_id", id, "error", err)
			state = &models.SessionState{}
		}

		c.Set(sessionIDKey, id)
		c.Set(sessionKey, &service.Session{ID: id, State: state})
		c.Next()
	}
}

// sessionFromCookie returns the session id carried by a valid cookie and
// whether the cookie is past half its lifetime and should be reissued.
func sessionFromCookie(c *gin.Context, cfg config.SessionConfig) (string, bool) {
	raw, err := c.Cookie(cfg.CookieName)
	if err != nil || raw == "" {
		return "", false
	}
	claims, err := jwt.ValidateSessionToken(raw, cfg.Secret)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return "", false
	}
	refresh := claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < cfg.TTL/2
	return claims.SessionID, refresh
}

func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, sessionID string) error {
	token, err := jwt.GenerateSessionToken(sessionID, cfg.Secret, cfg.TTL)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, token, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
	return nil
}

func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
}

// CurrentSession returns the session attached by Session, or nil.
func CurrentSession(c *gin.Context) *service.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*service.Session)
	return sess
}
