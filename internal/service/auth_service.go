package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cj170303/PPIA-Pro/config"
	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"
	"github.com/Cj170303/PPIA-Pro/pkg/validator"
)

type RegisterForm struct {
	FullName        string
	Email           string
	UniandesCode    string
	Magistral       string
	Complementarios string
	Password        string
}

type AuthService struct {
	api    QuizAPI
	store  SessionStore
	roster config.RosterConfig
	log    *logger.Logger
}

func NewAuthService(api QuizAPI, store SessionStore, roster config.RosterConfig, log *logger.Logger) *AuthService {
	return &AuthService{
		api:    api,
		store:  store,
		roster: roster,
		log:    log,
	}
}

func (s *AuthService) Roster() config.RosterConfig {
	return s.roster
}

func (s *AuthService) Login(ctx context.Context, sess *Session, email, password string) error {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if validator.AnyBlank(email, password) {
		return &ValidationError{Message: MsgLoginMissing}
	}

	resp, err := s.api.Login(ctx, sess.Credentials(), dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	if !resp.OK {
		return &RejectedError{Message: MsgLoginFailed}
	}

	if err := s.store.ClearTopics(ctx, sess.ID); err != nil {
		return fmt.Errorf("failed to clear topics: %w", err)
	}
	sess.State.Quiz.Reset()
	s.log.Info("user logged in", "session_id", sess.ID)
	return nil
}

func (s *AuthService) Register(ctx context.Context, sess *Session, form RegisterForm) error {
	req := dto.RegisterRequest{
		FullName:        strings.TrimSpace(form.FullName),
		Email:           strings.TrimSpace(form.Email),
		UniandesCode:    strings.TrimSpace(form.UniandesCode),
		Magistral:       form.Magistral,
		Complementarios: form.Complementarios,
		Password:        strings.TrimSpace(form.Password),
	}
	if validator.AnyBlank(req.FullName, req.Email, req.UniandesCode, req.Password) {
		return &ValidationError{Message: MsgRegisterMissing}
	}

	resp, err := s.api.Register(ctx, sess.Credentials(), req)
	if err != nil {
		return err
	}
	if !resp.OK {
		return &RejectedError{Message: MsgRegisterFailed}
	}

	s.log.Info("user registered", "session_id", sess.ID)
	return nil
}

// Logout ends the backend session and forgets everything held for this
// browser. A failing backend call does not keep the user logged in here.
func (s *AuthService) Logout(ctx context.Context, sess *Session) error {
	if err := s.api.Logout(ctx, sess.Credentials()); err != nil {
		s.log.Warn("backend logout failed", "session_id", sess.ID, "error", err)
	}
	if err := s.store.Destroy(ctx, sess.ID); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	sess.State.Credentials.Cookies = nil
	sess.State.Quiz.Reset()
	return nil
}
