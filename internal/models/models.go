package models

import (
	"github.com/Cj170303/PPIA-Pro/internal/dto"

	"github.com/google/uuid"
)

const (
	FlashError = "error"
	FlashInfo  = "info"
)

// Credentials are the backend cookies owned by one frontend session. They are
// replayed on every backend call and refreshed from every Set-Cookie.
type Credentials struct {
	Cookies map[string]string `json:"cookies,omitempty"`
}

func (c *Credentials) Set(name, value string) {
	if c.Cookies == nil {
		c.Cookies = make(map[string]string)
	}
	c.Cookies[name] = value
}

func (c *Credentials) Delete(name string) {
	delete(c.Cookies, name)
}

func (c Credentials) Clone() Credentials {
	out := Credentials{}
	for k, v := range c.Cookies {
		out.Set(k, v)
	}
	return out
}

// Absorb applies the cookie changes that each copy picked up relative to base.
// Used after concurrent calls that each worked on their own copy.
func (c *Credentials) Absorb(base Credentials, copies ...Credentials) {
	for _, cp := range copies {
		for k, v := range cp.Cookies {
			if old, ok := base.Cookies[k]; !ok || old != v {
				c.Set(k, v)
			}
		}
		for k := range base.Cookies {
			if _, ok := cp.Cookies[k]; !ok {
				c.Delete(k)
			}
		}
	}
}

type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type AnswerOutcome struct {
	Correct bool   `json:"correct"`
	Message string `json:"message,omitempty"`
}

// QuizView is the quiz page state that must survive a post/redirect/get.
// Question is replaced wholesale on every transition, never merged.
// Token names one display of a question; answers are claimed against it.
type QuizView struct {
	Question   *dto.Question  `json:"question,omitempty"`
	Token      string         `json:"token,omitempty"`
	Answered   bool           `json:"answered"`
	Outcome    *AnswerOutcome `json:"outcome,omitempty"`
	Ended      bool           `json:"ended"`
	EndMessage string         `json:"end_message,omitempty"`
}

// Show makes q the current question and re-enables answering.
func (v *QuizView) Show(q *dto.Question) {
	*v = QuizView{Question: q, Token: uuid.NewString()}
}

// AnswerKey identifies the question on display for the one-answer claim.
func (v *QuizView) AnswerKey() string {
	if v.Token != "" {
		return v.Token
	}
	if v.Question != nil {
		return string(v.Question.QuestionID)
	}
	return ""
}

// End switches the view to the terminal overlay.
func (v *QuizView) End(message string) {
	*v = QuizView{Ended: true, EndMessage: message}
}

func (v *QuizView) Reset() {
	*v = QuizView{}
}

type SessionState struct {
	Credentials Credentials `json:"credentials"`
	Flashes     []Flash     `json:"flashes,omitempty"`
	Quiz        QuizView    `json:"quiz"`
}

func (s *SessionState) AddFlash(kind, message string) {
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Message: message})
}

// TakeFlashes returns pending flashes and forgets them.
func (s *SessionState) TakeFlashes() []Flash {
	out := s.Flashes
	s.Flashes = nil
	return out
}
