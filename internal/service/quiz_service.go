package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"
)

type QuizService struct {
	api   QuizAPI
	store SessionStore
	log   *logger.Logger
}

func NewQuizService(api QuizAPI, store SessionStore, log *logger.Logger) *QuizService {
	return &QuizService{
		api:   api,
		store: store,
		log:   log,
	}
}

// Load prepares the quiz view. A question left by the dashboard is consumed
// and shown without a fetch. A question already on display is kept.
// Otherwise the current question is fetched from the backend.
func (s *QuizService) Load(ctx context.Context, sess *Session) error {
	handoff, err := s.store.TakeHandoff(ctx, sess.ID)
	if err != nil {
		s.log.Warn("failed to read handoff", "session_id", sess.ID, "error", err)
	}
	if handoff != nil {
		sess.State.Quiz.Show(handoff)
		return nil
	}

	view := &sess.State.Quiz
	if view.Question != nil || view.Ended {
		return nil
	}

	q, err := s.api.Question(ctx, sess.Credentials())
	if err != nil {
		return err
	}
	if q.End {
		view.End(q.Message)
		return nil
	}
	view.Show(q)
	return nil
}

// Answer submits the answer for the question on display. Each question
// accepts exactly one submission, also across concurrent requests of the
// same session.
func (s *QuizService) Answer(ctx context.Context, sess *Session, raw string) (*models.AnswerOutcome, error) {
	view := &sess.State.Quiz
	if view.Question == nil {
		return nil, &ValidationError{Message: MsgNoActiveQuestion}
	}
	if view.Answered {
		return nil, &ValidationError{Message: MsgAlreadyAnswered}
	}
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return nil, &ValidationError{Message: MsgEmptyAnswer}
	}

	key := view.AnswerKey()
	claimed, err := s.store.ClaimAnswer(ctx, sess.ID, key)
	if err != nil {
		return nil, fmt.Errorf("failed to claim answer: %w", err)
	}
	if !claimed {
		// Another request for this question got there first.
		view.Answered = true
		return nil, &ValidationError{Message: MsgAlreadyAnswered}
	}

	resp, err := s.api.Answer(ctx, sess.Credentials(), answer)
	if err != nil {
		// The answer was not accepted, so the question stays open for a retry.
		if rerr := s.store.ReleaseAnswer(ctx, sess.ID, key); rerr != nil {
			s.log.Warn("failed to release answer claim", "session_id", sess.ID, "error", rerr)
		}
		return nil, err
	}

	view.Answered = true
	view.Outcome = &models.AnswerOutcome{Correct: resp.Correct, Message: resp.Message}
	return view.Outcome, nil
}

// Continue moves to the next question, or ends the quiz when cont is false.
// Ending always reaches the terminal state, whatever the backend replies.
func (s *QuizService) Continue(ctx context.Context, sess *Session, cont bool) error {
	view := &sess.State.Quiz
	if !cont {
		message := ""
		q, err := s.api.NextQuestion(ctx, sess.Credentials(), false)
		if err != nil {
			s.log.Warn("failed to end quiz", "session_id", sess.ID, "error", err)
		} else {
			message = q.Message
		}
		view.End(message)
		return nil
	}

	if view.Question == nil || !view.Answered {
		return &ValidationError{Message: MsgAnswerFirst}
	}

	q, err := s.api.NextQuestion(ctx, sess.Credentials(), true)
	if err != nil {
		return err
	}
	if q.End {
		view.End(q.Message)
		return nil
	}
	view.Show(q)
	return nil
}
