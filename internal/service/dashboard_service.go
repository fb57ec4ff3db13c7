package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/internal/models"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"
	"github.com/Cj170303/PPIA-Pro/pkg/validator"

	"golang.org/x/sync/errgroup"
)

// Catalog is the topics section of the dashboard. When the catalog could not
// be loaded only Hint is set.
type Catalog struct {
	Hint         string
	Chips        []Chip
	Difficulties []int
}

type DashboardView struct {
	Catalog  Catalog
	Stats    *Stats
	Selected []string
	Mirror   string
}

type DashboardService struct {
	api   QuizAPI
	store SessionStore
	log   *logger.Logger
}

func NewDashboardService(api QuizAPI, store SessionStore, log *logger.Logger) *DashboardService {
	return &DashboardService{
		api:   api,
		store: store,
		log:   log,
	}
}

// Load checks the backend identity first and returns ErrNotLoggedIn without
// any further call when there is none. The catalog and the statistics are
// then loaded concurrently; a failure of one does not affect the other.
func (s *DashboardService) Load(ctx context.Context, sess *Session) (*DashboardView, error) {
	me, err := s.api.Me(ctx, sess.Credentials())
	if err != nil {
		return nil, err
	}
	if !me.Logged {
		return nil, ErrNotLoggedIn
	}

	selected, err := s.store.Topics(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	base := sess.State.Credentials.Clone()
	catalogCreds := base.Clone()
	historyCreds := base.Clone()

	view := &DashboardView{
		Selected: selected,
		Mirror:   models.NewSelection(selected...).Mirror(),
	}

	var g errgroup.Group
	g.Go(func() error {
		view.Catalog = s.loadCatalog(ctx, sess.ID, &catalogCreds, selected)
		return nil
	})
	g.Go(func() error {
		st, err := s.loadStats(ctx, &historyCreds)
		if err != nil {
			s.log.Warn("failed to load history", "session_id", sess.ID, "error", err)
			return nil
		}
		view.Stats = st
		return nil
	})
	_ = g.Wait()

	sess.State.Credentials.Absorb(base, catalogCreds, historyCreds)
	return view, nil
}

func (s *DashboardService) loadCatalog(ctx context.Context, sessionID string, creds *models.Credentials, selected []string) Catalog {
	resp, err := s.api.ThemesDifs(ctx, creds)
	if err != nil {
		s.log.Warn("failed to load catalog", "session_id", sessionID, "error", err)
		return Catalog{Hint: UserMessage(err)}
	}
	return Catalog{
		Hint:         MsgTopicsHint,
		Chips:        Chips(resp.Temas, selected),
		Difficulties: append([]int(nil), resp.Difs...),
	}
}

func (s *DashboardService) loadStats(ctx context.Context, creds *models.Credentials) (*Stats, error) {
	resp, err := s.api.History(ctx, creds)
	if err != nil {
		return nil, err
	}
	st := ComputeStats(resp.Items)
	return &st, nil
}

// Stats loads the history of the logged user and aggregates it.
func (s *DashboardService) Stats(ctx context.Context, sess *Session) (*Stats, error) {
	return s.loadStats(ctx, sess.Credentials())
}

// SaveWeek stores the user's current course week and returns the week the
// backend confirmed. The topic selection is emptied on success.
func (s *DashboardService) SaveWeek(ctx context.Context, sess *Session, raw string) (int, error) {
	week, err := validator.ParsePositiveInt(raw)
	if err != nil {
		return 0, &ValidationError{Message: MsgInvalidWeek}
	}

	resp, err := s.api.SetWeek(ctx, sess.Credentials(), week)
	if err != nil {
		return 0, err
	}
	if !resp.OK {
		return 0, &RejectedError{Message: MsgWeekFailed}
	}
	if resp.Week > 0 {
		week = resp.Week
	}

	if err := s.store.ClearTopics(ctx, sess.ID); err != nil {
		return 0, fmt.Errorf("failed to clear topics: %w", err)
	}
	return week, nil
}

// ToggleTopic flips one chip and returns the selection afterwards.
func (s *DashboardService) ToggleTopic(ctx context.Context, sess *Session, topic string) (*dto.SelectionResponse, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, &ValidationError{Message: MsgEmptyTopic}
	}

	active, err := s.store.ToggleTopic(ctx, sess.ID, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle topic: %w", err)
	}
	selected, err := s.store.Topics(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	return &dto.SelectionResponse{
		Selected: selected,
		Mirror:   models.NewSelection(selected...).Mirror(),
		Topic:    topic,
		Active:   active,
	}, nil
}

// StartQuiz starts a quiz over the selected topics and leaves the first
// question in the handoff slot for the quiz page.
func (s *DashboardService) StartQuiz(ctx context.Context, sess *Session, rawDifficulty string) error {
	selected, err := s.store.Topics(ctx, sess.ID)
	if err != nil {
		return fmt.Errorf("failed to load topics: %w", err)
	}
	if len(selected) == 0 {
		return &ValidationError{Message: MsgNoTopic}
	}
	difficulty, err := validator.ParseInt(rawDifficulty)
	if err != nil {
		return &ValidationError{Message: MsgInvalidDifficulty}
	}

	theme := models.NewSelection(selected...).Mirror()
	q, err := s.api.StartQuiz(ctx, sess.Credentials(), theme, difficulty)
	if err != nil {
		return err
	}

	if err := s.store.PutHandoff(ctx, sess.ID, q); err != nil {
		return fmt.Errorf("failed to store handoff: %w", err)
	}
	if err := s.store.ClearTopics(ctx, sess.ID); err != nil {
		s.log.Warn("failed to clear topics", "session_id", sess.ID, "error", err)
	}
	sess.State.Quiz.Reset()

	s.log.Info("quiz started", "session_id", sess.ID, "theme", theme, "difficulty", difficulty)
	return nil
}
