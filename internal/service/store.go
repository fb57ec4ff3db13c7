package service

import (
	"context"

	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/internal/models"
)

// SessionStore keeps the per-browser state between requests.
type SessionStore interface {
	LoadState(ctx context.Context, sessionID string) (*models.SessionState, error)
	SaveState(ctx context.Context, sessionID string, state *models.SessionState) error
	ToggleTopic(ctx context.Context, sessionID, topic string) (bool, error)
	Topics(ctx context.Context, sessionID string) ([]string, error)
	ClearTopics(ctx context.Context, sessionID string) error
	PutHandoff(ctx context.Context, sessionID string, q *dto.Question) error
	TakeHandoff(ctx context.Context, sessionID string) (*dto.Question, error)
	// ClaimAnswer reserves the single answer of one displayed question. Only
	// the first caller for a given key gets true.
	ClaimAnswer(ctx context.Context, sessionID, key string) (bool, error)
	ReleaseAnswer(ctx context.Context, sessionID, key string) error
	Destroy(ctx context.Context, sessionID string) error
}

// QuizAPI is the quiz backend as seen by the page controllers.
type QuizAPI interface {
	Me(ctx context.Context, creds *models.Credentials) (*dto.MeResponse, error)
	Logout(ctx context.Context, creds *models.Credentials) error
	Login(ctx context.Context, creds *models.Credentials, req dto.LoginRequest) (*dto.OKResponse, error)
	Register(ctx context.Context, creds *models.Credentials, req dto.RegisterRequest) (*dto.OKResponse, error)
	SetWeek(ctx context.Context, creds *models.Credentials, week int) (*dto.SetWeekResponse, error)
	ThemesDifs(ctx context.Context, creds *models.Credentials) (*dto.ThemesDifsResponse, error)
	StartQuiz(ctx context.Context, creds *models.Credentials, theme string, difficulty int) (*dto.Question, error)
	Question(ctx context.Context, creds *models.Credentials) (*dto.Question, error)
	Answer(ctx context.Context, creds *models.Credentials, answer string) (*dto.AnswerResponse, error)
	NextQuestion(ctx context.Context, creds *models.Credentials, cont bool) (*dto.Question, error)
	History(ctx context.Context, creds *models.Credentials) (*dto.HistoryResponse, error)
}

// Session is one browser's frontend session for the duration of a request.
type Session struct {
	ID    string
	State *models.SessionState
}

func (s *Session) Credentials() *models.Credentials {
	return &s.State.Credentials
}
