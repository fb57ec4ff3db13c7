package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Cj170303/PPIA-Pro/config"
	"github.com/Cj170303/PPIA-Pro/internal/dto"
	"github.com/Cj170303/PPIA-Pro/internal/models"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxBodyBytes = 4 << 20

// QuizAPIClient talks to the quiz backend over HTTP/JSON. Every call is
// credentialed with the cookies of the calling frontend session.
type QuizAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewQuizAPIClient(cfg config.BackendConfig) *QuizAPIClient {
	return NewQuizAPIClientWithHTTP(cfg.BaseURL, &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewQuizAPIClientWithHTTP(baseURL string, httpClient *http.Client) *QuizAPIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &QuizAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *QuizAPIClient) Close() {
	c.httpClient.CloseIdleConnections()
}

// GetJSON issues a credentialed GET and decodes the JSON reply into out.
func (c *QuizAPIClient) GetJSON(ctx context.Context, creds *models.Credentials, path string, out any) error {
	return c.do(ctx, creds, http.MethodGet, path, nil, out)
}

// PostJSON issues a credentialed POST with body encoded as JSON; a nil body
// is sent as {}.
func (c *QuizAPIClient) PostJSON(ctx context.Context, creds *models.Credentials, path string, body, out any) error {
	if body == nil {
		body = struct{}{}
	}
	return c.do(ctx, creds, http.MethodPost, path, body, out)
}

func (c *QuizAPIClient) do(ctx context.Context, creds *models.Credentials, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Method: method, Path: path, Err: fmt.Errorf("failed to encode body: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds != nil {
		for name, value := range creds.Cookies {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if creds != nil {
		updateCredentials(creds, resp.Cookies())
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return &TransportError{
			Method: method,
			Path:   path,
			Err:    fmt.Errorf("status %d: response is not a JSON object: %w", resp.StatusCode, err),
		}
	}
	if msg := errorMessage(envelope.Error); msg != "" {
		return &ServerError{Path: path, Status: resp.StatusCode, Message: msg}
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return &ServerError{Path: path, Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &TransportError{Method: method, Path: path, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}
	return nil
}

func errorMessage(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func updateCredentials(creds *models.Credentials, cookies []*http.Cookie) {
	for _, ck := range cookies {
		if ck.MaxAge < 0 || ck.Value == "" || (!ck.Expires.IsZero() && ck.Expires.Before(time.Now())) {
			creds.Delete(ck.Name)
			continue
		}
		creds.Set(ck.Name, ck.Value)
	}
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func (c *QuizAPIClient) Me(ctx context.Context, creds *models.Credentials) (*dto.MeResponse, error) {
	var resp dto.MeResponse
	if err := c.GetJSON(ctx, creds, "/api/me", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *QuizAPIClient) Logout(ctx context.Context, creds *models.Credentials) error {
	return c.PostJSON(ctx, creds, "/api/logout", nil, nil)
}

func (c *QuizAPIClient) Login(ctx context.Context, creds *models.Credentials, req dto.LoginRequest) (*dto.OKResponse, error) {
	var resp dto.OKResponse
	if err := c.PostJSON(ctx, creds, "/api/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *QuizAPIClient) Register(ctx context.Context, creds *models.Credentials, req dto.RegisterRequest) (*dto.OKResponse, error) {
	var resp dto.OKResponse
	if err := c.PostJSON(ctx, creds, "/api/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *QuizAPIClient) SetWeek(ctx context.Context, creds *models.Credentials, week int) (*dto.SetWeekResponse, error) {
	var resp dto.SetWeekResponse
	if err := c.PostJSON(ctx, creds, "/api/set_week", dto.SetWeekRequest{Week: week}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *QuizAPIClient) ThemesDifs(ctx context.Context, creds *models.Credentials) (*dto.ThemesDifsResponse, error) {
	var resp dto.ThemesDifsResponse
	if err := c.GetJSON(ctx, creds, "/api/themes_difs", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *QuizAPIClient) StartQuiz(ctx context.Context, creds *models.Credentials, theme string, difficulty int) (*dto.Question, error) {
	var resp dto.Question
	req := dto.StartQuizRequest{Theme: theme, Difficulty: difficulty}
	if err := c.PostJSON(ctx, creds, "/api/start_quiz", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *QuizAPIClient) Question(ctx context.Context, creds *models.Credentials) (*dto.Question, error) {
	var resp dto.Question
	if err := c.GetJSON(ctx, creds, "/api/question", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *QuizAPIClient) Answer(ctx context.Context, creds *models.Credentials, answer string) (*dto.AnswerResponse, error) {
	var resp dto.AnswerResponse
	if err := c.PostJSON(ctx, creds, "/api/answer", dto.AnswerRequest{Answer: answer}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *QuizAPIClient) NextQuestion(ctx context.Context, creds *models.Credentials, cont bool) (*dto.Question, error) {
	var resp dto.Question
	if err := c.PostJSON(ctx, creds, "/api/next_question", dto.NextQuestionRequest{Continue: cont}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *QuizAPIClient) History(ctx context.Context, creds *models.Credentials) (*dto.HistoryResponse, error) {
	var resp dto.HistoryResponse
	if err := c.GetJSON(ctx, creds, "/api/history", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
