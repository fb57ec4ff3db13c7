package dto

import (
	"bytes"
	"encoding/json"
)

type SetWeekRequest struct {
	Week int `json:"week"`
}

type SetWeekResponse struct {
	OK    bool   `json:"ok"`
	Week  int    `json:"week,omitempty"`
	Error string `json:"error,omitempty"`
}

type ThemesDifsResponse struct {
	Temas []string `json:"temas"`
	Difs  []int    `json:"difs"`
	Error string   `json:"error,omitempty"`
}

type StartQuizRequest struct {
	Theme      string `json:"theme"`
	Difficulty int    `json:"difficulty"`
}

// QuestionID is an opaque question identifier kept as its compact JSON text,
// so 7 and "7" stay distinct.
type QuestionID string

func (id *QuestionID) UnmarshalJSON(b []byte) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return err
	}
	*id = QuestionID(buf.String())
	return nil
}

func (id QuestionID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}

// Question is returned by start_quiz, question and next_question. When
// next_question ends the session only End and Message are set.
type Question struct {
	QuestionID QuestionID `json:"question_id,omitempty"`
	Tema       string     `json:"tema"`
	Dif        int        `json:"dif"`
	Week       int        `json:"week"`
	HTML       string     `json:"html"`
	End        bool       `json:"end,omitempty"`
	Message    string     `json:"message,omitempty"`
	Error      string     `json:"error,omitempty"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	Correct bool   `json:"correct"`
	Message string `json:"message,omitempty"`
}

type NextQuestionRequest struct {
	Continue bool `json:"continue"`
}

type HistoryItem struct {
	QuestionID QuestionID `json:"question_id"`
	Success    bool       `json:"success"`
	Timestamp  string     `json:"ts,omitempty"`
}

type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
	Error string        `json:"error,omitempty"`
}
