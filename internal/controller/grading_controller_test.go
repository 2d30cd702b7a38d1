package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

type fakeQuizStore struct {
	quizzes   map[uint]*model.Quiz
	questions map[uint]*model.Question
	choices   map[uint]*model.Choice
}

func (s *fakeQuizStore) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (s *fakeQuizStore) FindByIDInQuiz(id, quizID uint) (*model.Question, error) {
	q, ok := s.questions[id]
	if !ok || q.QuizID != quizID {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (s *fakeQuizStore) FindByIDInQuestion(id, questionID uint) (*model.Choice, error) {
	c, ok := s.choices[id]
	if !ok || c.QuestionID != questionID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func newSubmitRouter(t *testing.T) *gin.Engine {
	t.Helper()

	quiz := &model.Quiz{Title: "Go Basics"}
	quiz.ID = 1
	q1 := &model.Question{QuizID: 1, Text: "What starts a goroutine?"}
	q1.ID = 1

	st := &fakeQuizStore{
		quizzes:   map[uint]*model.Quiz{1: quiz},
		questions: map[uint]*model.Question{1: q1},
		choices: map[uint]*model.Choice{
			11: {BaseModel: model.BaseModel{ID: 11}, QuestionID: 1, Text: "go", IsCorrect: true},
			12: {BaseModel: model.BaseModel{ID: 12}, QuestionID: 1, Text: "async", IsCorrect: false},
		},
	}

	c := NewGradingController(service.NewGradingService(st, st, st))

	router := gin.New()
	router.POST("/api/quizzes/:id/submit", c.SubmitQuiz)
	return router
}

func TestSubmitQuiz_OK(t *testing.T) {
	router := newSubmitRouter(t)

	body := `{"answers":[{"question_id":1,"choice_id":11}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/1/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200; got %d (%s)", w.Code, w.Body.String())
	}

	var resp util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}

	data, _ := json.Marshal(resp.Data)
	var report service.GradingReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("invalid report json: %v", err)
	}

	if report.Grade != "A" || report.Percentage != 100.0 {
		t.Fatalf("expected A/100.0; got %s/%v", report.Grade, report.Percentage)
	}
	if report.Score != "1/1" {
		t.Fatalf("expected score 1/1; got %q", report.Score)
	}
}

func TestSubmitQuiz_MalformedBody(t *testing.T) {
	router := newSubmitRouter(t)

	cases := []string{
		`{}`,
		`{"answers":[{"question_id":"x","choice_id":1}]}`,
		`not json`,
	}

	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/quizzes/1/submit", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400; got %d", body, w.Code)
		}
	}
}

func TestSubmitQuiz_EmptyAnswerList(t *testing.T) {
	router := newSubmitRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/1/submit", strings.NewReader(`{"answers":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("empty answer list is a valid submission; got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"grade":"F"`) {
		t.Fatalf("expected grade F in body: %s", w.Body.String())
	}
}

func TestSubmitQuiz_QuizNotFound(t *testing.T) {
	router := newSubmitRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/42/submit", strings.NewReader(`{"answers":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404; got %d", w.Code)
	}
}

func TestSubmitQuiz_InvalidQuizID(t *testing.T) {
	router := newSubmitRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/abc/submit", strings.NewReader(`{"answers":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400; got %d", w.Code)
	}
}
