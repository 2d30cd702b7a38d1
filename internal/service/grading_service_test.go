package service

import (
	"quizhub_backend/internal/model"
	"quizhub_backend/pkg/logger"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	logger.Log = zap.NewNop()
}

/* ---------------- In-memory fakes that satisfy QuizSource, QuestionSource, ChoiceSource ---------------- */

type fakeStore struct {
	quizzes   map[uint]*model.Quiz
	questions map[uint]*model.Question
	choices   map[uint]*model.Choice
}

func (s *fakeStore) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (s *fakeStore) FindByIDInQuiz(id, quizID uint) (*model.Question, error) {
	q, ok := s.questions[id]
	if !ok || q.QuizID != quizID {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (s *fakeStore) FindByIDInQuestion(id, questionID uint) (*model.Choice, error) {
	c, ok := s.choices[id]
	if !ok || c.QuestionID != questionID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

// seedTwoQuestionQuiz 返回一个两题测验：每题一个正确选项、一个错误选项。
// 题目1：选项 11 正确 / 12 错误；题目2：选项 21 正确 / 22 错误。
func seedTwoQuestionQuiz(t *testing.T) *fakeStore {
	t.Helper()
	st := &fakeStore{
		quizzes:   map[uint]*model.Quiz{},
		questions: map[uint]*model.Question{},
		choices:   map[uint]*model.Choice{},
	}

	quiz := &model.Quiz{Title: "Go Basics"}
	quiz.ID = 1
	st.quizzes[1] = quiz

	q1 := &model.Question{QuizID: 1, Text: "What starts a goroutine?"}
	q1.ID = 1
	q2 := &model.Question{QuizID: 1, Text: "Are slices backed by arrays?"}
	q2.ID = 2
	st.questions[1] = q1
	st.questions[2] = q2

	for _, c := range []*model.Choice{
		{BaseModel: model.BaseModel{ID: 11}, QuestionID: 1, Text: "go", IsCorrect: true},
		{BaseModel: model.BaseModel{ID: 12}, QuestionID: 1, Text: "async", IsCorrect: false},
		{BaseModel: model.BaseModel{ID: 21}, QuestionID: 2, Text: "yes", IsCorrect: true},
		{BaseModel: model.BaseModel{ID: 22}, QuestionID: 2, Text: "no", IsCorrect: false},
	} {
		st.choices[c.ID] = c
	}

	return st
}

func newGradingService(st *fakeStore) *GradingService {
	return NewGradingService(st, st, st)
}

/* ------------------------------------------ Tests ------------------------------------------ */

func TestGradeSubmission_AllCorrect(t *testing.T) {
	svc := newGradingService(seedTwoQuestionQuiz(t))

	report, err := svc.GradeSubmission(1, SubmissionRequest{Answers: []AnswerSubmission{
		{QuestionID: 1, ChoiceID: 11},
		{QuestionID: 2, ChoiceID: 21},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.CorrectAnswers != 2 {
		t.Fatalf("expected 2 correct; got %d", report.CorrectAnswers)
	}
	if report.Percentage != 100.0 {
		t.Fatalf("expected 100.0 percent; got %v", report.Percentage)
	}
	if report.Grade != "A" {
		t.Fatalf("expected grade A; got %q", report.Grade)
	}
	if report.Score != "2/2" {
		t.Fatalf("expected score 2/2; got %q", report.Score)
	}
	if report.QuizTitle != "Go Basics" {
		t.Fatalf("unexpected quiz title %q", report.QuizTitle)
	}
}

func TestGradeSubmission_HalfCorrect(t *testing.T) {
	svc := newGradingService(seedTwoQuestionQuiz(t))

	report, err := svc.GradeSubmission(1, SubmissionRequest{Answers: []AnswerSubmission{
		{QuestionID: 1, ChoiceID: 11},
		{QuestionID: 2, ChoiceID: 22},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.CorrectAnswers != 1 {
		t.Fatalf("expected 1 correct; got %d", report.CorrectAnswers)
	}
	if report.Percentage != 50.0 {
		t.Fatalf("expected 50.0 percent; got %v", report.Percentage)
	}
	if report.Grade != "F" {
		t.Fatalf("expected grade F; got %q", report.Grade)
	}
}

func TestGradeSubmission_EmptyAnswers(t *testing.T) {
	svc := newGradingService(seedTwoQuestionQuiz(t))

	report, err := svc.GradeSubmission(1, SubmissionRequest{Answers: []AnswerSubmission{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalQuestions != 0 {
		t.Fatalf("expected total 0; got %d", report.TotalQuestions)
	}
	if report.Percentage != 0 {
		t.Fatalf("expected 0 percent; got %v", report.Percentage)
	}
	if report.Grade != "F" {
		t.Fatalf("expected grade F; got %q", report.Grade)
	}
}

func TestGradeSubmission_UnknownQuestionIsInlineError(t *testing.T) {
	svc := newGradingService(seedTwoQuestionQuiz(t))

	report, err := svc.GradeSubmission(1, SubmissionRequest{Answers: []AnswerSubmission{
		{QuestionID: 99, ChoiceID: 11},
		{QuestionID: 2, ChoiceID: 21},
	}})
	if err != nil {
		t.Fatalf("one bad answer must not fail the submission: %v", err)
	}

	if len(report.Results) != 2 {
		t.Fatalf("expected 2 results; got %d", len(report.Results))
	}
	if report.Results[0].Error == "" {
		t.Fatalf("expected inline error for unknown question")
	}
	if report.Results[0].Correct {
		t.Fatalf("invalid answer must not be marked correct")
	}
	// 无效答案计入分母
	if report.TotalQuestions != 2 || report.CorrectAnswers != 1 {
		t.Fatalf("expected 1/2; got %d/%d", report.CorrectAnswers, report.TotalQuestions)
	}
	if report.Percentage != 50.0 {
		t.Fatalf("expected 50.0 percent; got %v", report.Percentage)
	}
}

func TestGradeSubmission_ChoiceFromOtherQuestionIsInlineError(t *testing.T) {
	svc := newGradingService(seedTwoQuestionQuiz(t))

	// 选项 21 属于题目2，而提交的是题目1
	report, err := svc.GradeSubmission(1, SubmissionRequest{Answers: []AnswerSubmission{
		{QuestionID: 1, ChoiceID: 21},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Results[0].Error == "" {
		t.Fatalf("expected inline error for cross-question choice")
	}
	if report.CorrectAnswers != 0 {
		t.Fatalf("expected 0 correct; got %d", report.CorrectAnswers)
	}
}

func TestGradeSubmission_QuizNotFound(t *testing.T) {
	svc := newGradingService(seedTwoQuestionQuiz(t))

	if _, err := svc.GradeSubmission(42, SubmissionRequest{}); err == nil {
		t.Fatalf("expected error for unknown quiz")
	}
}

func TestGradeForPercentage_Boundaries(t *testing.T) {
	cases := []struct {
		pct    float64
		letter string
	}{
		{100, "A"},
		{90, "A"},
		{89.99, "B"},
		{80, "B"},
		{79.99, "C"},
		{70, "C"},
		{69.99, "D"},
		{60, "D"},
		{59.99, "F"},
		{50, "F"},
		{0, "F"},
	}

	for _, tc := range cases {
		letter, marker := gradeForPercentage(tc.pct)
		if letter != tc.letter {
			t.Errorf("pct %v: expected %q, got %q", tc.pct, tc.letter, letter)
		}
		if marker == "" {
			t.Errorf("pct %v: expected a marker", tc.pct)
		}
	}
}

func TestGradeForPercentage_Monotonic(t *testing.T) {
	order := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4}

	prev := -1
	for pct := 0.0; pct <= 100.0; pct += 0.25 {
		letter, _ := gradeForPercentage(pct)
		rank, ok := order[letter]
		if !ok {
			t.Fatalf("unknown grade %q at %v", letter, pct)
		}
		if rank < prev {
			t.Fatalf("grade dropped at %v: rank %d < %d", pct, rank, prev)
		}
		prev = rank
	}
}

func TestRoundPercentage(t *testing.T) {
	cases := []struct {
		correct, total int
		want           float64
	}{
		{0, 0, 0},
		{2, 2, 100},
		{1, 2, 50},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 6, 16.67},
	}

	for _, tc := range cases {
		if got := roundPercentage(tc.correct, tc.total); got != tc.want {
			t.Errorf("%d/%d: expected %v, got %v", tc.correct, tc.total, tc.want, got)
		}
	}
}
