package service

import (
	"fmt"
	"math"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"
	"quizhub_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// 评分只读取存量数据，数据访问走小接口，便于替换和测试
type QuizSource interface {
	FindByID(id uint) (*model.Quiz, error)
}

type QuestionSource interface {
	FindByIDInQuiz(id, quizID uint) (*model.Question, error)
}

type ChoiceSource interface {
	FindByIDInQuestion(id, questionID uint) (*model.Choice, error)
}

type GradingService struct {
	Quizzes   QuizSource
	Questions QuestionSource
	Choices   ChoiceSource
}

func NewGradingService(quizzes QuizSource, questions QuestionSource, choices ChoiceSource) *GradingService {
	return &GradingService{
		Quizzes:   quizzes,
		Questions: questions,
		Choices:   choices,
	}
}

type AnswerSubmission struct {
	QuestionID uint `json:"question_id" binding:"required"`
	ChoiceID   uint `json:"choice_id" binding:"required"`
}

type SubmissionRequest struct {
	Answers []AnswerSubmission `json:"answers" binding:"required,dive"`
}

type AnswerResult struct {
	QuestionID uint   `json:"question_id"`
	ChoiceID   uint   `json:"choice_id"`
	Question   string `json:"question,omitempty"`
	Answer     string `json:"answer,omitempty"`
	Correct    bool   `json:"correct"`
	Error      string `json:"error,omitempty"`
}

type GradingReport struct {
	QuizID         uint           `json:"quiz_id"`
	QuizTitle      string         `json:"quiz_title"`
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	Score          string         `json:"score"`
	Percentage     float64        `json:"percentage"`
	Grade          string         `json:"grade"`
	Marker         string         `json:"marker"`
	Results        []AnswerResult `json:"results"`
}

type gradeBand struct {
	threshold float64
	letter    string
	marker    string
}

// 从高到低逐档匹配，末位 0 分档兜底
var gradeBands = []gradeBand{
	{90, "A", "🏆"},
	{80, "B", "🎉"},
	{70, "C", "👍"},
	{60, "D", "📘"},
	{0, "F", "📚"},
}

func gradeForPercentage(pct float64) (string, string) {
	for _, band := range gradeBands {
		if pct >= band.threshold {
			return band.letter, band.marker
		}
	}
	last := gradeBands[len(gradeBands)-1]
	return last.letter, last.marker
}

func roundPercentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(correct) / float64(total) * 100
	return math.Round(pct*100) / 100
}

// GradeSubmission 对一次提交评分。单个答案查不到题目或选项时只标记该条为无效，
// 不中断其余答案的评分。
func (s *GradingService) GradeSubmission(quizID uint, req SubmissionRequest) (*GradingReport, error) {
	quiz, err := s.Quizzes.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}

	results := make([]AnswerResult, 0, len(req.Answers))
	correct := 0

	for _, ans := range req.Answers {
		result := AnswerResult{
			QuestionID: ans.QuestionID,
			ChoiceID:   ans.ChoiceID,
		}

		question, err := s.Questions.FindByIDInQuiz(ans.QuestionID, quizID)
		if err != nil {
			result.Error = fmt.Sprintf("question %d not found in quiz %d", ans.QuestionID, quizID)
			results = append(results, result)
			continue
		}

		choice, err := s.Choices.FindByIDInQuestion(ans.ChoiceID, question.ID)
		if err != nil {
			result.Error = fmt.Sprintf("choice %d not found in question %d", ans.ChoiceID, question.ID)
			results = append(results, result)
			continue
		}

		result.Question = question.Text
		result.Answer = choice.Text
		result.Correct = choice.IsCorrect
		if choice.IsCorrect {
			correct++
		}
		results = append(results, result)
	}

	total := len(req.Answers)
	percentage := roundPercentage(correct, total)
	letter, marker := gradeForPercentage(percentage)

	monitoring.SubmissionCounter.WithLabelValues(letter).Inc()
	logger.Log.Info("quiz submission graded",
		zap.Uint("quizId", quizID),
		zap.Int("total", total),
		zap.Int("correct", correct),
		zap.Float64("percentage", percentage),
		zap.String("grade", letter),
	)

	return &GradingReport{
		QuizID:         quiz.ID,
		QuizTitle:      quiz.Title,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Score:          fmt.Sprintf("%d/%d", correct, total),
		Percentage:     percentage,
		Grade:          letter,
		Marker:         marker,
		Results:        results,
	}, nil
}
