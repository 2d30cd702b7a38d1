package service

import (
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
)

type QuestionService struct {
	Repo       *repository.QuestionRepository
	ChoiceRepo *repository.ChoiceRepository
	QuizRepo   *repository.QuizRepository
	Quiz       *QuizService
}

func NewQuestionService(repo *repository.QuestionRepository, choiceRepo *repository.ChoiceRepository, quizRepo *repository.QuizRepository, quizService *QuizService) *QuestionService {
	return &QuestionService{
		Repo:       repo,
		ChoiceRepo: choiceRepo,
		QuizRepo:   quizRepo,
		Quiz:       quizService,
	}
}

type QuestionRequest struct {
	Text  string `json:"text" binding:"required"`
	Order int    `json:"order"`
}

func (s *QuestionService) CreateQuestion(quizID uint, req QuestionRequest) (*model.Question, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return nil, util.ErrQuizNotFound
	}

	q := &model.Question{
		QuizID: quizID,
		Text:   req.Text,
		Order:  req.Order,
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}

	s.Quiz.InvalidateDetailCache(quizID)
	return q, nil
}

func (s *QuestionService) ListQuestions(quizID uint) ([]model.Question, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return nil, err
	}
	return s.Repo.ListByQuiz(quizID)
}

func (s *QuestionService) GetQuestion(id uint) (*model.Question, error) {
	return s.Repo.FindByID(id)
}

func (s *QuestionService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	q.Text = req.Text
	q.Order = req.Order
	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}

	s.Quiz.InvalidateDetailCache(q.QuizID)
	return q, nil
}

func (s *QuestionService) DeleteQuestion(id uint) error {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Quiz.InvalidateDetailCache(q.QuizID)
	return nil
}

type ChoiceRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

func (s *QuestionService) CreateChoice(questionID uint, req ChoiceRequest) (*model.Choice, error) {
	q, err := s.Repo.FindByID(questionID)
	if err != nil {
		return nil, util.ErrQuestionNotFound
	}

	c := &model.Choice{
		QuestionID: questionID,
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
	}
	if err := s.ChoiceRepo.Create(c); err != nil {
		return nil, err
	}

	s.Quiz.InvalidateDetailCache(q.QuizID)
	return c, nil
}

func (s *QuestionService) GetChoice(id uint) (*model.Choice, error) {
	return s.ChoiceRepo.FindByID(id)
}

func (s *QuestionService) ListChoices(questionID uint) ([]model.Choice, error) {
	if _, err := s.Repo.FindByID(questionID); err != nil {
		return nil, err
	}
	return s.ChoiceRepo.ListByQuestion(questionID)
}

func (s *QuestionService) UpdateChoice(id uint, req ChoiceRequest) (*model.Choice, error) {
	c, err := s.ChoiceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	c.Text = req.Text
	c.IsCorrect = req.IsCorrect
	if err := s.ChoiceRepo.Update(c); err != nil {
		return nil, err
	}

	if q, err := s.Repo.FindByID(c.QuestionID); err == nil {
		s.Quiz.InvalidateDetailCache(q.QuizID)
	}
	return c, nil
}

func (s *QuestionService) DeleteChoice(id uint) error {
	c, err := s.ChoiceRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.ChoiceRepo.Delete(id); err != nil {
		return err
	}

	if q, err := s.Repo.FindByID(c.QuestionID); err == nil {
		s.Quiz.InvalidateDetailCache(q.QuizID)
	}
	return nil
}
