package service

import (
	"context"
	"encoding/json"
	"fmt"
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type QuizService struct {
	Repo         *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	Cfg          *config.Config
	Redis        *redis.Client
}

func NewQuizService(repo *repository.QuizRepository, questionRepo *repository.QuestionRepository, cfg *config.Config, rdb *redis.Client) *QuizService {
	return &QuizService{
		Repo:         repo,
		QuestionRepo: questionRepo,
		Cfg:          cfg,
		Redis:        rdb,
	}
}

const quizDetailKeyPrefix = "quiz_detail:"

type QuizRequest struct {
	Title              string     `json:"title" binding:"required"`
	Description        string     `json:"description"`
	ScheduledPublishAt *time.Time `json:"scheduledPublishAt"`
}

func (s *QuizService) CreateQuiz(req QuizRequest) (*model.Quiz, error) {
	quiz := &model.Quiz{
		Title:              req.Title,
		Description:        req.Description,
		ScheduledPublishAt: req.ScheduledPublishAt,
	}
	if err := s.Repo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

type QuizSummary struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	IsPublished   bool       `json:"isPublished"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	QuestionCount int64      `json:"questionCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (s *QuizService) ListQuizzes(page, limit int, publishedOnly bool) ([]QuizSummary, int64, error) {
	quizzes, total, err := s.Repo.List(page, limit, publishedOnly)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]QuizSummary, len(quizzes))
	for i, q := range quizzes {
		count, _ := s.QuestionRepo.CountByQuiz(q.ID)
		summaries[i] = QuizSummary{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			IsPublished:   q.IsPublished,
			PublishedAt:   q.PublishedAt,
			QuestionCount: count,
			CreatedAt:     q.CreatedAt,
			UpdatedAt:     q.UpdatedAt,
		}
	}
	return summaries, total, nil
}

// GetQuizDetail 返回嵌套的测验详情（题目+选项），命中缓存则直接返回
func (s *QuizService) GetQuizDetail(id uint) (*model.Quiz, error) {
	ctx := context.Background()
	key := fmt.Sprintf("%s%d", quizDetailKeyPrefix, id)

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, key).Result()
		if err == nil {
			var cached model.Quiz
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("quiz detail cache read failed", zap.Error(err))
		}
	}

	quiz, err := s.Repo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(quiz); err == nil {
			if err := s.Redis.Set(ctx, key, data, s.Cfg.Cache.QuizDetailTTL).Err(); err != nil {
				logger.Log.Warn("quiz detail cache write failed", zap.Error(err))
			}
		}
	}

	return quiz, nil
}

// InvalidateDetailCache 任何测验内容变更后调用
func (s *QuizService) InvalidateDetailCache(quizID uint) {
	if s.Redis == nil {
		return
	}
	key := fmt.Sprintf("%s%d", quizDetailKeyPrefix, quizID)
	if err := s.Redis.Del(context.Background(), key).Err(); err != nil {
		logger.Log.Warn("quiz detail cache invalidation failed", zap.Uint("quizId", quizID), zap.Error(err))
	}
}

func (s *QuizService) UpdateQuiz(id uint, req QuizRequest) (*model.Quiz, error) {
	quiz, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	if req.ScheduledPublishAt != nil {
		quiz.ScheduledPublishAt = req.ScheduledPublishAt
	}
	if err := s.Repo.Update(quiz); err != nil {
		return nil, err
	}

	s.InvalidateDetailCache(id)
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.InvalidateDetailCache(id)
	return nil
}

func (s *QuizService) PublishQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quiz.IsPublished = true
	quiz.PublishedAt = &now
	quiz.ScheduledPublishAt = nil
	if err := s.Repo.Update(quiz); err != nil {
		return nil, err
	}

	s.InvalidateDetailCache(id)
	return quiz, nil
}

func (s *QuizService) SchedulePublish(id uint, at time.Time) (*model.Quiz, error) {
	quiz, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	quiz.ScheduledPublishAt = &at
	if err := s.Repo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// ProcessScheduledPublishes 由后台定时任务调用，发布排期已到的测验
func (s *QuizService) ProcessScheduledPublishes() error {
	due, err := s.Repo.ListDueForPublish(time.Now())
	if err != nil {
		return err
	}

	for i := range due {
		quiz := &due[i]
		now := time.Now()
		quiz.IsPublished = true
		quiz.PublishedAt = &now
		quiz.ScheduledPublishAt = nil
		if err := s.Repo.Update(quiz); err != nil {
			logger.Log.Error("scheduled publish failed", zap.Uint("quizId", quiz.ID), zap.Error(err))
			continue
		}
		s.InvalidateDetailCache(quiz.ID)
		logger.Log.Info("quiz published on schedule", zap.Uint("quizId", quiz.ID), zap.String("title", quiz.Title))
	}
	return nil
}
