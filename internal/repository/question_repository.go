package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

// FindByIDInQuiz 查找题目，限定属于给定测验
func (r *QuestionRepository) FindByIDInQuiz(id, quizID uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("id = ? AND quiz_id = ?", id, quizID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) ListByQuiz(quizID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("quiz_id = ?", quizID).
		Preload("Choices").
		Order("`order` asc, created_at asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) CountByQuiz(quizID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.Question{}).Where("quiz_id = ?", quizID).Count(&total).Error
	return total, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

// Delete 级联删除题目及其选项
func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}
