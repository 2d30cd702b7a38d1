package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type ChoiceRepository struct {
	DB *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) *ChoiceRepository {
	return &ChoiceRepository{DB: db}
}

func (r *ChoiceRepository) Create(choice *model.Choice) error {
	return r.DB.Create(choice).Error
}

func (r *ChoiceRepository) FindByID(id uint) (*model.Choice, error) {
	var c model.Choice
	err := r.DB.First(&c, id).Error
	return &c, err
}

// FindByIDInQuestion 查找选项，限定属于给定题目
func (r *ChoiceRepository) FindByIDInQuestion(id, questionID uint) (*model.Choice, error) {
	var c model.Choice
	err := r.DB.Where("id = ? AND question_id = ?", id, questionID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChoiceRepository) ListByQuestion(questionID uint) ([]model.Choice, error) {
	var cs []model.Choice
	err := r.DB.Where("question_id = ?", questionID).Order("created_at asc").Find(&cs).Error
	return cs, err
}

func (r *ChoiceRepository) Update(choice *model.Choice) error {
	return r.DB.Save(choice).Error
}

func (r *ChoiceRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Choice{}, id).Error
}
