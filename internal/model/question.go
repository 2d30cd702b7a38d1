package model

// swagger:model Question
type Question struct {
	BaseModel
	QuizID uint   `gorm:"index;not null" json:"quizId"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Order  int    `gorm:"default:0" json:"order"`

	Choices []Choice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
