package database

import (
	"fmt"
	"log"
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Choice{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认示例测验（空库时插入，便于前端联调）
	var count int64
	db.Model(&model.Quiz{}).Count(&count)
	if count == 0 {
		sample := &model.Quiz{
			Title:       "Go 基础测验",
			Description: "Go 语言入门知识点自测",
			IsPublished: true,
		}
		if err := db.Create(sample).Error; err == nil {
			questions := []struct {
				text    string
				choices []model.Choice
			}{
				{
					text: "Go 的切片是值类型还是引用语义？",
					choices: []model.Choice{
						{Text: "底层共享数组，具有引用语义", IsCorrect: true},
						{Text: "完全的值类型，赋值即深拷贝", IsCorrect: false},
					},
				},
				{
					text: "哪个关键字用于启动 goroutine？",
					choices: []model.Choice{
						{Text: "go", IsCorrect: true},
						{Text: "async", IsCorrect: false},
						{Text: "spawn", IsCorrect: false},
					},
				},
			}
			for i, q := range questions {
				question := &model.Question{QuizID: sample.ID, Text: q.text, Order: i + 1}
				if err := db.Create(question).Error; err != nil {
					continue
				}
				for _, c := range q.choices {
					c.QuestionID = question.ID
					db.Create(&c)
				}
			}
		}
	}

	return db, nil
}
