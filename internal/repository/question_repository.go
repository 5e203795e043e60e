package repository

import (
	"trivia_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// GetAllOrdered returns every question with its options, ordered by id. The
// id order is the play order of the quiz.
func (r *QuestionRepository) GetAllOrdered() ([]*model.Question, error) {
	var questions []*model.Question
	err := r.DB.Preload("Options").Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) GetByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Options").First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Create inserts the question together with its option rows.
func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// UpdateWithOptions saves the question fields and fully replaces its option
// rows in one transaction. Edits are a full replace, not a diff.
func (r *QuestionRepository) UpdateWithOptions(question *model.Question, options []model.AnswerOption) error {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&model.Question{}).Where("id = ?", question.ID).Updates(map[string]interface{}{
		"text":            question.Text,
		"correct_answer":  question.CorrectAnswer,
		"image":           question.Image,
		"comment":         question.Comment,
		"secret_password": question.SecretPassword,
	}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("question_id = ?", question.ID).Delete(&model.AnswerOption{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for i := range options {
		options[i].ID = 0
		options[i].QuestionID = question.ID
	}
	if err := tx.Create(&options).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Delete removes the question and its options.
func (r *QuestionRepository) Delete(id uint) error {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("question_id = ?", id).Delete(&model.AnswerOption{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&model.Question{}, id).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
