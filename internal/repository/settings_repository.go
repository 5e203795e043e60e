package repository

import (
	"errors"
	"trivia_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the singleton settings row, creating it with the given
// default message if it does not exist yet.
func (r *SettingsRepository) Get(defaultMessage string) (*model.QuizSettings, error) {
	var settings model.QuizSettings
	err := r.DB.First(&settings, model.SettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.QuizSettings{ID: model.SettingsRowID, FinalMessage: defaultMessage}
		if err := r.DB.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) UpdateFinalMessage(message string) error {
	return r.DB.Model(&model.QuizSettings{}).
		Where("id = ?", model.SettingsRowID).
		Update("final_message", message).Error
}
