package repository

import (
	"errors"
	"trivia_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type GameStateRepository struct {
	DB *gorm.DB
}

func NewGameStateRepository(db *gorm.DB) *GameStateRepository {
	return &GameStateRepository{DB: db}
}

// Get returns the singleton state row, creating it at index 0 if missing.
func (r *GameStateRepository) Get() (*model.GameState, error) {
	var state model.GameState
	err := r.DB.First(&state, model.GameStateRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = model.GameState{ID: model.GameStateRowID, CurrentIndex: 0}
		if err := r.DB.Create(&state).Error; err != nil {
			return nil, err
		}
		return &state, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Increment bumps the index by one. Plain read-modify-write; there is no
// locking against concurrent submissions.
func (r *GameStateRepository) Increment() (int, error) {
	state, err := r.Get()
	if err != nil {
		return 0, err
	}

	state.CurrentIndex++
	if err := r.DB.Model(&model.GameState{}).
		Where("id = ?", model.GameStateRowID).
		Update("current_index", state.CurrentIndex).Error; err != nil {
		return 0, err
	}
	return state.CurrentIndex, nil
}

// SetIndex overwrites the index, used by the admin reset.
func (r *GameStateRepository) SetIndex(index int) error {
	if _, err := r.Get(); err != nil {
		return err
	}
	return r.DB.Model(&model.GameState{}).
		Where("id = ?", model.GameStateRowID).
		Update("current_index", index).Error
}
