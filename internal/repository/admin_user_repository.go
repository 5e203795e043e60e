package repository

import (
	"trivia_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type AdminUserRepository struct {
	DB *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{DB: db}
}

func (r *AdminUserRepository) GetByUsername(username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.DB.Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminUserRepository) Create(admin *model.AdminUser) error {
	return r.DB.Create(admin).Error
}
