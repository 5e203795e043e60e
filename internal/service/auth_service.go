package service

import (
	"errors"
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/internal/model"
	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	AdminRepo *repository.AdminUserRepository
	Config    *config.Config
}

func NewAuthService(adminRepo *repository.AdminUserRepository, cfg *config.Config) *AuthService {
	return &AuthService{AdminRepo: adminRepo, Config: cfg}
}

// Login verifies the credentials and returns a signed JWT for the admin
// area.
func (s *AuthService) Login(username, password string) (string, *model.AdminUser, error) {
	admin, err := s.AdminRepo.GetByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(admin, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}
