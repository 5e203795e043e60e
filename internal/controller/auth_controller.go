package controller

import (
	"errors"
	"trivia_quiz_backend/internal/service"
	"trivia_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Login issues the JWT for the admin area.
func (c *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, admin, err := c.AuthService.Login(req.Username, req.Password)
	if errors.Is(err, util.ErrInvalidCredentials) {
		util.Unauthorized(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token":    token,
		"username": admin.Username,
	})
}
