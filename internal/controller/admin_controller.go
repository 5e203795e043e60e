package controller

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"trivia_quiz_backend/internal/service"
	"trivia_quiz_backend/internal/util"
	"trivia_quiz_backend/pkg/logger"
	"trivia_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminController struct {
	AdminService   *service.AdminService
	QuizService    *service.QuizService
	StorageService *service.StorageService
}

func NewAdminController(
	adminService *service.AdminService,
	quizService *service.QuizService,
	storageService *service.StorageService,
) *AdminController {
	return &AdminController{
		AdminService:   adminService,
		QuizService:    quizService,
		StorageService: storageService,
	}
}

// questionForm mirrors the add/edit question form. On add, wrong answers
// arrive newline-separated in a single textarea field; on edit they arrive
// as a repeated field. Both are accepted on both paths.
type questionForm struct {
	QuestionText   string   `form:"question_text"`
	CorrectAnswer  string   `form:"correct_answer"`
	WrongAnswers   []string `form:"wrong_answers"`
	SecretPassword string   `form:"secret_password"`
	Image          string   `form:"image"`
	Comment        string   `form:"comment"`
}

func (f *questionForm) toInput() service.QuestionInput {
	wrong := make([]string, 0, len(f.WrongAnswers))
	for _, field := range f.WrongAnswers {
		for _, line := range strings.Split(field, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				wrong = append(wrong, trimmed)
			}
		}
	}
	return service.QuestionInput{
		Text:           f.QuestionText,
		CorrectAnswer:  f.CorrectAnswer,
		WrongAnswers:   wrong,
		SecretPassword: f.SecretPassword,
		Image:          f.Image,
		Comment:        f.Comment,
	}
}

// Dashboard lists every question plus the quiz settings.
func (c *AdminController) Dashboard(ctx *gin.Context) {
	questions, err := c.AdminService.ListQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	settings, err := c.AdminService.GetSettings()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions": questions,
		"settings":  settings,
	})
}

// HandleForm dispatches POST /admin on the form_type field: add a question
// or update the quiz settings.
func (c *AdminController) HandleForm(ctx *gin.Context) {
	formType := ctx.PostForm("form_type")

	switch formType {
	case "add_question":
		var form questionForm
		if err := ctx.ShouldBind(&form); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}

		question, err := c.AdminService.CreateQuestion(ctx.Request.Context(), form.toInput())
		if err != nil {
			if service.IsValidationError(err) {
				util.BadRequest(ctx, err.Error())
				return
			}
			util.LogInternalError(ctx, err)
			return
		}
		util.Created(ctx, gin.H{"id": question.ID, "message": "question added successfully"})

	case "update_settings":
		if err := c.AdminService.UpdateSettings(ctx.PostForm("final_message")); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.Success(ctx, gin.H{"message": "settings updated successfully"})

	default:
		util.BadRequest(ctx, "unknown form_type")
	}
}

// GetQuestion serves the edit form data for one question.
func (c *AdminController) GetQuestion(ctx *gin.Context) {
	id, ok := questionID(ctx)
	if !ok {
		return
	}

	view, err := c.AdminService.GetQuestion(id)
	if errors.Is(err, util.ErrQuestionNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// UpdateQuestion applies an edit: validated, then a full replace of the
// question's options.
func (c *AdminController) UpdateQuestion(ctx *gin.Context) {
	id, ok := questionID(ctx)
	if !ok {
		return
	}

	var form questionForm
	if err := ctx.ShouldBind(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.AdminService.UpdateQuestion(ctx.Request.Context(), id, form.toInput())
	if errors.Is(err, util.ErrQuestionNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		if service.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "question updated successfully"})
}

func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	id, ok := questionID(ctx)
	if !ok {
		return
	}

	err := c.AdminService.DeleteQuestion(ctx.Request.Context(), id)
	if errors.Is(err, util.ErrQuestionNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "question deleted successfully"})
}

// Reset zeroes the progress index.
func (c *AdminController) Reset(ctx *gin.Context) {
	if err := c.QuizService.Reset(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	monitoring.CountReset()

	if claims := util.GetAdminFromContext(ctx); claims != nil {
		logger.Log.Info("Quiz progress reset", zap.String("admin", claims.Username))
	}

	util.Success(ctx, gin.H{"message": "quiz progress has been reset"})
}

// UploadImage stores a question image and returns its URL for the question
// form.
func (c *AdminController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}

func questionID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return 0, false
	}
	return uint(id), true
}
