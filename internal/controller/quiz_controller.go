package controller

import (
	"trivia_quiz_backend/internal/service"
	"trivia_quiz_backend/internal/util"
	"trivia_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// submitForm carries the play form. action selects what is being
// submitted: the chosen answer or the secret password.
type submitForm struct {
	Action           string `form:"action" binding:"required,oneof=answer password"`
	Answer           string `form:"answer"`
	QuestionPassword string `form:"question_password"`
}

// GetCurrent serves the current question with a sampled 4-choice set, the
// empty-quiz payload, or the completion payload.
func (c *QuizController) GetCurrent(ctx *gin.Context) {
	view, err := c.QuizService.CurrentView(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Submit handles both submit actions of the play form.
func (c *QuizController) Submit(ctx *gin.Context) {
	var form submitForm
	if err := ctx.ShouldBind(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var (
		outcome *service.SubmitOutcome
		err     error
	)
	switch form.Action {
	case "password":
		outcome, err = c.QuizService.SubmitPassword(ctx.Request.Context(), form.QuestionPassword)
	default:
		outcome, err = c.QuizService.SubmitAnswer(ctx.Request.Context(), form.Answer)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if form.Action == "answer" {
		monitoring.CountAnswer(outcome.Correct)
	}

	util.Success(ctx, outcome)
}
