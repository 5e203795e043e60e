package service

import (
	"context"
	"errors"
	"strings"
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/internal/model"
	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionInput carries the admin form fields for creating or editing a
// question. WrongAnswers are already split into one entry per answer.
type QuestionInput struct {
	Text           string
	CorrectAnswer  string
	WrongAnswers   []string
	SecretPassword string
	Image          string
	Comment        string
}

// AdminQuestionView is the admin-side projection of a question, including
// the secret password for the edit form.
type AdminQuestionView struct {
	ID             uint     `json:"id"`
	Text           string   `json:"text"`
	CorrectAnswer  string   `json:"correctAnswer"`
	Image          string   `json:"image"`
	Comment        string   `json:"comment"`
	SecretPassword string   `json:"secretPassword"`
	WrongAnswers   []string `json:"wrongAnswers"`
}

type AdminService struct {
	QuestionRepo *repository.QuestionRepository
	SettingsRepo *repository.SettingsRepository
	Quiz         *QuizService
	Config       *config.Config
}

func NewAdminService(
	questionRepo *repository.QuestionRepository,
	settingsRepo *repository.SettingsRepository,
	quiz *QuizService,
	cfg *config.Config,
) *AdminService {
	return &AdminService{
		QuestionRepo: questionRepo,
		SettingsRepo: settingsRepo,
		Quiz:         quiz,
		Config:       cfg,
	}
}

func (s *AdminService) ListQuestions() ([]*AdminQuestionView, error) {
	questions, err := s.QuestionRepo.GetAllOrdered()
	if err != nil {
		return nil, err
	}

	views := make([]*AdminQuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, adminView(q))
	}
	return views, nil
}

func (s *AdminService) GetQuestion(id uint) (*AdminQuestionView, error) {
	question, err := s.QuestionRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return adminView(question), nil
}

// CreateQuestion validates the input and inserts the question together with
// one correct option and the wrong options.
func (s *AdminService) CreateQuestion(ctx context.Context, input QuestionInput) (*model.Question, error) {
	cleaned, err := validateQuestionInput(input)
	if err != nil {
		return nil, err
	}

	question := &model.Question{
		Text:           cleaned.Text,
		CorrectAnswer:  cleaned.CorrectAnswer,
		Image:          cleaned.Image,
		Comment:        cleaned.Comment,
		SecretPassword: cleaned.SecretPassword,
		Options:        buildOptions(cleaned),
	}

	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}

	s.Quiz.InvalidateQuestionCache(ctx)
	return question, nil
}

// UpdateQuestion validates the input, then saves the question fields and
// replaces all of its options. A full replace per edit, not a merge.
func (s *AdminService) UpdateQuestion(ctx context.Context, id uint, input QuestionInput) error {
	cleaned, err := validateQuestionInput(input)
	if err != nil {
		return err
	}

	question, err := s.QuestionRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuestionNotFound
	}
	if err != nil {
		return err
	}

	question.Text = cleaned.Text
	question.CorrectAnswer = cleaned.CorrectAnswer
	question.SecretPassword = cleaned.SecretPassword
	question.Comment = cleaned.Comment
	// An empty image field keeps the existing upload.
	if cleaned.Image != "" {
		question.Image = cleaned.Image
	}

	if err := s.QuestionRepo.UpdateWithOptions(question, buildOptions(cleaned)); err != nil {
		return err
	}

	s.Quiz.InvalidateQuestionCache(ctx)
	return nil
}

func (s *AdminService) DeleteQuestion(ctx context.Context, id uint) error {
	if _, err := s.QuestionRepo.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuestionNotFound
	} else if err != nil {
		return err
	}

	if err := s.QuestionRepo.Delete(id); err != nil {
		return err
	}

	s.Quiz.InvalidateQuestionCache(ctx)
	return nil
}

func (s *AdminService) GetSettings() (*model.QuizSettings, error) {
	return s.SettingsRepo.Get(s.Config.Quiz.DefaultFinalMessage)
}

func (s *AdminService) UpdateSettings(finalMessage string) error {
	finalMessage = strings.TrimSpace(finalMessage)
	if finalMessage == "" {
		return errors.New("final message must not be empty")
	}

	if _, err := s.SettingsRepo.Get(s.Config.Quiz.DefaultFinalMessage); err != nil {
		return err
	}
	return s.SettingsRepo.UpdateFinalMessage(finalMessage)
}

// IsValidationError reports whether err is one of the admin form
// validation failures, which surface as 400s rather than 500s.
func IsValidationError(err error) bool {
	return errors.Is(err, util.ErrQuestionTextRequired) ||
		errors.Is(err, util.ErrNotEnoughWrongAnswers) ||
		errors.Is(err, util.ErrSecretPasswordRequired)
}

// validateQuestionInput trims all fields and enforces the admin rules:
// non-empty text and correct answer, at least three wrong answers, and a
// non-empty secret password.
func validateQuestionInput(input QuestionInput) (QuestionInput, error) {
	input.Text = strings.TrimSpace(input.Text)
	input.CorrectAnswer = strings.TrimSpace(input.CorrectAnswer)
	input.SecretPassword = strings.TrimSpace(input.SecretPassword)
	input.Comment = strings.TrimSpace(input.Comment)

	wrong := make([]string, 0, len(input.WrongAnswers))
	for _, answer := range input.WrongAnswers {
		if trimmed := strings.TrimSpace(answer); trimmed != "" {
			wrong = append(wrong, trimmed)
		}
	}
	input.WrongAnswers = wrong

	if input.Text == "" || input.CorrectAnswer == "" {
		return input, util.ErrQuestionTextRequired
	}
	if len(input.WrongAnswers) < 3 {
		return input, util.ErrNotEnoughWrongAnswers
	}
	if input.SecretPassword == "" {
		return input, util.ErrSecretPasswordRequired
	}
	return input, nil
}

// buildOptions materializes the option rows: the correct answer first, then
// every wrong answer. This is the only place IsCorrect is ever set, keeping
// the one-correct-option-per-question invariant.
func buildOptions(input QuestionInput) []model.AnswerOption {
	options := make([]model.AnswerOption, 0, len(input.WrongAnswers)+1)
	options = append(options, model.AnswerOption{Text: input.CorrectAnswer, IsCorrect: true})
	for _, answer := range input.WrongAnswers {
		options = append(options, model.AnswerOption{Text: answer})
	}
	return options
}

func adminView(q *model.Question) *AdminQuestionView {
	return &AdminQuestionView{
		ID:             q.ID,
		Text:           q.Text,
		CorrectAnswer:  q.CorrectAnswer,
		Image:          q.Image,
		Comment:        q.Comment,
		SecretPassword: q.SecretPassword,
		WrongAnswers:   q.IncorrectOptionTexts(),
	}
}
