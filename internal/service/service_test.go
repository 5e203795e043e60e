package service_test

import (
	"fmt"
	"strings"
	"testing"
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/internal/model"
	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/internal/service"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database, named after the test
// so parallel tests do not share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Question{},
		&model.AnswerOption{},
		&model.QuizSettings{},
		&model.GameState{},
		&model.AdminUser{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Quiz: config.QuizConfig{
			DefaultFinalMessage: "Congratulations, you have completed the quiz!",
			CacheTTLSeconds:     60,
		},
	}
}

func newQuizService(db *gorm.DB) *service.QuizService {
	cfg := testConfig()
	return service.NewQuizService(
		repository.NewQuestionRepository(db),
		repository.NewGameStateRepository(db),
		repository.NewSettingsRepository(db),
		cfg,
		nil, // cache is best effort, tests run without redis
	)
}

func newAdminService(db *gorm.DB) *service.AdminService {
	cfg := testConfig()
	questionRepo := repository.NewQuestionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	quiz := service.NewQuizService(
		questionRepo,
		repository.NewGameStateRepository(db),
		settingsRepo,
		cfg,
		nil,
	)
	return service.NewAdminService(questionRepo, settingsRepo, quiz, cfg)
}

// seedQuestion inserts a question directly, bypassing admin validation, so
// tests can set up edge cases such as an empty secret password.
func seedQuestion(t *testing.T, db *gorm.DB, text, correct, secretPassword string, wrong ...string) *model.Question {
	t.Helper()

	options := []model.AnswerOption{{Text: correct, IsCorrect: true}}
	for _, w := range wrong {
		options = append(options, model.AnswerOption{Text: w})
	}

	question := &model.Question{
		Text:           text,
		CorrectAnswer:  correct,
		SecretPassword: secretPassword,
		Options:        options,
	}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	return question
}

func currentIndex(t *testing.T, db *gorm.DB) int {
	t.Helper()

	state, err := repository.NewGameStateRepository(db).Get()
	if err != nil {
		t.Fatalf("failed to read game state: %v", err)
	}
	return state.CurrentIndex
}
