package service

import (
	"context"
	"encoding/json"
	"time"
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

// QuizState labels where the player is in the answer/password flow. Only
// the progress index is persisted; the state is derived per request.
type QuizState string

const (
	StateAnswering    QuizState = "answering"
	StatePasswordGate QuizState = "password-gate"
	StateAdvanced     QuizState = "advanced"
	StateComplete     QuizState = "complete"
)

const (
	FeedbackCorrect          = "Correct! Well done."
	FeedbackIncorrect        = "Incorrect answer, try again!"
	FeedbackPasswordRequired = "Correct! Enter the secret password to continue."
	FeedbackWrongPassword    = "Wrong secret password, try again!"
)

const questionCacheKey = "quiz:questions"

// PlayView is what the player sees on GET /.
type PlayView struct {
	Empty        bool     `json:"empty"`
	Completed    bool     `json:"completed"`
	FinalMessage string   `json:"finalMessage,omitempty"`
	QuestionID   uint     `json:"questionId,omitempty"`
	Text         string   `json:"text,omitempty"`
	Image        string   `json:"image,omitempty"`
	Options      []string `json:"options,omitempty"`
	Index        int      `json:"index"`
	Total        int      `json:"total"`
}

// SubmitOutcome is the result of an answer or password submission.
type SubmitOutcome struct {
	State     QuizState `json:"state"`
	Correct   bool      `json:"correct"`
	Advanced  bool      `json:"advanced"`
	Completed bool      `json:"completed"`
	Feedback  string    `json:"feedback"`
	Comment   string    `json:"comment,omitempty"`
}

// playQuestion is the cached projection of one question, in play order.
// It carries the secret password, so it must never be serialized into a
// response as-is.
type playQuestion struct {
	ID             uint     `json:"id"`
	Text           string   `json:"text"`
	CorrectAnswer  string   `json:"correctAnswer"`
	Image          string   `json:"image"`
	Comment        string   `json:"comment"`
	SecretPassword string   `json:"secretPassword"`
	Incorrect      []string `json:"incorrect"`
}

type QuizService struct {
	QuestionRepo  *repository.QuestionRepository
	GameStateRepo *repository.GameStateRepository
	SettingsRepo  *repository.SettingsRepository
	Config        *config.Config
	Redis         *redis.Client
}

func NewQuizService(
	questionRepo *repository.QuestionRepository,
	gameStateRepo *repository.GameStateRepository,
	settingsRepo *repository.SettingsRepository,
	cfg *config.Config,
	rdb *redis.Client,
) *QuizService {
	return &QuizService{
		QuestionRepo:  questionRepo,
		GameStateRepo: gameStateRepo,
		SettingsRepo:  settingsRepo,
		Config:        cfg,
		Redis:         rdb,
	}
}

// CurrentView resolves the play state: empty quiz, completion payload with
// the final message, or the current question with a freshly sampled choice
// set.
func (s *QuizService) CurrentView(ctx context.Context) (*PlayView, error) {
	questions, err := s.questions(ctx)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return &PlayView{Empty: true}, nil
	}

	state, err := s.GameStateRepo.Get()
	if err != nil {
		return nil, err
	}

	// Deleted questions can leave the index past the end; any index >= N
	// reads as complete.
	if state.CurrentIndex >= len(questions) {
		settings, err := s.SettingsRepo.Get(s.Config.Quiz.DefaultFinalMessage)
		if err != nil {
			return nil, err
		}
		return &PlayView{
			Completed:    true,
			FinalMessage: settings.FinalMessage,
			Index:        state.CurrentIndex,
			Total:        len(questions),
		}, nil
	}

	q := questions[state.CurrentIndex]
	return &PlayView{
		QuestionID: q.ID,
		Text:       q.Text,
		Image:      q.Image,
		Options:    SampleOptions(q.CorrectAnswer, q.Incorrect),
		Index:      state.CurrentIndex,
		Total:      len(questions),
	}, nil
}

// SubmitAnswer checks the selection against the current question. A correct
// answer advances the index immediately unless the question carries a
// secret password, in which case the caller is sent to the password gate
// with the index untouched.
func (s *QuizService) SubmitAnswer(ctx context.Context, selection string) (*SubmitOutcome, error) {
	q, questionCount, err := s.currentQuestion(ctx)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return &SubmitOutcome{State: StateComplete, Completed: true}, nil
	}

	if selection != q.CorrectAnswer {
		return &SubmitOutcome{State: StateAnswering, Feedback: FeedbackIncorrect}, nil
	}

	if q.SecretPassword != "" {
		return &SubmitOutcome{
			State:    StatePasswordGate,
			Correct:  true,
			Feedback: FeedbackPasswordRequired,
		}, nil
	}

	return s.advance(questionCount, q.Comment)
}

// SubmitPassword compares the entered value with the current question's
// secret password and advances on a match.
func (s *QuizService) SubmitPassword(ctx context.Context, password string) (*SubmitOutcome, error) {
	q, questionCount, err := s.currentQuestion(ctx)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return &SubmitOutcome{State: StateComplete, Completed: true}, nil
	}

	if password != q.SecretPassword {
		return &SubmitOutcome{
			State:    StatePasswordGate,
			Correct:  true,
			Feedback: FeedbackWrongPassword,
		}, nil
	}

	return s.advance(questionCount, q.Comment)
}

// Reset zeroes the progress index unconditionally.
func (s *QuizService) Reset() error {
	return s.GameStateRepo.SetIndex(0)
}

// InvalidateQuestionCache drops the cached question list. Called by the
// admin side after every question mutation.
func (s *QuizService) InvalidateQuestionCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(ctx, questionCacheKey)
}

func (s *QuizService) advance(questionCount int, comment string) (*SubmitOutcome, error) {
	newIndex, err := s.GameStateRepo.Increment()
	if err != nil {
		return nil, err
	}

	out := &SubmitOutcome{
		State:    StateAdvanced,
		Correct:  true,
		Advanced: true,
		Feedback: FeedbackCorrect,
		Comment:  comment,
	}
	if newIndex >= questionCount {
		out.State = StateComplete
		out.Completed = true
	}
	return out, nil
}

func (s *QuizService) currentQuestion(ctx context.Context) (*playQuestion, int, error) {
	questions, err := s.questions(ctx)
	if err != nil {
		return nil, 0, err
	}

	state, err := s.GameStateRepo.Get()
	if err != nil {
		return nil, 0, err
	}

	if state.CurrentIndex >= len(questions) {
		return nil, len(questions), nil
	}
	return &questions[state.CurrentIndex], len(questions), nil
}

// questions returns the id-ordered question list, served from Redis when
// possible. The cache is best effort: a nil client or any cache error
// falls through to the database.
func (s *QuizService) questions(ctx context.Context) ([]playQuestion, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, questionCacheKey).Result(); err == nil {
			var questions []playQuestion
			if err := json.Unmarshal([]byte(cached), &questions); err == nil {
				return questions, nil
			}
		}
	}

	records, err := s.QuestionRepo.GetAllOrdered()
	if err != nil {
		return nil, err
	}

	questions := make([]playQuestion, 0, len(records))
	for _, q := range records {
		questions = append(questions, playQuestion{
			ID:             q.ID,
			Text:           q.Text,
			CorrectAnswer:  q.CorrectAnswer,
			Image:          q.Image,
			Comment:        q.Comment,
			SecretPassword: q.SecretPassword,
			Incorrect:      q.IncorrectOptionTexts(),
		})
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(questions); err == nil {
			ttl := time.Duration(s.Config.Quiz.CacheTTLSeconds) * time.Second
			s.Redis.Set(ctx, questionCacheKey, payload, ttl)
		}
	}

	return questions, nil
}
