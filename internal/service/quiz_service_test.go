package service_test

import (
	"context"
	"testing"
	"trivia_quiz_backend/internal/service"
)

func TestQuizServiceCurrentView(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyQuiz", func(t *testing.T) {
		db := newTestDB(t)
		quiz := newQuizService(db)

		view, err := quiz.CurrentView(ctx)
		if err != nil {
			t.Fatalf("CurrentView failed: %v", err)
		}
		if !view.Empty {
			t.Errorf("expected the empty-quiz payload, got %+v", view)
		}
	})

	t.Run("QuestionWithOptions", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestion(t, db, "Capital of France?", "Paris", "", "London", "Berlin", "Madrid")
		quiz := newQuizService(db)

		view, err := quiz.CurrentView(ctx)
		if err != nil {
			t.Fatalf("CurrentView failed: %v", err)
		}

		if view.Empty || view.Completed {
			t.Fatalf("expected a question payload, got %+v", view)
		}
		if view.Text != "Capital of France?" {
			t.Errorf("unexpected question text %q", view.Text)
		}
		if len(view.Options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(view.Options))
		}
		if countOccurrences(view.Options, "Paris") != 1 {
			t.Errorf("expected the correct answer exactly once, got %v", view.Options)
		}
		if view.Total != 1 || view.Index != 0 {
			t.Errorf("expected index 0 of 1, got %d of %d", view.Index, view.Total)
		}
	})

	t.Run("CompletedShowsFinalMessage", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestion(t, db, "Capital of France?", "Paris", "", "London", "Berlin", "Madrid")
		quiz := newQuizService(db)

		if _, err := quiz.SubmitAnswer(ctx, "Paris"); err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}

		view, err := quiz.CurrentView(ctx)
		if err != nil {
			t.Fatalf("CurrentView failed: %v", err)
		}
		if !view.Completed {
			t.Fatalf("expected the completion payload, got %+v", view)
		}
		if view.FinalMessage == "" {
			t.Errorf("expected a final message")
		}
	})
}

func TestQuizServiceSubmitAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("CorrectWithoutPasswordAdvances", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestion(t, db, "Capital of France?", "Paris", "", "London", "Berlin", "Madrid")
		seedQuestion(t, db, "2+2?", "4", "", "3", "5", "22")
		quiz := newQuizService(db)

		outcome, err := quiz.SubmitAnswer(ctx, "Paris")
		if err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}

		if !outcome.Correct || !outcome.Advanced {
			t.Errorf("expected an advancing outcome, got %+v", outcome)
		}
		if outcome.State != service.StateAdvanced {
			t.Errorf("expected state %q, got %q", service.StateAdvanced, outcome.State)
		}
		if got := currentIndex(t, db); got != 1 {
			t.Errorf("expected index 1, got %d", got)
		}
	})

	t.Run("IncorrectStays", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestion(t, db, "Capital of France?", "Paris", "", "London", "Berlin", "Madrid")
		quiz := newQuizService(db)

		outcome, err := quiz.SubmitAnswer(ctx, "London")
		if err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}

		if outcome.Correct || outcome.Advanced {
			t.Errorf("expected a negative outcome, got %+v", outcome)
		}
		if outcome.State != service.StateAnswering {
			t.Errorf("expected state %q, got %q", service.StateAnswering, outcome.State)
		}
		if outcome.Feedback != service.FeedbackIncorrect {
			t.Errorf("expected negative feedback, got %q", outcome.Feedback)
		}
		if got := currentIndex(t, db); got != 0 {
			t.Errorf("expected index to stay at 0, got %d", got)
		}
	})

	t.Run("CorrectWithPasswordGates", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestion(t, db, "Capital of France?", "Paris", "x1", "London", "Berlin", "Madrid")
		quiz := newQuizService(db)

		outcome, err := quiz.SubmitAnswer(ctx, "Paris")
		if err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}

		if !outcome.Correct || outcome.Advanced {
			t.Errorf("expected the password gate without advancing, got %+v", outcome)
		}
		if outcome.State != service.StatePasswordGate {
			t.Errorf("expected state %q, got %q", service.StatePasswordGate, outcome.State)
		}
		if got := currentIndex(t, db); got != 0 {
			t.Errorf("expected index to stay at 0, got %d", got)
		}
	})
}

func TestQuizServiceSubmitPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("WrongPasswordHolds", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestion(t, db, "Capital of France?", "Paris", "x1", "London", "Berlin", "Madrid")
		quiz := newQuizService(db)

		outcome, err := quiz.SubmitPassword(ctx, "nope")
		if err != nil {
			t.Fatalf("SubmitPassword failed: %v", err)
		}

		if outcome.Advanced {
			t.Errorf("expected no advance on a wrong password, got %+v", outcome)
		}
		if outcome.State != service.StatePasswordGate {
			t.Errorf("expected state %q, got %q", service.StatePasswordGate, outcome.State)
		}
		if outcome.Feedback != service.FeedbackWrongPassword {
			t.Errorf("expected the wrong-password feedback, got %q", outcome.Feedback)
		}
		if got := currentIndex(t, db); got != 0 {
			t.Errorf("expected index to stay at 0, got %d", got)
		}
	})

	t.Run("RightPasswordAdvances", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestion(t, db, "Capital of France?", "Paris", "x1", "London", "Berlin", "Madrid")
		seedQuestion(t, db, "2+2?", "4", "", "3", "5", "22")
		quiz := newQuizService(db)

		outcome, err := quiz.SubmitPassword(ctx, "x1")
		if err != nil {
			t.Fatalf("SubmitPassword failed: %v", err)
		}

		if !outcome.Advanced {
			t.Errorf("expected an advance, got %+v", outcome)
		}
		if got := currentIndex(t, db); got != 1 {
			t.Errorf("expected index 1, got %d", got)
		}
	})
}

// TestQuizServiceTwoQuestionScenario walks the full flow: a passwordless
// question, then a password-gated one, through to completion.
func TestQuizServiceTwoQuestionScenario(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedQuestion(t, db, "Capital of France?", "Paris", "", "London", "Berlin", "Madrid")
	seedQuestion(t, db, "Capital of Italy?", "Rome", "x1", "Milan", "Naples", "Turin")
	quiz := newQuizService(db)

	// Q1 has no password: the correct answer advances immediately.
	outcome, err := quiz.SubmitAnswer(ctx, "Paris")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !outcome.Advanced || outcome.Completed {
		t.Fatalf("expected to advance to Q2, got %+v", outcome)
	}
	if got := currentIndex(t, db); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}

	// Q2 gates on its secret password.
	outcome, err = quiz.SubmitAnswer(ctx, "Rome")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if outcome.State != service.StatePasswordGate {
		t.Fatalf("expected the password gate, got %+v", outcome)
	}

	// A wrong password keeps the index unchanged.
	outcome, err = quiz.SubmitPassword(ctx, "wrong")
	if err != nil {
		t.Fatalf("SubmitPassword failed: %v", err)
	}
	if outcome.Advanced {
		t.Fatalf("expected no advance on a wrong password, got %+v", outcome)
	}
	if got := currentIndex(t, db); got != 1 {
		t.Fatalf("expected index to stay at 1, got %d", got)
	}

	// The right password completes the quiz.
	outcome, err = quiz.SubmitPassword(ctx, "x1")
	if err != nil {
		t.Fatalf("SubmitPassword failed: %v", err)
	}
	if !outcome.Completed || outcome.State != service.StateComplete {
		t.Fatalf("expected completion, got %+v", outcome)
	}
	if got := currentIndex(t, db); got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
}

func TestQuizServiceReset(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedQuestion(t, db, "Capital of France?", "Paris", "", "London", "Berlin", "Madrid")
	seedQuestion(t, db, "2+2?", "4", "", "3", "5", "22")
	quiz := newQuizService(db)

	if _, err := quiz.SubmitAnswer(ctx, "Paris"); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if got := currentIndex(t, db); got != 1 {
		t.Fatalf("expected index 1 before reset, got %d", got)
	}

	if err := quiz.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if got := currentIndex(t, db); got != 0 {
		t.Errorf("expected index 0 after reset, got %d", got)
	}

	// Reset is unconditional, also from zero.
	if err := quiz.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if got := currentIndex(t, db); got != 0 {
		t.Errorf("expected index to remain 0, got %d", got)
	}
}
