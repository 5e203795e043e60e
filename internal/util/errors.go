package util

import "errors"

var (
	ErrQuestionNotFound       = errors.New("question not found")
	ErrQuestionTextRequired   = errors.New("question text and correct answer are required")
	ErrNotEnoughWrongAnswers  = errors.New("at least three wrong answers are required")
	ErrSecretPasswordRequired = errors.New("secret password must not be empty")
	ErrInvalidCredentials     = errors.New("invalid username or password")
)
