package util

import "errors"

// Not-found family: surfaced to the caller, never retried.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrLanguageNotFound = errors.New("language not found")
	ErrStageNotFound    = errors.New("stage not found")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrQuizNotFound     = errors.New("quiz not found")
)

// Validation family: rejected before any store access.
var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPagination  = errors.New("invalid pagination parameters")
	ErrInvalidOrderBy     = errors.New("unsupported order-by field")
	ErrNoAnswers          = errors.New("submission must contain at least one answer")
	ErrAmbiguousAnswerKey = errors.New("question must have exactly one correct option")
)

// ErrInvariantViolation marks an internal computation guard that should be
// unreachable given upstream validation. It must fail loudly, never be
// downgraded to a partial result.
var ErrInvariantViolation = errors.New("computation invariant violation")
