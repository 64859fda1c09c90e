package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrWrongPortal       = errors.New("account belongs to a different portal")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrCourseNotFound    = errors.New("course not found")
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrResultNotFound    = errors.New("exam result not found")
	ErrAlreadyEnrolled   = errors.New("already enrolled in this course")
	ErrNotEnrolled       = errors.New("not enrolled in this course")
	ErrQuizInactive      = errors.New("quiz is not currently active")
	ErrQuizLocked        = errors.New("blocked from retaking this quiz due to suspicious activity in a previous attempt")
	ErrAttemptsExhausted = errors.New("all allowed attempts for this quiz have been used")
)
