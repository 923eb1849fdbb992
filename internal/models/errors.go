package models

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput      = errors.New("missing input")
	ErrInvalidTopic      = errors.New("invalid topic")
	ErrOffTopic          = errors.New("prompt is outside the supported domain")
	ErrNotConfigured     = errors.New("completion gateway not configured")
	ErrUpstream          = errors.New("completion request failed")
	ErrMalformedUpstream = errors.New("malformed completion payload")
	ErrPersistence       = errors.New("persistence failed")
)

// AnswerNotInOptionsError is returned when a generated question's answer is
// not among its options.
type AnswerNotInOptionsError struct {
	Index  int
	Answer string
}

func (e *AnswerNotInOptionsError) Error() string {
	return fmt.Sprintf("question %d: correct answer %q is not one of the options", e.Index, e.Answer)
}
