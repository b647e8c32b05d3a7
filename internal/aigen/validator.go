package aigen

import (
	"fmt"

	"github.com/kidskills/kidskills/internal/question"
)

// Validator inspects a generated question before it is served.
type Validator interface {
	Name() string
	Validate(q *question.Question, req question.Request) *ValidationError
}

// ValidationError describes why a generated question was rejected.
// Retryable errors are worth regenerating; others fail fast.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation (%s): %s", e.Validator, e.Message)
}

// StructuralValidator checks that required fields for the question's
// answer shape are present and consistent.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *question.Question, req question.Request) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 600 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text exceeds 600 characters",
			Retryable: true,
		}
	}

	switch req.Type {
	case question.TypeReading:
		if q.ReadingPassage == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "reading question is missing its passage",
				Retryable: true,
			}
		}
	case question.TypeCreativeWriting:
		// Open-ended: no options or answer expected.
		return nil
	}

	if len(q.Options) > 0 {
		correct := 0
		for _, opt := range q.Options {
			if opt.Text == "" {
				return &ValidationError{
					Validator: v.Name(),
					Message:   "option with empty text",
					Retryable: true,
				}
			}
			if opt.Correct {
				correct++
			}
		}
		if correct != 1 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%d options marked correct, want exactly 1", correct),
				Retryable: true,
			}
		}
		return nil
	}

	if q.CorrectAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "neither options nor correctAnswer present",
			Retryable: true,
		}
	}
	return nil
}
