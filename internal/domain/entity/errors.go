package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooFewSentences indicates that the input text contains exactly one
	// sentence. Ranking over a single graph node is undefined, so this is
	// the one fatal input condition of the pipeline.
	ErrTooFewSentences = fmt.Errorf("%w: input must have more than one sentence", ErrInvalidInput)

	// ErrInvalidRatio indicates that the selection ratio is outside (0, 1].
	ErrInvalidRatio = fmt.Errorf("%w: ratio must be in (0, 1]", ErrInvalidInput)

	// ErrInvalidWordCount indicates a negative word count target.
	ErrInvalidWordCount = fmt.Errorf("%w: word count must be non-negative", ErrInvalidInput)

	// ErrInvalidSentenceCount indicates a non-positive sentence count target.
	ErrInvalidSentenceCount = fmt.Errorf("%w: sentence count must be positive", ErrInvalidInput)

	// ErrConflictingTargets indicates that both a word count and a sentence
	// count target were supplied; the selection policies are exclusive.
	ErrConflictingTargets = fmt.Errorf("%w: word count and sentence count targets are exclusive", ErrInvalidInput)
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
