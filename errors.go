package parlance

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by engine operations. Input-validation errors
// (ErrEmptyInput, ErrTextTooLong) are raised before any sub-analysis runs.
var (
	// ErrNotReady is returned when an analysis operation is invoked while
	// the engine is not in the ready state.
	ErrNotReady = errors.New("parlance: engine not ready")

	// ErrEmptyInput is returned for blank or whitespace-only input.
	ErrEmptyInput = errors.New("parlance: empty input")

	// ErrTextTooLong is returned when the input exceeds the configured
	// maximum text length.
	ErrTextTooLong = errors.New("parlance: text too long")

	// ErrLanguageNotSupported is returned when no tokenizer or vocabulary
	// is configured for the requested language.
	ErrLanguageNotSupported = errors.New("parlance: language not supported")

	// ErrModelNotAvailable is returned when a trained model is required
	// for a language but none is registered.
	ErrModelNotAvailable = errors.New("parlance: model not available")

	// ErrModelPredictionFailed is returned when a registered model fails
	// to produce a prediction.
	ErrModelPredictionFailed = errors.New("parlance: model prediction failed")
)

// ProcessingError wraps a failure in a named analysis stage. It satisfies
// errors.Is/errors.As for the wrapped cause.
type ProcessingError struct {
	Op  string // operation that failed, e.g. "entities"
	Err error  // underlying cause
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	return fmt.Sprintf("parlance: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ProcessingError) Unwrap() error { return e.Err }

func processingError(op string, err error) error {
	return &ProcessingError{Op: op, Err: err}
}
