package errors

import (
	stderrors "errors"
	"fmt"
)

// AnalysisError is the unified error type for the analysis engine.
type AnalysisError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AnalysisError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AnalysisError) WithCause(cause error) *AnalysisError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AnalysisError) WithDetail(key string, value any) *AnalysisError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AnalysisError.
func New(code ErrorCode, message string) *AnalysisError {
	return &AnalysisError{
		Code:    code,
		Message: message,
	}
}

// --- Common Error Constructors ---

// IncorrectInputDataType creates an error for container payloads whose shape
// does not match the container type (sequence vs mapping).
func IncorrectInputDataType(expected string, got any) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeIncorrectInputDataType,
		Message: fmt.Sprintf("input data is not %s", expected),
		Details: map[string]any{"expected": expected, "got": fmt.Sprintf("%T", got)},
	}
}

// MissingKey creates an error for a nested lookup into an absent key.
func MissingKey(key any) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeMissingKey,
		Message: fmt.Sprintf("key %v is not in the grouped data", key),
		Details: map[string]any{"key": key},
	}
}

// NotAnAnalyzer creates an error for an object with no recognized kind tag.
func NotAnAnalyzer(analyzer any) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeNotAnAnalyzer,
		Message: "object does not declare a valid analyzer kind",
		Details: map[string]any{"analyzer": fmt.Sprintf("%v", analyzer)},
	}
}

// IncorrectAnalyzer creates an error for an operation invoked with a
// kind-mismatched analyzer. Raised before the analyzer ever runs.
func IncorrectAnalyzer(analyzer any, declared, expected string) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeIncorrectAnalyzer,
		Message: fmt.Sprintf("analyzer %v is of kind %q but used for %q", analyzer, declared, expected),
		Details: map[string]any{
			"analyzer": fmt.Sprintf("%v", analyzer),
			"declared": declared,
			"expected": expected,
		},
	}
}

// TerminalContainer creates an error for an analysis operation invoked on a
// terminal container.
func TerminalContainer(operation string) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeTerminalContainer,
		Message: fmt.Sprintf("container is terminal and does not support %q", operation),
		Details: map[string]any{"operation": operation},
	}
}

// AnalyzerFailure normalizes an error raised inside user-supplied analyzer
// logic. It records the cause's type and message plus which operation and
// analyzer were involved, so callers see a single failure shape.
func AnalyzerFailure(operation string, analyzer any, cause error) *AnalysisError {
	return &AnalysisError{
		Code: ErrCodeAnalyzerFailure,
		Message: fmt.Sprintf("error of type %T with content %q while calling %q with analyzer %v",
			cause, cause.Error(), operation, analyzer),
		Details: map[string]any{
			"cause_type": fmt.Sprintf("%T", cause),
			"operation":  operation,
			"analyzer":   fmt.Sprintf("%v", analyzer),
		},
		Cause: cause,
	}
}

// InvalidConfig creates an error for configuration validation failures.
func InvalidConfig(message string) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeInvalidConfig,
		Message: message,
	}
}

// --- Inspection helpers ---

// IsAnalysisError checks if an error is an AnalysisError.
func IsAnalysisError(err error) bool {
	var ae *AnalysisError
	return stderrors.As(err, &ae)
}

// AsAnalysisError converts an error to an AnalysisError if possible.
func AsAnalysisError(err error) (*AnalysisError, bool) {
	var ae *AnalysisError
	if stderrors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// CodeOf returns the error code carried by err, or an empty code if err is
// not an AnalysisError.
func CodeOf(err error) ErrorCode {
	if ae, ok := AsAnalysisError(err); ok {
		return ae.Code
	}
	return ""
}

// HasCode reports whether err is an AnalysisError with the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
