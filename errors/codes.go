package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction and traversal errors (fail-fast, never wrapped)
const (
	// ErrCodeIncorrectInputDataType indicates the payload shape does not
	// match the container type being constructed.
	ErrCodeIncorrectInputDataType ErrorCode = "INCORRECT_INPUT_DATA_TYPE"
	// ErrCodeMissingKey indicates a nested lookup traversed into an absent key.
	ErrCodeMissingKey ErrorCode = "MISSING_KEY"
)

// Dispatch and validation errors (fail-fast, never wrapped)
const (
	// ErrCodeNotAnAnalyzer indicates the object carries no recognized kind tag.
	ErrCodeNotAnAnalyzer ErrorCode = "NOT_AN_ANALYZER"
	// ErrCodeIncorrectAnalyzer indicates an operation was invoked with an
	// analyzer of a different kind.
	ErrCodeIncorrectAnalyzer ErrorCode = "INCORRECT_ANALYZER"
	// ErrCodeTerminalContainer indicates an analysis operation was invoked
	// on a terminal container.
	ErrCodeTerminalContainer ErrorCode = "TERMINAL_CONTAINER"
)

// Execution errors
const (
	// ErrCodeAnalyzerFailure indicates user-supplied analyzer logic failed
	// while an operation was executing.
	ErrCodeAnalyzerFailure ErrorCode = "ANALYZER_FAILURE"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates a configuration value failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

var wrappedCodes = map[ErrorCode]bool{
	ErrCodeAnalyzerFailure: true,
}

// IsWrappedCode returns true if the error code normalizes an underlying
// failure rather than reporting a validation problem of its own.
func IsWrappedCode(code ErrorCode) bool {
	return wrappedCodes[code]
}
