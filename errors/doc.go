// Package errors provides unified error handling for the analysis engine.
// It implements a structured error type with machine-readable codes, a
// details map for context, and cause wrapping compatible with errors.Is/As.
//
// Validation errors (incorrect input shape, kind mismatch, missing key) are
// fail-fast and never wrapped; failures inside user-supplied analyzer logic
// are uniformly normalized into ANALYZER_FAILURE.
package errors
