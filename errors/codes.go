package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Defects
const (
	// ErrCodeInvariant indicates an adapter found its own state inconsistent.
	ErrCodeInvariant ErrorCode = "INVARIANT_VIOLATION"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Source errors
const (
	// ErrCodeSourceFailed indicates a fallible producer returned an error.
	ErrCodeSourceFailed ErrorCode = "SOURCE_FAILED"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates settings could not be loaded or built.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeValidation indicates settings failed struct validation.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeSourceFailed: true,
	ErrCodeInvariant:    false,
	ErrCodeInternal:     false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
