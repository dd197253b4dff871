package apperrors

// ErrorCode identifies the class of an application error.
type ErrorCode string

const (
	// System and unknown errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeUnknownError  ErrorCode = "UNKNOWN_ERROR"

	// Business-logic errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeReferenceError   ErrorCode = "REFERENCE_ERROR"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidState     ErrorCode = "INVALID_STATE"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodePermissionDenied   ErrorCode = "PERMISSION_DENIED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
