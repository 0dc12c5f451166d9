package apperror

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Authentication/authorization errors
const (
	// ErrCodeUnauthorized indicates a missing, malformed, or expired token.
	// All token failure modes share this code so the response never reveals
	// which one applied.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates an authenticated caller that does not own
	// the target resource.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested record was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeEmailTaken indicates the submitted email is already in use.
	ErrCodeEmailTaken ErrorCode = "EMAIL_TAKEN"
)

// Credential errors
const (
	// ErrCodeInvalidCredentials indicates a failed login. Unknown email and
	// wrong password deliberately produce the same code and message.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeInvalidCurrentPassword indicates a password change with a
	// current password that does not match the stored hash.
	ErrCodeInvalidCurrentPassword ErrorCode = "INVALID_CURRENT_PASSWORD"
)

// Input errors
const (
	// ErrCodeMissingFields indicates required fields were empty.
	ErrCodeMissingFields ErrorCode = "MISSING_FIELDS"
	// ErrCodeInvalidInput indicates a body that could not be parsed or bound.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected server-side failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
