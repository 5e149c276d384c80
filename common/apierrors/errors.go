package apierrors

import "fmt"

// ErrorCategory says whether an error is a storefront rule the caller broke
// or a failure of the service itself.
type ErrorCategory string

const (
	CategoryBusiness    ErrorCategory = "business"    // unknown product, stock, cart limit
	CategoryApplication ErrorCategory = "application" // storage, validation, transport
)

// AppError defines a standard application error.
type AppError struct {
	Code     string         // Application-specific error code
	Message  string         // User-friendly error message
	Category ErrorCategory  // Business or application
	Err      error          // Original underlying error (optional)
	Context  map[string]any // Extra fields for logs, never rendered to clients
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("AppError(Code=%s, Message=%s, Cause=%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("AppError(Code=%s, Message=%s)", e.Code, e.Message)
}

// Unwrap provides compatibility for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext attaches a key/value pair that the error handler logs.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewBusinessError creates an error for a violated storefront rule.
func NewBusinessError(code, message string, cause error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryBusiness,
		Err:      cause,
	}
}

// NewApplicationError creates an error for a technical or infrastructure failure.
func NewApplicationError(code, message string, cause error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryApplication,
		Err:      cause,
	}
}

// IsBusiness reports whether the error is a business rule violation.
func (e *AppError) IsBusiness() bool {
	return e.Category == CategoryBusiness
}
