package apierrors

// Application error codes
const (
	// System Errors
	ErrCodeDatabaseAccess     = "DATABASE_ACCESS_ERROR"     // Catalog file could not be read
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"       // A dependency is unavailable
	ErrCodeRequestValidation  = "REQUEST_VALIDATION_ERROR"  // Input validation failures
	ErrCodeInternalProcessing = "INTERNAL_PROCESSING_ERROR" // Logic execution failures
	ErrCodeResourceConstraint = "RESOURCE_CONSTRAINT_ERROR" // Rate limits and similar

	// Unexpected Errors
	ErrCodeSystemPanic    = "SYSTEM_PANIC"    // Recovered panics
	ErrCodeNetworkError   = "NETWORK_ERROR"   // Network-related failures
	ErrCodeMalformedData  = "MALFORMED_DATA"  // Invalid data formats (JSON parse errors, etc.)
	ErrCodeRequestTimeout = "REQUEST_TIMEOUT" // Operation timeouts
	ErrCodeUnknown        = "UNKNOWN_ERROR"   // Fallback for unclassified errors
)

// Transport errors raised by the router itself
const (
	ErrCodeRouteNotFound    = "ROUTE_NOT_FOUND"    // No handler registered for the path
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // Path exists under another method
)
