package apiresponses

import "time"

// SuccessResponse is the envelope every 2xx storefront response uses.
type SuccessResponse struct {
	Status    string `json:"status"` // Always "success"
	Data      any    `json:"data"`
	RequestID string `json:"requestId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ErrorResponse is written by the error handler middleware.
type ErrorResponse struct {
	Status string      `json:"status"` // Always "error"
	Error  ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

func NewSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Status:    "success",
		Data:      data,
		Timestamp: now(),
	}
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Status: "error",
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Timestamp: now(),
		},
	}
}

// WithRequestID adds a request ID to the success response
func (r SuccessResponse) WithRequestID(requestID string) SuccessResponse {
	r.RequestID = requestID
	return r
}

// WithRequestID adds a request ID to the error response
func (r ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	r.Error.RequestID = requestID
	return r
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
