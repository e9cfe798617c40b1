package dto

import "time"

// ErrorResponse is the standardized error payload returned by all endpoints.
//
// Fields:
//   - Message: human-readable summary of what went wrong.
//   - ErrorDetails: underlying error text, when one exists (omitted otherwise).
//   - Timestamp: moment the response was built.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to fetch products"`
	ErrorDetails string    `json:"error,omitempty" example:"connection refused"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
