package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// failing endpoint. It doubles as an error value so middleware can
// pass it around.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to fetch quotes"`
	ErrorDetails string    `json:"error,omitempty" example:"context deadline exceeded"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse with the current
// timestamp. err may be nil when there is no underlying cause worth
// exposing.
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now(),
	}
}
