package models

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse carries a single human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// QuoteErrorResponse is the error body of the shipping quote endpoint,
// which reports failures under "error" instead of "message".
type QuoteErrorResponse struct {
	Error string `json:"error"`
}
