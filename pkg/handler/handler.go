package handler

const (
	// RequestIDHeader carries the request id echoed back to the caller.
	RequestIDHeader = "X-Request-Id"

	// Error codes returned in ErrorEnvelope.
	CodeInvalidRequest = "invalid_request"
	CodeForbidden      = "forbidden"
)

// APIError is the JSON error body for requests that never reach dispatch.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
