package models

// ErrorResponse is returned when a single resource cannot be served
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse lists every problem found in a write request
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// Messages surfaced to API clients
const (
	MsgRestaurantNotFound      = "Restaurant not found"
	MsgPizzaNotFound           = "Pizza not found"
	MsgRestaurantPizzaNotFound = "RestaurantPizza not found"
	MsgInvalidJSON             = "Invalid JSON data"
	MsgWriteFailed             = "Could not save restaurant pizza"
	MsgInternalError           = "Internal server error"
)

// NewErrorResponse creates a single-message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates a multi-message error body
func NewErrorsResponse(messages ...string) ErrorsResponse {
	if messages == nil {
		messages = []string{}
	}
	return ErrorsResponse{Errors: messages}
}
