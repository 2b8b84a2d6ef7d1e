package dto

// DataResponse wraps a successful payload
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse carries a single error message
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries an informational message, used by operations
// that have no payload to return
type MessageResponse struct {
	Message string `json:"message"`
}

// NewDataResponse wraps data in the standard success envelope
func NewDataResponse(data interface{}) DataResponse {
	return DataResponse{Data: data}
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewMessageResponse creates a message envelope
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
