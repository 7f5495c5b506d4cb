package dto

// ErrorResponseDTO is the common error body.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"post not found"`
}

// MessageResponseDTO is a plain message body.
type MessageResponseDTO struct {
	Message string `json:"message" example:"Hello World"`
}

// FieldErrorDTO is one rejected field of a request body.
type FieldErrorDTO struct {
	Field  string `json:"field" example:"email"`
	Reason string `json:"reason" example:"value is not a valid email address"`
}

// ValidationErrorResponseDTO is returned with 422.
type ValidationErrorResponseDTO struct {
	Error   string          `json:"error" example:"validation failed"`
	Details []FieldErrorDTO `json:"details"`
}
