package dto

// MessageResponse is the standard `{msg: ...}` body used for both
// success messages and expected failures.
type MessageResponse struct {
	Msg string `json:"msg" example:"Student updated successfully"`
}

// NewMessage creates a MessageResponse
func NewMessage(msg string) MessageResponse {
	return MessageResponse{Msg: msg}
}

// ValidationErrorItem is a single field-validation failure
type ValidationErrorItem struct {
	Msg string `json:"msg" example:"Please include a valid email"`
}

// ValidationErrorsResponse is the `{errors: [{msg: ...}, ...]}` body
// returned for field-validation failures.
type ValidationErrorsResponse struct {
	Errors []ValidationErrorItem `json:"errors"`
}

// NewValidationErrors creates a ValidationErrorsResponse from messages
func NewValidationErrors(msgs ...string) ValidationErrorsResponse {
	items := make([]ValidationErrorItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, ValidationErrorItem{Msg: m})
	}
	return ValidationErrorsResponse{Errors: items}
}
