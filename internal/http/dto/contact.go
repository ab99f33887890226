package dto

// ContactRequest carries the raw form fields. Field rules live in the
// contact package, not in binding tags, so rejected input produces the
// per-field messages the form renders.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type ContactSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ContactValidationResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

type ContactErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
