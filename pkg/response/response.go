package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// FieldErrorsResponse carries per-field validation failures for metadata payloads.
type FieldErrorsResponse struct {
	Detail []FieldError `json:"detail"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
