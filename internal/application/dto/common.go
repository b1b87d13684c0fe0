package dto

// MessageResponse error body for the customer/item endpoints: {"message": ...}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse error body for the invoice endpoints. Details carries the
// underlying human-readable message(s) when present.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
