package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PurgeErrorResponse mirrors the body the scheduler expects on a failed run.
type PurgeErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
