package entity

// Response is the envelope of every API reply. Status is 1 on success and 0
// on failure.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// RequestMeta describes the HTTP request behind a mutation, for the audit trail.
type RequestMeta struct {
	URL       string
	RequestID string
	UserAgent string
}
