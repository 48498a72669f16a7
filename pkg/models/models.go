package models

// ErrorResponse is the shared error envelope for all API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// OKResponse is the shared acknowledgement envelope for deletions and
// other operations with no meaningful payload.
type OKResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// Actor is the authenticated (or keyed) identity performing a request,
// used for audit-trail labels and visibility policy.
type Actor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// System is the actor label used for automatic history entries.
const SystemActor = "Sistema"
