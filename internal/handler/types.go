package handler

import "github.com/pkordes/staysearch/internal/domain"

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// SearchURLResponse is the body of GET /api/search/url.
type SearchURLResponse struct {
	URL string `json:"url"`
}

// ConstraintsResponse is the body of GET /api/search/constraints.
type ConstraintsResponse = domain.DateWindow

// ErrorResponse is the body of every 4xx/5xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
