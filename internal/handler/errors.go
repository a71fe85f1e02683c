package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a request rejected before reaching
// the service layer (e.g. a query parameter given twice).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "bad_request", Message: message}}
}

// internalBody is the response for any error the client cannot act on.
func internalBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.SearchService.Window: validation error: checkin must be a YYYY-MM-DD date"
// → "checkin must be a YYYY-MM-DD date"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.SearchService.Window: validation error: ",
		"validation error: ",
	} {
		if rest, ok := strings.CutPrefix(msg, prefix); ok && rest != "" {
			return rest
		}
	}
	return msg
}

// writeJSON encodes body as the JSON response with the given status.
// Encoding failures can only be logged: the status line is already sent.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.ErrorContext(r.Context(), "write response", "error", err)
	}
}
