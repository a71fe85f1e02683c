package domain

import "errors"

// ErrValidation is returned by service functions when input fails a format
// rule (e.g. a date that is not YYYY-MM-DD).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
