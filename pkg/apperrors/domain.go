package apperrors

import "net/http"

// Domain-level helpers shared by the services.

// NewNotFoundError builds a 404 for a missing record.
func NewNotFoundError(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// DatabaseError wraps a store failure as a generic 500. The cause is kept
// for operational logging but never serialized to the caller.
func DatabaseError(domain string, err error) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "Internal server error", http.StatusInternalServerError)
}

// Sentinel auth errors used by the session gate.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid password", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired       = New(CodeTokenExpired, "auth", "Token expired", http.StatusUnauthorized)
)
