// Package errors defines domain error types shared across services.
package errors

// DomainError is a business-rule failure with a stable machine-readable
// code, so callers can distinguish it from transport or infrastructure
// failures and choose an appropriate external status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
