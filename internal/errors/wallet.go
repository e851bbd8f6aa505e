package errors

var (
	ErrAccountNotFound = &DomainError{
		Code:    "ACCOUNT_NOT_FOUND",
		Message: "account not found",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrInvalidOperation = &DomainError{
		Code:    "INVALID_OPERATION",
		Message: "invalid operation type",
	}
	ErrInvalidAccountType = &DomainError{
		Code:    "INVALID_ACCOUNT_TYPE",
		Message: "invalid account type",
	}
	ErrNegativeBalance = &DomainError{
		Code:    "NEGATIVE_BALANCE",
		Message: "negative balance not allowed",
	}
	ErrLockTimeout = &DomainError{
		Code:    "LOCK_TIMEOUT",
		Message: "account lock wait timed out",
	}
)
