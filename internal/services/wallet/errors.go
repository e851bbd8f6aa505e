package wallet

import (
	"fmt"

	apperrors "walletledger/internal/errors"

	"github.com/google/uuid"
)

// Business failures are surfaced as *apperrors.DomainError values so
// callers can branch on a stable code; see internal/errors/wallet.go.

// NegativeBalanceError is returned when a mutation would drive a
// STANDARD account's balance below zero. It carries the account id and
// the rejected resulting balance; the enclosing unit aborts with no
// partial effects.
type NegativeBalanceError struct {
	AccountID        uuid.UUID
	AttemptedBalance int64
}

func (e *NegativeBalanceError) Error() string {
	return fmt.Sprintf("negative balance not allowed for account %s: resulting balance %d",
		e.AccountID, e.AttemptedBalance)
}

// Unwrap lets errors.Is match the generic domain error while errors.As
// still exposes the rejected balance.
func (e *NegativeBalanceError) Unwrap() error {
	return apperrors.ErrNegativeBalance
}
