package wallet

import (
	"context"

	"walletledger/internal/models"

	"github.com/google/uuid"
)

// Service defines the wallet ledger service interface
type Service interface {
	// Balance mutation. UpdateBalance is the only path that changes an
	// account's balance; balanceChange is signed, in minor units.
	// A transactionID of uuid.Nil records the audit entry ungrouped.
	UpdateBalance(ctx context.Context, accountID uuid.UUID, balanceChange int64,
		operationType string, transactionID uuid.UUID) (*BalanceResult, error)

	// Balance queries (non-locking)
	GetBalance(ctx context.Context, accountID uuid.UUID) (*BalanceResult, error)
	HasSufficientFunds(ctx context.Context, accountID uuid.UUID, amount int64) (bool, error)

	// Audit queries
	GetAuditHistory(ctx context.Context, accountID uuid.UUID) ([]models.BalanceAudit, error)
	GetAuditByTransaction(ctx context.Context, transactionID uuid.UUID) ([]models.BalanceAudit, error)

	// Account lifecycle
	CreateAccount(ctx context.Context, name string, accountType models.AccountType) (*models.Account, error)
}
