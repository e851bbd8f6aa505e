package repositories

import (
	"errors"

	"walletledger/internal/models"

	"github.com/google/uuid"
)

// Repository-level errors, mapped to domain errors by the service layer.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrLockTimeout     = errors.New("lock wait timeout exceeded")
)

// AccountRepository defines the account store contract consumed by the
// wallet service.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)

	// GetByIDForUpdate reads the account under an exclusive row lock.
	// It is only valid inside ExecuteInTransaction; the lock is held
	// until the enclosing transaction commits or rolls back. Waiting
	// longer than the configured bound fails with ErrLockTimeout.
	GetByIDForUpdate(id uuid.UUID) (*models.Account, error)

	// Update persists the account and increments its version counter.
	Update(account *models.Account) error
}

// AuditRepository defines the append-only balance audit ledger contract.
// Records are never updated or deleted.
type AuditRepository interface {
	CreateAudit(record *models.BalanceAudit) error

	// GetAuditHistory returns an account's audit records, newest first.
	GetAuditHistory(accountID uuid.UUID) ([]models.BalanceAudit, error)

	// GetAuditByTransaction returns all audit records sharing a
	// transaction id. Ordering is not guaranteed.
	GetAuditByTransaction(transactionID uuid.UUID) ([]models.BalanceAudit, error)
}

// LedgerRepository combines account store and audit ledger access bound
// to one database session, so a balance write and its audit append can
// share a single transaction.
type LedgerRepository interface {
	AccountRepository
	AuditRepository

	// ExecuteInTransaction runs fn inside one transaction. The repository
	// passed to fn is bound to that transaction; any error rolls back
	// every write made through it.
	ExecuteInTransaction(fn func(LedgerRepository) error) error
}
