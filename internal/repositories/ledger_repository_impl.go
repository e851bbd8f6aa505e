package repositories

import (
	"errors"
	"fmt"
	"time"

	"walletledger/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultLockTimeout bounds how long a mutation waits for another
// in-flight mutation's row lock before failing with ErrLockTimeout.
const DefaultLockTimeout = 5 * time.Second

// Postgres error code for "lock_not_available", raised when lock_timeout
// expires while waiting on a row lock.
const pgLockNotAvailable = "55P03"

type ledgerRepository struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewLedgerRepository creates a ledger repository on top of the given
// gorm database handle.
func NewLedgerRepository(db *gorm.DB, lockTimeout time.Duration) LedgerRepository {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &ledgerRepository{db: db, lockTimeout: lockTimeout}
}

func (r *ledgerRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *ledgerRepository) GetByIDForUpdate(id uuid.UUID) (*models.Account, error) {
	// SET LOCAL scopes the timeout to the enclosing transaction.
	timeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
	if err := r.db.Exec(timeout).Error; err != nil {
		return nil, fmt.Errorf("failed to set lock timeout: %w", err)
	}

	var account models.Account
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return nil, ErrLockTimeout
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return &account, nil
}

func (r *ledgerRepository) Update(account *models.Account) error {
	// Version is a change-detection signal for external observers, not a
	// correctness mechanism; the row lock already serializes writers.
	account.Version++
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (r *ledgerRepository) CreateAudit(record *models.BalanceAudit) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetAuditHistory(accountID uuid.UUID) ([]models.BalanceAudit, error) {
	var records []models.BalanceAudit
	err := r.db.
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get audit history: %w", err)
	}
	return records, nil
}

func (r *ledgerRepository) GetAuditByTransaction(transactionID uuid.UUID) ([]models.BalanceAudit, error) {
	var records []models.BalanceAudit
	err := r.db.
		Where("transaction_id = ?", transactionID).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get audit records by transaction: %w", err)
	}
	return records, nil
}

func (r *ledgerRepository) ExecuteInTransaction(fn func(LedgerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &ledgerRepository{db: tx, lockTimeout: r.lockTimeout}
		return fn(txRepo)
	})
}
