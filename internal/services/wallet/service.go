package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "walletledger/internal/errors"
	"walletledger/internal/models"
	"walletledger/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	repo    repositories.LedgerRepository
	cache   Cache
	config  Config
	metrics MetricsCollector
}

// NewService creates a new wallet ledger service
func NewService(
	repo repositories.LedgerRepository,
	cache Cache,
	config Config,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		cache:   cache,
		config:  config,
		metrics: metrics,
	}
}

// UpdateBalance applies a signed balance change to one account. The lock
// acquisition, balance write and audit append run as one transaction:
// any failure after the lock is taken rolls back both writes.
func (s *service) UpdateBalance(ctx context.Context, accountID uuid.UUID, balanceChange int64,
	operationType string, transactionID uuid.UUID) (*BalanceResult, error) {
	if balanceChange == 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if operationType == "" {
		return nil, apperrors.ErrInvalidOperation
	}

	start := time.Now()
	var result *BalanceResult
	var previousBalance int64

	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		account, err := tx.GetByIDForUpdate(accountID)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrAccountNotFound):
				return apperrors.ErrAccountNotFound
			case errors.Is(err, repositories.ErrLockTimeout):
				return apperrors.ErrLockTimeout
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		previousBalance = account.Balance
		newBalance := previousBalance + balanceChange

		if !account.AccountType.AllowsBalance(newBalance) {
			return &NegativeBalanceError{AccountID: accountID, AttemptedBalance: newBalance}
		}

		account.Balance = newBalance
		if err := tx.Update(account); err != nil {
			return err
		}

		audit := &models.BalanceAudit{
			AccountID:       accountID,
			PreviousBalance: previousBalance,
			NewBalance:      newBalance,
			BalanceChange:   balanceChange,
			OperationType:   operationType,
			CreatedBy:       actorFrom(ctx),
		}
		if transactionID != uuid.Nil {
			audit.TransactionID = &transactionID
		}
		if err := tx.CreateAudit(audit); err != nil {
			return err
		}

		result = &BalanceResult{
			AccountID:     account.ID,
			Balance:       account.Balance,
			LastUpdatedAt: account.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		s.metrics.RecordError("update_balance", errType(err))
		return nil, err
	}

	// Invalidate the cached balance read
	if err := s.cache.Delete(ctx, s.balanceKey(accountID)); err != nil {
		s.metrics.RecordError("update_balance", "cache_invalidation")
	}

	s.metrics.RecordBalanceChange(accountID, previousBalance, result.Balance)
	s.metrics.RecordOperationDuration("update_balance", time.Since(start))

	return result, nil
}

func (s *service) GetBalance(ctx context.Context, accountID uuid.UUID) (*BalanceResult, error) {
	key := s.balanceKey(accountID)

	// Try cache first
	var cached BalanceResult
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	account, err := s.repo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	result := &BalanceResult{
		AccountID:     account.ID,
		Balance:       account.Balance,
		LastUpdatedAt: account.UpdatedAt,
	}

	// Best effort; a failed cache write never fails the read
	if err := s.cache.SetWithTTL(ctx, key, result, s.config.CacheTTL); err != nil {
		s.metrics.RecordError("get_balance", "cache_write")
	}

	return result, nil
}

// HasSufficientFunds is advisory only: it reads without a lock, so a
// concurrent mutation may invalidate the answer before the caller acts.
// The authoritative check happens inside UpdateBalance under lock.
func (s *service) HasSufficientFunds(ctx context.Context, accountID uuid.UUID, amount int64) (bool, error) {
	if amount <= 0 {
		return false, apperrors.ErrInvalidAmount
	}

	result, err := s.GetBalance(ctx, accountID)
	if err != nil {
		return false, err
	}

	return result.Balance >= amount, nil
}

func (s *service) GetAuditHistory(ctx context.Context, accountID uuid.UUID) ([]models.BalanceAudit, error) {
	records, err := s.repo.GetAuditHistory(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit history: %w", err)
	}
	return records, nil
}

func (s *service) GetAuditByTransaction(ctx context.Context, transactionID uuid.UUID) ([]models.BalanceAudit, error) {
	records, err := s.repo.GetAuditByTransaction(transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit records: %w", err)
	}
	return records, nil
}

func (s *service) CreateAccount(ctx context.Context, name string, accountType models.AccountType) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.ErrInvalidOperation
	}
	if !accountType.IsValid() {
		return nil, apperrors.ErrInvalidAccountType
	}

	account := &models.Account{
		Name:        name,
		AccountType: accountType,
	}
	if err := s.repo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

func (s *service) balanceKey(accountID uuid.UUID) string {
	return s.cache.GenerateKey(balanceCachePrefix, accountID)
}

// errType maps an error to a stable label for metrics.
func errType(err error) string {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return "internal"
}
