package repositories

import (
	"testing"
	"time"

	"walletledger/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (LedgerRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewLedgerRepository(db, DefaultLockTimeout), mock
}

func accountRows(account *models.Account) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "account_type", "balance", "version", "created_at", "updated_at",
	}).AddRow(
		account.ID.String(), account.Name, string(account.AccountType),
		account.Balance, account.Version, account.CreatedAt, account.UpdatedAt,
	)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	account := &models.Account{
		ID:          uuid.New(),
		Name:        "Joao Silva",
		AccountType: models.AccountTypeStandard,
		Balance:     10000,
		Version:     3,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE id = (.+)`).
		WillReturnRows(accountRows(account))

	got, err := repo.GetByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, int64(10000), got.Balance)
	assert.Equal(t, int64(3), got.Version)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGetByIDForUpdate_LocksRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	account := &models.Account{
		ID:          uuid.New(),
		Name:        "Loja ABC",
		AccountType: models.AccountTypeMerchant,
		Balance:     5000,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout = '5000ms'`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(accountRows(account))
	mock.ExpectCommit()

	err := repo.ExecuteInTransaction(func(tx LedgerRepository) error {
		got, err := tx.GetByIDForUpdate(account.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, int64(5000), got.Balance)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUpdate_LockTimeout(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE id = (.+) FOR UPDATE`).
		WillReturnError(&pgconn.PgError{Code: pgLockNotAvailable, Message: "canceling statement due to lock timeout"})
	mock.ExpectRollback()

	err := repo.ExecuteInTransaction(func(tx LedgerRepository) error {
		_, err := tx.GetByIDForUpdate(uuid.New())
		return err
	})
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_IncrementsVersion(t *testing.T) {
	repo, mock := newMockRepo(t)

	account := &models.Account{
		ID:          uuid.New(),
		Name:        "Joao Silva",
		AccountType: models.AccountTypeStandard,
		Balance:     15000,
		Version:     3,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(account)
	require.NoError(t, err)
	assert.Equal(t, int64(4), account.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRollbackLeavesNoAuditRecord(t *testing.T) {
	repo, mock := newMockRepo(t)

	account := &models.Account{
		ID:          uuid.New(),
		Name:        "Joao Silva",
		AccountType: models.AccountTypeStandard,
		Balance:     10000,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "accounts" WHERE id = (.+) FOR UPDATE`).
		WillReturnRows(accountRows(account))
	mock.ExpectRollback()

	// The unit aborts after the locked read; neither the balance write
	// nor an audit insert may reach the database.
	err := repo.ExecuteInTransaction(func(tx LedgerRepository) error {
		if _, err := tx.GetByIDForUpdate(account.ID); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAuditHistory_NewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	accountID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "account_id", "transaction_id", "previous_balance", "new_balance",
		"balance_change", "operation_type", "created_at", "created_by",
	}).
		AddRow(uuid.NewString(), accountID.String(), nil, 15000, 12000, -3000, "DEBIT", now, "system").
		AddRow(uuid.NewString(), accountID.String(), nil, 10000, 15000, 5000, "CREDIT", now.Add(-time.Minute), "system")

	mock.ExpectQuery(`SELECT (.+) FROM "balance_audits" WHERE account_id = (.+) ORDER BY created_at DESC`).
		WithArgs(accountID).
		WillReturnRows(rows)

	records, err := repo.GetAuditHistory(accountID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(-3000), records[0].BalanceChange)
	for _, record := range records {
		assert.Equal(t, record.PreviousBalance+record.BalanceChange, record.NewBalance)
	}
}

func TestGetAuditByTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	txID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "account_id", "transaction_id", "previous_balance", "new_balance",
		"balance_change", "operation_type", "created_at", "created_by",
	}).
		AddRow(uuid.NewString(), uuid.NewString(), txID.String(), 10000, 7500, -2500, "TRANSFER_DEBIT", time.Now(), "system").
		AddRow(uuid.NewString(), uuid.NewString(), txID.String(), 0, 2500, 2500, "TRANSFER_CREDIT", time.Now(), "system")

	mock.ExpectQuery(`SELECT (.+) FROM "balance_audits" WHERE transaction_id = (.+)`).
		WithArgs(txID).
		WillReturnRows(rows)

	records, err := repo.GetAuditByTransaction(txID)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
