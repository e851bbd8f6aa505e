package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountType determines the balance-floor rule applied when an account
// is mutated.
type AccountType string

const (
	// AccountTypeStandard accounts send and receive; their balance must
	// never go negative.
	AccountTypeStandard AccountType = "STANDARD"

	// AccountTypeMerchant accounts are receive-only in the surrounding
	// system and may carry a negative balance (an implicit float).
	AccountTypeMerchant AccountType = "MERCHANT"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeStandard, AccountTypeMerchant:
		return true
	}
	return false
}

// AllowsBalance reports whether an account of this type may hold the
// given balance. Unknown types get the strictest rule.
func (t AccountType) AllowsBalance(balance int64) bool {
	switch t {
	case AccountTypeMerchant:
		return true
	default:
		return balance >= 0
	}
}

// Account holds a monetary balance in minor currency units. Balances are
// mutated only through the wallet service, which serializes writes with a
// per-row lock; Version increments on every successful save as a cheap
// external change signal.
type Account struct {
	ID          uuid.UUID   `gorm:"type:uuid;primarykey"`
	Name        string      `gorm:"size:100;not null"`
	AccountType AccountType `gorm:"size:20;not null"`
	Balance     int64       `gorm:"not null"`
	Version     int64       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	// Ensure balance starts at 0
	a.Balance = 0
	a.Version = 0
	return nil
}
