package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operation type tags recorded on audit entries.
const (
	OperationCredit     = "CREDIT"
	OperationDebit      = "DEBIT"
	OperationAdjustment = "ADJUSTMENT"
)

// BalanceAudit is one immutable record of a committed balance change.
// Records are append-only: nothing in the codebase updates or deletes
// them. NewBalance = PreviousBalance + BalanceChange holds for every row.
type BalanceAudit struct {
	ID              uuid.UUID  `gorm:"type:uuid;primarykey"`
	AccountID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	TransactionID   *uuid.UUID `gorm:"type:uuid;index"`
	PreviousBalance int64      `gorm:"not null"`
	NewBalance      int64      `gorm:"not null"`
	BalanceChange   int64      `gorm:"not null"`
	OperationType   string     `gorm:"size:50;not null"`
	CreatedAt       time.Time  `gorm:"index"`
	CreatedBy       string     `gorm:"size:50;not null"`
}

func (b *BalanceAudit) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedBy == "" {
		b.CreatedBy = "system"
	}
	return nil
}
