package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerReceipt records one payment recovery against a customer. Immutable
// after creation. Attachment is a local file URI stored verbatim; the store
// never opens or validates the file.
type CustomerReceipt struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID int64           `gorm:"column:customer_id;not null"`
	CashBankID string          `gorm:"column:cash_bank_id;not null"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Note       *string         `gorm:"column:note"`
	Attachment *string         `gorm:"column:attachment"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (CustomerReceipt) TableName() string { return "customer_receipts" }
