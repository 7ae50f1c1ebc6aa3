package receipts

import (
	"context"
	"time"

	"github.com/fieldsalesapp/fieldsales-backend/internal/repo"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceiptWithCustomer joins a receipt with the customer's display name for
// the payments report screen.
type ReceiptWithCustomer struct {
	ID           int64           `gorm:"column:id"`
	CustomerID   int64           `gorm:"column:customer_id"`
	CustomerName string          `gorm:"column:customer_name"`
	CashBankID   string          `gorm:"column:cash_bank_id"`
	Amount       decimal.Decimal `gorm:"column:amount"`
	Note         *string         `gorm:"column:note"`
	Attachment   *string         `gorm:"column:attachment"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

// Repository is the persistence surface for payment-recovery receipts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, receipt *models.CustomerReceipt) error
	ListAll(ctx context.Context) ([]ReceiptWithCustomer, error)
}

type repository struct {
	base repo.Base
}

// NewRepository builds a receipts repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: r.base.Scoped(tx)}
}

func (r *repository) Create(ctx context.Context, receipt *models.CustomerReceipt) error {
	return r.base.DB(ctx).Create(receipt).Error
}

// ListAll returns every receipt newest-first with the customer name joined
// in.
func (r *repository) ListAll(ctx context.Context) ([]ReceiptWithCustomer, error) {
	var receipts []ReceiptWithCustomer
	err := r.base.DB(ctx).
		Raw(`
SELECT r.id,
       r.customer_id,
       c.name AS customer_name,
       r.cash_bank_id,
       r.amount,
       r.note,
       r.attachment,
       r.created_at
FROM customer_receipts r
JOIN customers c ON c.id = r.customer_id
ORDER BY r.id DESC`).
		Scan(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}
