package receipts

import (
	"context"
	"time"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	pkgerrors "github.com/fieldsalesapp/fieldsales-backend/pkg/errors"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/validate"
	"github.com/shopspring/decimal"
)

// AddReceiptInput carries the fields collected on the payment recovery form.
type AddReceiptInput struct {
	CustomerID int64           `json:"customer_id" validate:"required"`
	CashBankID string          `json:"cash_bank_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Note       *string         `json:"note"`
	Attachment *string         `json:"attachment"`
}

type customerLoader interface {
	Get(ctx context.Context, id int64) (*models.Customer, error)
}

// Service records and lists customer payment receipts.
type Service interface {
	Add(ctx context.Context, input AddReceiptInput) (*models.CustomerReceipt, error)
	ListAll(ctx context.Context) ([]ReceiptWithCustomer, error)
}

type service struct {
	repo      Repository
	customers customerLoader
	now       func() time.Time
}

// NewService builds a receipts service.
func NewService(repo Repository, customers customerLoader) Service {
	return &service{repo: repo, customers: customers, now: time.Now}
}

func (s *service) Add(ctx context.Context, input AddReceiptInput) (*models.CustomerReceipt, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "receipt amount must be greater than zero")
	}
	if _, err := s.customers.Get(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	receipt := &models.CustomerReceipt{
		CustomerID: input.CustomerID,
		CashBankID: input.CashBankID,
		Amount:     input.Amount,
		Note:       input.Note,
		Attachment: input.Attachment,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, receipt); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "record receipt")
	}
	return receipt, nil
}

func (s *service) ListAll(ctx context.Context) ([]ReceiptWithCustomer, error) {
	receipts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "list receipts")
	}
	return receipts, nil
}
