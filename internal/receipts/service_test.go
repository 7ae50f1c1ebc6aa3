package receipts

import (
	"context"
	"testing"
	"time"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	pkgerrors "github.com/fieldsalesapp/fieldsales-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReceiptsRepo struct {
	created []*models.CustomerReceipt
}

func (f *fakeReceiptsRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeReceiptsRepo) Create(ctx context.Context, receipt *models.CustomerReceipt) error {
	receipt.ID = int64(len(f.created) + 1)
	f.created = append(f.created, receipt)
	return nil
}

func (f *fakeReceiptsRepo) ListAll(ctx context.Context) ([]ReceiptWithCustomer, error) {
	return nil, nil
}

type fakeReceiptCustomerLoader struct {
	known map[int64]*models.Customer
}

func (f *fakeReceiptCustomerLoader) Get(ctx context.Context, id int64) (*models.Customer, error) {
	if customer, ok := f.known[id]; ok {
		return customer, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
}

func newReceiptsTestService(repo *fakeReceiptsRepo) *service {
	loader := &fakeReceiptCustomerLoader{known: map[int64]*models.Customer{
		1: {ID: 1, Code: "C-1", Name: "Corner Shop"},
	}}
	return NewService(repo, loader).(*service)
}

func TestServiceAddRequiresFields(t *testing.T) {
	svc := newReceiptsTestService(&fakeReceiptsRepo{})

	_, err := svc.Add(context.Background(), AddReceiptInput{CustomerID: 1})
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = svc.Add(context.Background(), AddReceiptInput{
		CashBankID: "CASH-01",
		Amount:     decimal.NewFromInt(500),
	})
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestServiceAddRejectsNonPositiveAmount(t *testing.T) {
	svc := newReceiptsTestService(&fakeReceiptsRepo{})

	_, err := svc.Add(context.Background(), AddReceiptInput{
		CustomerID: 1,
		CashBankID: "CASH-01",
		Amount:     decimal.NewFromInt(-10),
	})
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestServiceAddUnknownCustomer(t *testing.T) {
	svc := newReceiptsTestService(&fakeReceiptsRepo{})

	_, err := svc.Add(context.Background(), AddReceiptInput{
		CustomerID: 404,
		CashBankID: "CASH-01",
		Amount:     decimal.NewFromInt(500),
	})
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestServiceAddStampsCreatedAt(t *testing.T) {
	repo := &fakeReceiptsRepo{}
	svc := newReceiptsTestService(repo)
	now := time.Date(2026, 5, 10, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	receipt, err := svc.Add(context.Background(), AddReceiptInput{
		CustomerID: 1,
		CashBankID: "CASH-01",
		Amount:     decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.True(t, receipt.CreatedAt.Equal(now))
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].Amount.Equal(decimal.NewFromInt(500)))
}
