package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one item the agent put in the cart. UnitPrice is the retail
// price the UI showed when the item was added; it becomes the line's snapshot
// price on insert.
type CartLine struct {
	ItemID    int64           `json:"item_id" validate:"required"`
	Qty       int             `json:"order_qty" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SubmitOrderInput carries a full checkout: a new booking for the customer
// with the given cart lines.
type SubmitOrderInput struct {
	CustomerID  int64      `json:"customer_id" validate:"required"`
	CreatedByID int64      `json:"created_by_id"`
	Lines       []CartLine `json:"lines" validate:"required,min=1,dive"`
}

// LineDetail is one booking line joined with the item's display name and
// code, as rendered on the order-details screen.
type LineDetail struct {
	LineID    int64           `gorm:"column:line_id"`
	BookingID int64           `gorm:"column:booking_id"`
	ItemID    int64           `gorm:"column:item_id"`
	ItemCode  string          `gorm:"column:item_code"`
	ItemName  string          `gorm:"column:item_name"`
	OrderQty  int             `gorm:"column:order_qty"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price"`
	Amount    decimal.Decimal `gorm:"column:amount"`
}

// BookingSummary is a booking header joined with its derived aggregates and
// the customer's display name, as rendered by the order list screens.
type BookingSummary struct {
	BookingID    int64           `gorm:"column:booking_id"`
	OrderNo      string          `gorm:"column:order_no"`
	CustomerID   int64           `gorm:"column:customer_id"`
	CustomerName string          `gorm:"column:customer_name"`
	OrderDate    time.Time       `gorm:"column:order_date"`
	ItemCount    int             `gorm:"column:item_count"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount"`
}
