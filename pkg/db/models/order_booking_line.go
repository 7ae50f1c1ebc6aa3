package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderBookingLine is one item-quantity-price row within a booking. UnitPrice
// is a snapshot taken at insertion time, never a live catalog reference, and
// Amount must equal OrderQty x UnitPrice after every mutation. At most one
// line exists per (booking_id, item_id); adding the same item again merges
// quantities instead of inserting a second row.
type OrderBookingLine struct {
	LineID    int64           `gorm:"column:line_id;primaryKey;autoIncrement"`
	BookingID int64           `gorm:"column:booking_id;not null"`
	ItemID    int64           `gorm:"column:item_id;not null"`
	OrderQty  int             `gorm:"column:order_qty;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2);not null"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (OrderBookingLine) TableName() string { return "order_booking_lines" }
