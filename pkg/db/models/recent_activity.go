package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentActivity is one append-only feed entry summarizing a completed order
// submission. CustomerName is a denormalized snapshot so the feed stays
// readable if the customer is later renamed or removed.
type RecentActivity struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement"`
	BookingID    int64           `gorm:"column:booking_id;not null"`
	CustomerName string          `gorm:"column:customer_name;not null"`
	ItemCount    int             `gorm:"column:item_count;not null"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2);not null"`
	ActivityDate time.Time       `gorm:"column:activity_date;not null"`
}

func (RecentActivity) TableName() string { return "recent_activity" }
