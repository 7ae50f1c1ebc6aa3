package models

import "time"

// OrderBooking is the header record for one customer order. Totals are never
// stored on the header; item count and amount are derived by summing lines.
type OrderBooking struct {
	BookingID   int64     `gorm:"column:booking_id;primaryKey;autoIncrement"`
	OrderNo     string    `gorm:"column:order_no;not null;unique"`
	CustomerID  int64     `gorm:"column:customer_id;not null"`
	OrderDate   time.Time `gorm:"column:order_date;not null"`
	CreatedByID int64     `gorm:"column:created_by_id;not null"`
	CreatedDate time.Time `gorm:"column:created_date;not null"`
}

func (OrderBooking) TableName() string { return "order_bookings" }
