package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one sellable catalog entry. The catalog is seeded externally and
// read-only in the app; order lines reference items by id but snapshot the
// retail price at insertion time.
type Item struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string          `gorm:"column:name;not null"`
	Code           string          `gorm:"column:item_code;not null"`
	RetailPrice    decimal.Decimal `gorm:"column:retail_price;type:decimal(12,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Item) TableName() string { return "items" }
