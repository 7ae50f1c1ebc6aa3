package models

import (
	"time"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/enums"
)

// Customer is a field-sales account the agent manages. Latitude and longitude
// are either both set or both null; SetLocation writes them together.
type Customer struct {
	ID        int64             `gorm:"column:id;primaryKey;autoIncrement"`
	Code      string            `gorm:"column:customer_code;not null"`
	Name      string            `gorm:"column:name;not null"`
	Phone     *string           `gorm:"column:phone"`
	LastSeen  *time.Time        `gorm:"column:last_seen"`
	Visited   enums.VisitStatus `gorm:"column:visited;not null;default:'Unvisited'"`
	Latitude  *float64          `gorm:"column:latitude"`
	Longitude *float64          `gorm:"column:longitude"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Customer) TableName() string { return "customers" }

// HasLocation reports whether both coordinates are present.
func (c Customer) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}
