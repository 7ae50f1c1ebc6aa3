package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base provides a shared foundation for domain repositories.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Scoped returns a Base bound to the provided transaction, or the receiver
// when tx is nil. Repositories build their WithTx on top of this.
func (b Base) Scoped(tx *gorm.DB) Base {
	if tx == nil {
		return b
	}
	return Base{db: tx}
}
