package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("UNIQUE constraint failed: customers.customer_code")

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "customer_code"))
	assert.False(t, IsUniqueViolation(err, "order_no"))
	assert.False(t, IsUniqueViolation(fmt.Errorf("database is locked"), ""))
	assert.False(t, IsUniqueViolation(nil, "customer_code"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(gorm.ErrRecordNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("find customer: %w", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(fmt.Errorf("database is locked")))
}
