package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor hands out database handles bound to a request context.
// Repositories take the handle explicitly so one transaction can span
// several of them.
type Transactor interface {
	DB(ctx context.Context) *gorm.DB
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
