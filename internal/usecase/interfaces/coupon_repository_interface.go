package interfaces

import (
	"context"

	"academia_bere/internal/domain/entities"
)

// ICouponRepository abstracts DynamoDB persistence for Coupon.
//
// Lookups by a code that does not exist return a zero Coupon and a nil error.
type ICouponRepository interface {
	// CreateIfAbsent inserts the coupon only when no coupon with the same code
	// exists. created is false on a duplicate.
	CreateIfAbsent(ctx context.Context, c entities.Coupon) (created bool, err error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	List(ctx context.Context) ([]entities.Coupon, error)
	SetActive(ctx context.Context, code string, active bool) (entities.Coupon, error)
	Delete(ctx context.Context, code string) (deleted bool, err error)
}
