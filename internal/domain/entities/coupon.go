package entities

import (
	"strings"
	"time"
)

// Coupon is a percentage discount code managed by the docente.
//
// Storage model (DynamoDB):
//   - PK: code (normalized, upper-case)
//
// Using the code as the key makes "at most one coupon per code" a property of
// the table itself instead of a query-then-insert check.
type Coupon struct {
	Code               string    `json:"code"`
	DiscountPercentage int       `json:"discount_percentage"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
}

// CouponDiscount is the result of validating a coupon code.
type CouponDiscount struct {
	Code       string
	Percentage int
	Fraction   float64
}

// NormalizeCouponCode trims and upper-cases a user supplied code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c Coupon) Discount() CouponDiscount {
	return CouponDiscount{
		Code:       c.Code,
		Percentage: c.DiscountPercentage,
		Fraction:   float64(c.DiscountPercentage) / 100,
	}
}
