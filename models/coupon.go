package models

import "time"

const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"

	CouponApplicableAll      = "all"
	CouponApplicableProducts = "products"
	CouponApplicableCart     = "cart"
)

type Coupon struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Code               string    `gorm:"unique" json:"code" validate:"required,max=50"`
	Slug               string    `gorm:"uniqueIndex" json:"slug"`
	Description        string    `json:"description"`
	DiscountType       string    `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue      float64   `json:"discount_value" validate:"min=0"`
	MinPurchaseAmount  float64   `json:"min_purchase_amount" validate:"min=0"`
	MaxDiscountAmount  *float64  `json:"max_discount_amount" validate:"omitempty,min=0"`
	ExpireAt           time.Time `json:"expire_at" validate:"required"`
	UsageLimit         *int      `json:"usage_limit" validate:"omitempty,min=1"` // nil means unlimited
	UsedCount          int       `json:"used_count"`
	IsActive           bool      `gorm:"default:true" json:"is_active"`
	ApplicableTo       string    `gorm:"default:all" json:"applicable_to" validate:"omitempty,oneof=all products cart"`
	ApplicableProducts IDSet     `gorm:"type:text;serializer:json" json:"applicable_products"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.ExpireAt)
}

func (c *Coupon) IsUsageLimitReached() bool {
	return c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit
}

// CalculateDiscount returns the raw (unrounded) discount for a cart total.
func (c *Coupon) CalculateDiscount(cartTotal float64) float64 {
	if c.DiscountType == CouponTypePercentage {
		discount := cartTotal * c.DiscountValue / 100
		if c.MaxDiscountAmount != nil && discount > *c.MaxDiscountAmount {
			return *c.MaxDiscountAmount
		}
		return discount
	}
	if c.DiscountValue > cartTotal {
		return cartTotal
	}
	return c.DiscountValue
}
