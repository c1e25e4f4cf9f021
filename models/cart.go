package models

import "time"

type CartItem struct {
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart holds one user's open cart. A cart whose item list becomes empty is
// deleted, never persisted empty.
type Cart struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"unique" json:"user_id"`
	Items          []CartItem `gorm:"type:text;serializer:json" json:"items"`
	CouponID       *uint      `json:"coupon_id"`
	DiscountAmount float64    `json:"discount_amount"`
	DiscountType   string     `json:"discount_type"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Item returns the line for productID, or nil.
func (c *Cart) Item(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
