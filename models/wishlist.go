package models

import "time"

type WishlistItem struct {
	ProductID uint      `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// Wishlist follows the same empty-deletion rule as Cart.
type Wishlist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"unique" json:"user_id"`
	Items     []WishlistItem `gorm:"type:text;serializer:json" json:"items"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (w *Wishlist) Has(productID uint) bool {
	for _, it := range w.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}
