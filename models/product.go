package models

import "time"

const (
	VariantTypeSingle   = "single"
	VariantTypeMultiple = "multiple"
)

type Product struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"unique" json:"name" validate:"required,max=150"`
	Slug           string    `gorm:"uniqueIndex" json:"slug"`
	Description    string    `json:"description" validate:"max=2000"`
	SKU            string    `gorm:"unique" json:"sku" validate:"required,max=80"`
	CategoryID     uint      `json:"category_id" validate:"required"`
	SubCategoryID  uint      `json:"sub_category_id" validate:"required"`
	BrandID        uint      `json:"brand_id" validate:"required"`
	Variants       IDSet     `gorm:"type:text;serializer:json" json:"variants"`
	Discounts      IDSet     `gorm:"type:text;serializer:json" json:"discounts"`
	Images         []string  `gorm:"type:text;serializer:json" json:"images" validate:"max=10"`
	Tags           []string  `gorm:"type:text;serializer:json" json:"tags"`
	VariantType    string    `gorm:"default:single" json:"variant_type" validate:"omitempty,oneof=single multiple"`
	RetailPrice    float64   `json:"retail_price" validate:"required,min=0"`
	WholesalePrice float64   `json:"wholesale_price" validate:"min=0"`
	Stock          int       `json:"stock" validate:"min=0"`
	AlertQuantity  int       `json:"alert_quantity" validate:"min=0"`
	AverageRating  float64   `json:"average_rating"`
	TotalReviews   int       `json:"total_reviews"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
