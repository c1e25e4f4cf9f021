package models

import "time"

// Brand is a child of SubCategory. A brand row cannot exist without its
// parent subcategory; the subcategory mirrors the link in its Brands set.
type Brand struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"unique" json:"name" validate:"required,max=100"`
	Slug          string    `gorm:"uniqueIndex" json:"slug"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	SubCategoryID uint      `json:"sub_category_id" validate:"required"`
	Since         int       `json:"since" validate:"required,min=1800"`
	Products      IDSet     `gorm:"type:text;serializer:json" json:"products"`
	Discounts     IDSet     `gorm:"type:text;serializer:json" json:"discounts"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
