package models

import "time"

type Variant struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ProductID      uint      `json:"product_id" validate:"required"`
	Name           string    `json:"name" validate:"required,max=150"`
	Slug           string    `gorm:"uniqueIndex" json:"slug"`
	Color          string    `json:"color"`
	Size           string    `json:"size"`
	Images         []string  `gorm:"type:text;serializer:json" json:"images" validate:"max=10"`
	RetailPrice    float64   `json:"retail_price" validate:"required,min=0"`
	WholesalePrice float64   `json:"wholesale_price" validate:"min=0"`
	Stock          int       `json:"stock" validate:"min=0"`
	AlertStock     int       `json:"alert_stock" validate:"min=0"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
