package models

import "time"

type SubCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique" json:"name" validate:"required,max=100"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CategoryID  uint      `json:"category_id" validate:"required"`
	Brands      IDSet     `gorm:"type:text;serializer:json" json:"brands"`
	Discounts   IDSet     `gorm:"type:text;serializer:json" json:"discounts"`
	Products    IDSet     `gorm:"type:text;serializer:json" json:"products"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
