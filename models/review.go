package models

import "time"

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Review is unique per (user, product). Helpful always equals len(HelpfulBy);
// it is recomputed on every change, never incremented on its own.
type Review struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index:idx_reviews_user_product,unique" json:"user_id" validate:"required"`
	ProductID       uint      `gorm:"index:idx_reviews_user_product,unique" json:"product_id" validate:"required"`
	Rating          int       `json:"rating" validate:"required,min=1,max=5"`
	Comment         string    `json:"comment" validate:"required,min=10,max=1000"`
	Images          []string  `gorm:"type:text;serializer:json" json:"images" validate:"max=5"`
	Status          string    `gorm:"default:pending" json:"status"`
	Helpful         int       `json:"helpful"`
	HelpfulBy       IDSet     `gorm:"type:text;serializer:json" json:"helpful_by"`
	AdminResponse   string    `json:"admin_response" validate:"max=500"`
	RejectionReason string    `json:"rejection_reason" validate:"max=200"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Review) IsApproved() bool {
	return r.Status == ReviewStatusApproved
}
