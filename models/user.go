package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `json:"first_name" validate:"required,max=50"`
	LastName  string    `json:"last_name" validate:"max=50"`
	Email     string    `gorm:"unique" json:"email" validate:"required,email"`
	Password  string    `json:"-" validate:"required,min=8"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
