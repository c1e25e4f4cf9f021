package models

import "time"

const (
	DiscountTypeAmount     = "amount"
	DiscountTypePercentage = "percentage"

	DiscountPlanFlat        = "flat"
	DiscountPlanCategory    = "category"
	DiscountPlanSubCategory = "subcategory"
	DiscountPlanBrand       = "brand"
	DiscountPlanProduct     = "product"
)

// Discount applies to exactly one target determined by Plan; a flat discount
// has no target. Target columns are pointers so "no target" is a real null.
type Discount struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"unique;column:discount_name" json:"discount_name" validate:"required,max=100"`
	Slug                string    `gorm:"uniqueIndex" json:"slug"`
	Description         string    `json:"description" validate:"max=500"`
	Type                string    `gorm:"column:discount_type" json:"discount_type" validate:"required,oneof=amount percentage"`
	Plan                string    `gorm:"column:discount_plan" json:"discount_plan" validate:"required,oneof=flat category product subcategory brand"`
	TargetCategoryID    *uint     `json:"target_category_id"`
	TargetSubCategoryID *uint     `json:"target_sub_category_id"`
	TargetBrandID       *uint     `json:"target_brand_id"`
	TargetProductID     *uint     `json:"target_product_id"`
	ValidFrom           time.Time `json:"valid_from" validate:"required"`
	ValidTo             time.Time `json:"valid_to" validate:"required"`
	ValueByAmount       float64   `json:"value_by_amount" validate:"min=0"`
	ValueByPercentage   float64   `json:"value_by_percentage" validate:"min=0,max=100"`
	IsActive            bool      `gorm:"default:true" json:"is_active"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Target returns the id the discount's plan points at, or nil for flat plans.
func (d *Discount) Target() *uint {
	switch d.Plan {
	case DiscountPlanCategory:
		return d.TargetCategoryID
	case DiscountPlanSubCategory:
		return d.TargetSubCategoryID
	case DiscountPlanBrand:
		return d.TargetBrandID
	case DiscountPlanProduct:
		return d.TargetProductID
	}
	return nil
}
