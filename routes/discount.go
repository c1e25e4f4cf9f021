package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"meghmart/services"
)

type discountPayload struct {
	Name                string    `json:"discount_name" validate:"required"`
	Description         string    `json:"description"`
	Type                string    `json:"discount_type" validate:"required,oneof=amount percentage"`
	Plan                string    `json:"discount_plan" validate:"required,oneof=flat category subcategory brand product"`
	TargetCategoryID    *uint     `json:"category_id"`
	TargetSubCategoryID *uint     `json:"sub_category_id"`
	TargetBrandID       *uint     `json:"brand_id"`
	TargetProductID     *uint     `json:"product_id"`
	ValidFrom           time.Time `json:"valid_from" validate:"required"`
	ValidTo             time.Time `json:"valid_to" validate:"required"`
	ValueByAmount       float64   `json:"value_by_amount" validate:"gte=0"`
	ValueByPercentage   float64   `json:"value_by_percentage" validate:"gte=0,lte=100"`
}

func (r *Router) createDiscount(c *fiber.Ctx) error {
	var body discountPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	discount, err := r.Discounts.Create(services.DiscountInput{
		Name:                body.Name,
		Description:         body.Description,
		Type:                body.Type,
		Plan:                body.Plan,
		TargetCategoryID:    body.TargetCategoryID,
		TargetSubCategoryID: body.TargetSubCategoryID,
		TargetBrandID:       body.TargetBrandID,
		TargetProductID:     body.TargetProductID,
		ValidFrom:           body.ValidFrom,
		ValidTo:             body.ValidTo,
		ValueByAmount:       body.ValueByAmount,
		ValueByPercentage:   body.ValueByPercentage,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(discount)
}

func (r *Router) getAllDiscounts(c *fiber.Ctx) error {
	discounts, err := r.Discounts.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(discounts)
}

func (r *Router) getDiscount(c *fiber.Ctx) error {
	discount, err := r.Discounts.GetBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(discount)
}

type discountUpdatePayload struct {
	Name                *string    `json:"discount_name"`
	Description         *string    `json:"description"`
	Type                *string    `json:"discount_type"`
	Plan                *string    `json:"discount_plan"`
	TargetCategoryID    *uint      `json:"category_id"`
	TargetSubCategoryID *uint      `json:"sub_category_id"`
	TargetBrandID       *uint      `json:"brand_id"`
	TargetProductID     *uint      `json:"product_id"`
	ValidFrom           *time.Time `json:"valid_from"`
	ValidTo             *time.Time `json:"valid_to"`
	ValueByAmount       *float64   `json:"value_by_amount"`
	ValueByPercentage   *float64   `json:"value_by_percentage"`
	IsActive            *bool      `json:"is_active"`
}

func (r *Router) updateDiscount(c *fiber.Ctx) error {
	var body discountUpdatePayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	discount, err := r.Discounts.Update(c.Params("slug"), services.DiscountUpdate{
		Name:                body.Name,
		Description:         body.Description,
		Type:                body.Type,
		Plan:                body.Plan,
		TargetCategoryID:    body.TargetCategoryID,
		TargetSubCategoryID: body.TargetSubCategoryID,
		TargetBrandID:       body.TargetBrandID,
		TargetProductID:     body.TargetProductID,
		ValidFrom:           body.ValidFrom,
		ValidTo:             body.ValidTo,
		ValueByAmount:       body.ValueByAmount,
		ValueByPercentage:   body.ValueByPercentage,
		IsActive:            body.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(discount)
}

func (r *Router) deleteDiscount(c *fiber.Ctx) error {
	if err := r.Discounts.Delete(c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "discount deleted successfully"})
}
