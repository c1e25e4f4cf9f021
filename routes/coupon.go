package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"meghmart/services"
)

type couponPayload struct {
	Code               string    `json:"code" validate:"required"`
	Description        string    `json:"description"`
	DiscountType       string    `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue      float64   `json:"discount_value" validate:"gt=0"`
	MinPurchaseAmount  float64   `json:"min_purchase_amount" validate:"gte=0"`
	MaxDiscountAmount  *float64  `json:"max_discount_amount"`
	ExpireAt           time.Time `json:"expire_at" validate:"required"`
	UsageLimit         *int      `json:"usage_limit"`
	ApplicableTo       string    `json:"applicable_to" validate:"omitempty,oneof=all products cart"`
	ApplicableProducts []uint    `json:"applicable_products"`
}

func (r *Router) createCoupon(c *fiber.Ctx) error {
	var body couponPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	coupon, err := r.Coupons.Create(services.CouponInput{
		Code:               body.Code,
		Description:        body.Description,
		DiscountType:       body.DiscountType,
		DiscountValue:      body.DiscountValue,
		MinPurchaseAmount:  body.MinPurchaseAmount,
		MaxDiscountAmount:  body.MaxDiscountAmount,
		ExpireAt:           body.ExpireAt,
		UsageLimit:         body.UsageLimit,
		ApplicableTo:       body.ApplicableTo,
		ApplicableProducts: body.ApplicableProducts,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(coupon)
}

func (r *Router) getAllCoupons(c *fiber.Ctx) error {
	coupons, err := r.Coupons.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(coupons)
}

func (r *Router) getCoupon(c *fiber.Ctx) error {
	coupon, err := r.Coupons.GetBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(coupon)
}

type couponUpdatePayload struct {
	Code               *string    `json:"code"`
	Description        *string    `json:"description"`
	DiscountType       *string    `json:"discount_type"`
	DiscountValue      *float64   `json:"discount_value"`
	MinPurchaseAmount  *float64   `json:"min_purchase_amount"`
	MaxDiscountAmount  *float64   `json:"max_discount_amount"`
	ExpireAt           *time.Time `json:"expire_at"`
	UsageLimit         *int       `json:"usage_limit"`
	IsActive           *bool      `json:"is_active"`
	ApplicableTo       *string    `json:"applicable_to"`
	ApplicableProducts *[]uint    `json:"applicable_products"`
}

func (r *Router) updateCoupon(c *fiber.Ctx) error {
	var body couponUpdatePayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	coupon, err := r.Coupons.Update(c.Params("slug"), services.CouponUpdate{
		Code:               body.Code,
		Description:        body.Description,
		DiscountType:       body.DiscountType,
		DiscountValue:      body.DiscountValue,
		MinPurchaseAmount:  body.MinPurchaseAmount,
		MaxDiscountAmount:  body.MaxDiscountAmount,
		ExpireAt:           body.ExpireAt,
		UsageLimit:         body.UsageLimit,
		IsActive:           body.IsActive,
		ApplicableTo:       body.ApplicableTo,
		ApplicableProducts: body.ApplicableProducts,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(coupon)
}

func (r *Router) deleteCoupon(c *fiber.Ctx) error {
	if err := r.Coupons.Delete(c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "coupon deleted successfully"})
}
