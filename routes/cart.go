package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type cartItemPayload struct {
	UserID    uint `json:"user_id" validate:"required"`
	ProductID uint `json:"product_id" validate:"required"`
}

func (r *Router) addToCart(c *fiber.Ctx) error {
	var body cartItemPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	cart, err := r.Carts.AddToCart(body.UserID, body.ProductID)
	if err != nil {
		return fail(c, err)
	}
	r.maybeAlert(body.ProductID)
	return c.Status(fiber.StatusCreated).JSON(cart)
}

func (r *Router) getCart(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	cart, err := r.Carts.GetCart(userID)
	if err != nil {
		return fail(c, err)
	}
	if cart == nil {
		return c.JSON(fiber.Map{"items": []interface{}{}})
	}
	return c.JSON(cart)
}

func (r *Router) countCartItems(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	count, err := r.Carts.CountItems(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (r *Router) totalCartPrice(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	total, err := r.Carts.TotalPrice(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"total_price": total})
}

func (r *Router) addCartItemQuantity(c *fiber.Ctx) error {
	var body cartItemPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	cart, err := r.Carts.AddQuantity(body.UserID, body.ProductID)
	if err != nil {
		return fail(c, err)
	}
	r.maybeAlert(body.ProductID)
	return c.JSON(cart)
}

func (r *Router) subtractCartItemQuantity(c *fiber.Ctx) error {
	var body cartItemPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	cart, err := r.Carts.SubtractQuantity(body.UserID, body.ProductID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}

type setQuantityPayload struct {
	UserID    uint `json:"user_id" validate:"required"`
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required"`
}

func (r *Router) setCartItemQuantity(c *fiber.Ctx) error {
	var body setQuantityPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	cart, err := r.Carts.SetQuantity(body.UserID, body.ProductID, body.Quantity)
	if err != nil {
		return fail(c, err)
	}
	r.maybeAlert(body.ProductID)
	return c.JSON(cart)
}

type selectedItemsPayload struct {
	UserID     uint   `json:"user_id" validate:"required"`
	ProductIDs []uint `json:"product_ids" validate:"required,min=1"`
}

func (r *Router) removeSelectedCartItems(c *fiber.Ctx) error {
	var body selectedItemsPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	cart, err := r.Carts.RemoveSelected(body.UserID, body.ProductIDs)
	if err != nil {
		return fail(c, err)
	}
	if cart == nil {
		return c.JSON(fiber.Map{"message": "cart is now empty"})
	}
	return c.JSON(cart)
}

type applyCouponPayload struct {
	UserID uint   `json:"user_id" validate:"required"`
	Code   string `json:"code" validate:"required"`
}

func (r *Router) applyCoupon(c *fiber.Ctx) error {
	var body applyCouponPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	result, err := r.Carts.ApplyCoupon(body.UserID, body.Code, time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}

type removeCouponPayload struct {
	UserID uint `json:"user_id" validate:"required"`
}

func (r *Router) removeCoupon(c *fiber.Ctx) error {
	var body removeCouponPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	cart, err := r.Carts.RemoveCoupon(body.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}
