package routes

import (
	"github.com/gofiber/fiber/v2"
)

func (r *Router) addToWishlist(c *fiber.Ctx) error {
	var body cartItemPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	wl, err := r.Wishlists.Add(body.UserID, body.ProductID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(wl)
}

func (r *Router) getWishlist(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	wl, err := r.Wishlists.Get(userID)
	if err != nil {
		return fail(c, err)
	}
	if wl == nil {
		return c.JSON(fiber.Map{"items": []interface{}{}})
	}
	return c.JSON(wl)
}

func (r *Router) countWishlistItems(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	count, err := r.Wishlists.Count(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (r *Router) removeSelectedWishlistItems(c *fiber.Ctx) error {
	var body selectedItemsPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	wl, err := r.Wishlists.RemoveSelected(body.UserID, body.ProductIDs)
	if err != nil {
		return fail(c, err)
	}
	if wl == nil {
		return c.JSON(fiber.Map{"message": "wishlist is now empty"})
	}
	return c.JSON(wl)
}

func (r *Router) moveToCart(c *fiber.Ctx) error {
	var body selectedItemsPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	moved, err := r.Wishlists.MoveToCart(body.UserID, body.ProductIDs)
	if err != nil {
		return fail(c, err)
	}
	for _, id := range moved {
		r.maybeAlert(id)
	}
	return c.JSON(fiber.Map{"message": "items moved to cart", "moved": moved})
}
