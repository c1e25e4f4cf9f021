package routes

import (
	"github.com/gofiber/fiber/v2"

	"meghmart/services"
)

type reviewPayload struct {
	UserID    uint     `json:"user_id" validate:"required"`
	ProductID uint     `json:"product_id" validate:"required"`
	Rating    int      `json:"rating" validate:"required,min=1,max=5"`
	Comment   string   `json:"comment"`
	Images    []string `json:"images" validate:"max=5"`
}

func (r *Router) createReview(c *fiber.Ctx) error {
	var body reviewPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	review, err := r.Reviews.Create(services.ReviewInput{
		UserID:    body.UserID,
		ProductID: body.ProductID,
		Rating:    body.Rating,
		Comment:   body.Comment,
		Images:    body.Images,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

func (r *Router) getProductReviews(c *fiber.Ctx) error {
	productID, err := parseUintParam(c, "productID")
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	reviews, err := r.Reviews.ListByProduct(productID, c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reviews)
}

func (r *Router) getUserReviews(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	reviews, err := r.Reviews.ListByUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reviews)
}

func (r *Router) getReview(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid review id")
	}
	review, err := r.Reviews.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(review)
}

type reviewUpdatePayload struct {
	UserID  uint      `json:"user_id" validate:"required"`
	Rating  *int      `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string   `json:"comment"`
	Images  *[]string `json:"images"`
}

func (r *Router) updateReview(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid review id")
	}
	var body reviewUpdatePayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	if body.Images != nil && len(*body.Images) > 5 {
		return badRequest(c, "a review can hold at most 5 images")
	}
	review, err := r.Reviews.Update(id, body.UserID, services.ReviewUpdate{
		Rating:  body.Rating,
		Comment: body.Comment,
		Images:  body.Images,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(review)
}

type reviewDeletePayload struct {
	UserID  uint `json:"user_id" validate:"required"`
	IsAdmin bool `json:"is_admin"`
}

func (r *Router) deleteReview(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid review id")
	}
	var body reviewDeletePayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	if err := r.Reviews.Delete(id, body.UserID, body.IsAdmin); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "review deleted successfully"})
}

type reviewStatusPayload struct {
	Status          string `json:"status" validate:"required,oneof=pending approved rejected"`
	RejectionReason string `json:"rejection_reason"`
	AdminResponse   string `json:"admin_response"`
}

func (r *Router) setReviewStatus(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid review id")
	}
	var body reviewStatusPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	review, err := r.Reviews.SetStatus(id, body.Status, body.RejectionReason, body.AdminResponse)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(review)
}

type reviewHelpfulPayload struct {
	UserID uint `json:"user_id" validate:"required"`
	Remove bool `json:"remove"`
}

func (r *Router) markReviewHelpful(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid review id")
	}
	var body reviewHelpfulPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	var review interface{}
	if body.Remove {
		review, err = r.Reviews.UnmarkHelpful(id, body.UserID)
	} else {
		review, err = r.Reviews.MarkHelpful(id, body.UserID)
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(review)
}
