package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"meghmart/services"
)

// requireAdmin guards moderation endpoints with a bearer token carrying the
// admin claim.
func (r *Router) requireAdmin(c *fiber.Ctx) error {
	auth := c.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}
	_, isAdmin, err := r.Users.ParseToken(strings.TrimPrefix(auth, prefix))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}
	if !isAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
	}
	return c.Next()
}

type registerPayload struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone"`
}

func (r *Router) register(c *fiber.Ctx) error {
	var body registerPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	user, err := r.Users.Register(services.RegisterInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Phone:     body.Phone,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *Router) login(c *fiber.Ctx) error {
	var body loginPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	user, token, err := r.Users.Login(body.Email, body.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"user": user, "token": token})
}

func (r *Router) getUser(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	user, err := r.Users.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
