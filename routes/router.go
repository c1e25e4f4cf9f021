package routes

import (
	"meghmart/services"
	"meghmart/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Router bundles the services the handlers call. Everything is injected in
// main; handlers hold no globals.
type Router struct {
	Catalog   *services.Catalog
	Discounts *services.Discounts
	Coupons   *services.Coupons
	Carts     *services.Carts
	Wishlists *services.Wishlists
	Reviews   *services.Reviews
	Users     *services.Users
	Blobs     storage.Store
	Alerts    *AlertHub

	validate *validator.Validate
}

func (r *Router) Setup(app *fiber.App) {
	r.validate = validator.New()

	app.Get("/ws/alerts", r.alertsHandler())
	app.Post("/upload", r.uploadImage)

	api := app.Group("/api")

	api.Post("/register", r.register)
	api.Post("/login", r.login)
	api.Get("/users/:id", r.getUser)

	categories := api.Group("/categories")
	categories.Post("/", r.createCategory)
	categories.Get("/", r.getAllCategories)
	categories.Get("/:slug", r.getCategory)
	categories.Put("/:slug", r.updateCategory)
	categories.Delete("/:slug", r.deleteCategory)

	subCategories := api.Group("/sub-categories")
	subCategories.Post("/", r.createSubCategory)
	subCategories.Get("/", r.getAllSubCategories)
	subCategories.Get("/:slug", r.getSubCategory)
	subCategories.Put("/:slug", r.updateSubCategory)
	subCategories.Delete("/:slug", r.deleteSubCategory)

	brands := api.Group("/brands")
	brands.Post("/", r.createBrand)
	brands.Get("/", r.getAllBrands)
	brands.Get("/:slug", r.getBrand)
	brands.Put("/:slug", r.updateBrand)
	brands.Delete("/:slug", r.deleteBrand)

	products := api.Group("/products")
	products.Post("/", r.createProduct)
	products.Get("/", r.getAllProducts)
	products.Get("/:slug", r.getProduct)
	products.Put("/:slug", r.updateProduct)
	products.Delete("/:slug", r.deleteProduct)

	variants := api.Group("/variants")
	variants.Post("/", r.createVariant)
	variants.Get("/:slug", r.getVariant)
	variants.Put("/:slug", r.updateVariant)
	variants.Delete("/:slug", r.deleteVariant)

	discounts := api.Group("/discounts")
	discounts.Post("/", r.createDiscount)
	discounts.Get("/", r.getAllDiscounts)
	discounts.Get("/:slug", r.getDiscount)
	discounts.Put("/:slug", r.updateDiscount)
	discounts.Delete("/:slug", r.deleteDiscount)

	coupons := api.Group("/coupons")
	coupons.Post("/", r.createCoupon)
	coupons.Get("/", r.getAllCoupons)
	coupons.Get("/:slug", r.getCoupon)
	coupons.Put("/:slug", r.updateCoupon)
	coupons.Delete("/:slug", r.deleteCoupon)

	cart := api.Group("/cart")
	cart.Post("/", r.addToCart)
	cart.Get("/:userID", r.getCart)
	cart.Get("/:userID/count", r.countCartItems)
	cart.Get("/:userID/total", r.totalCartPrice)
	cart.Post("/add-quantity", r.addCartItemQuantity)
	cart.Post("/subtract-quantity", r.subtractCartItemQuantity)
	cart.Post("/set-quantity", r.setCartItemQuantity)
	cart.Post("/remove-selected", r.removeSelectedCartItems)
	cart.Post("/apply-coupon", r.applyCoupon)
	cart.Post("/remove-coupon", r.removeCoupon)

	wishlist := api.Group("/wishlist")
	wishlist.Post("/", r.addToWishlist)
	wishlist.Get("/:userID", r.getWishlist)
	wishlist.Get("/:userID/count", r.countWishlistItems)
	wishlist.Post("/remove-selected", r.removeSelectedWishlistItems)
	wishlist.Post("/move-to-cart", r.moveToCart)

	reviews := api.Group("/reviews")
	reviews.Post("/", r.createReview)
	reviews.Get("/product/:productID", r.getProductReviews)
	reviews.Get("/user/:userID", r.getUserReviews)
	reviews.Get("/:id", r.getReview)
	reviews.Put("/:id", r.updateReview)
	reviews.Delete("/:id", r.deleteReview)
	reviews.Put("/:id/status", r.requireAdmin, r.setReviewStatus)
	reviews.Post("/:id/helpful", r.markReviewHelpful)
}

// fail maps a service error kind to an HTTP status. Unknown errors are
// reported as 500 without leaking internals.
func fail(c *fiber.Ctx, err error) error {
	switch services.KindOf(err) {
	case services.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case services.KindPermissionDenied:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case "":
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
