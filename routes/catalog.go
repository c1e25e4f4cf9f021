package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"meghmart/services"
)

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

type categoryPayload struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (r *Router) createCategory(c *fiber.Ctx) error {
	var body categoryPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	cat, err := r.Catalog.CreateCategory(services.CategoryInput{
		Name:        body.Name,
		Image:       body.Image,
		Description: body.Description,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (r *Router) getAllCategories(c *fiber.Ctx) error {
	cats, err := r.Catalog.ListCategories()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cats)
}

func (r *Router) getCategory(c *fiber.Ctx) error {
	cat, err := r.Catalog.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cat)
}

type categoryUpdatePayload struct {
	Name        *string `json:"name"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (r *Router) updateCategory(c *fiber.Ctx) error {
	var body categoryUpdatePayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	cat, err := r.Catalog.UpdateCategory(c.Params("slug"), services.CategoryUpdate{
		Name:        body.Name,
		Image:       body.Image,
		Description: body.Description,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cat)
}

func (r *Router) deleteCategory(c *fiber.Ctx) error {
	if err := r.Catalog.DeleteCategory(c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "category deleted successfully"})
}

type subCategoryPayload struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
	CategoryID  uint   `json:"category_id" validate:"required"`
}

func (r *Router) createSubCategory(c *fiber.Ctx) error {
	var body subCategoryPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	sub, err := r.Catalog.CreateSubCategory(services.SubCategoryInput{
		Name:        body.Name,
		Image:       body.Image,
		Description: body.Description,
		CategoryID:  body.CategoryID,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (r *Router) getAllSubCategories(c *fiber.Ctx) error {
	subs, err := r.Catalog.ListSubCategories()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(subs)
}

func (r *Router) getSubCategory(c *fiber.Ctx) error {
	sub, err := r.Catalog.GetSubCategoryBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sub)
}

type subCategoryUpdatePayload struct {
	Name        *string `json:"name"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	IsActive    *bool   `json:"is_active"`
}

func (r *Router) updateSubCategory(c *fiber.Ctx) error {
	var body subCategoryUpdatePayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	sub, err := r.Catalog.UpdateSubCategory(c.Params("slug"), services.SubCategoryUpdate{
		Name:        body.Name,
		Image:       body.Image,
		Description: body.Description,
		CategoryID:  body.CategoryID,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sub)
}

func (r *Router) deleteSubCategory(c *fiber.Ctx) error {
	if err := r.Catalog.DeleteSubCategory(c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "sub-category deleted successfully"})
}

type brandPayload struct {
	Name          string `json:"name" validate:"required"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	SubCategoryID uint   `json:"sub_category_id" validate:"required"`
	Since         int    `json:"since"`
}

func (r *Router) createBrand(c *fiber.Ctx) error {
	var body brandPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	brand, err := r.Catalog.CreateBrand(services.BrandInput{
		Name:          body.Name,
		Image:         body.Image,
		Description:   body.Description,
		SubCategoryID: body.SubCategoryID,
		Since:         body.Since,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

func (r *Router) getAllBrands(c *fiber.Ctx) error {
	brands, err := r.Catalog.ListBrands()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(brands)
}

func (r *Router) getBrand(c *fiber.Ctx) error {
	brand, err := r.Catalog.GetBrandBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(brand)
}

type brandUpdatePayload struct {
	Name          *string `json:"name"`
	Image         *string `json:"image"`
	Description   *string `json:"description"`
	SubCategoryID *uint   `json:"sub_category_id"`
	Since         *int    `json:"since"`
	IsActive      *bool   `json:"is_active"`
}

func (r *Router) updateBrand(c *fiber.Ctx) error {
	var body brandUpdatePayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	brand, err := r.Catalog.UpdateBrand(c.Params("slug"), services.BrandUpdate{
		Name:          body.Name,
		Image:         body.Image,
		Description:   body.Description,
		SubCategoryID: body.SubCategoryID,
		Since:         body.Since,
		IsActive:      body.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(brand)
}

func (r *Router) deleteBrand(c *fiber.Ctx) error {
	if err := r.Catalog.DeleteBrand(c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "brand deleted successfully"})
}

type productPayload struct {
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	SKU            string   `json:"sku" validate:"required"`
	CategoryID     uint     `json:"category_id" validate:"required"`
	SubCategoryID  uint     `json:"sub_category_id" validate:"required"`
	BrandID        uint     `json:"brand_id" validate:"required"`
	Images         []string `json:"images" validate:"max=10"`
	Tags           []string `json:"tags"`
	VariantType    string   `json:"variant_type"`
	RetailPrice    float64  `json:"retail_price" validate:"gte=0"`
	WholesalePrice float64  `json:"wholesale_price" validate:"gte=0"`
	Stock          int      `json:"stock" validate:"gte=0"`
	AlertQuantity  int      `json:"alert_quantity" validate:"gte=0"`
}

func (r *Router) createProduct(c *fiber.Ctx) error {
	var body productPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	product, err := r.Catalog.CreateProduct(services.ProductInput{
		Name:           body.Name,
		Description:    body.Description,
		SKU:            body.SKU,
		CategoryID:     body.CategoryID,
		SubCategoryID:  body.SubCategoryID,
		BrandID:        body.BrandID,
		Images:         body.Images,
		Tags:           body.Tags,
		VariantType:    body.VariantType,
		RetailPrice:    body.RetailPrice,
		WholesalePrice: body.WholesalePrice,
		Stock:          body.Stock,
		AlertQuantity:  body.AlertQuantity,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (r *Router) getAllProducts(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 0)
	products, total, err := r.Catalog.ListProducts(skip, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"products": products, "total": total})
}

func (r *Router) getProduct(c *fiber.Ctx) error {
	product, err := r.Catalog.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

type productUpdatePayload struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	SKU            *string   `json:"sku"`
	CategoryID     *uint     `json:"category_id"`
	SubCategoryID  *uint     `json:"sub_category_id"`
	BrandID        *uint     `json:"brand_id"`
	Images         *[]string `json:"images"`
	Tags           *[]string `json:"tags"`
	VariantType    *string   `json:"variant_type"`
	RetailPrice    *float64  `json:"retail_price"`
	WholesalePrice *float64  `json:"wholesale_price"`
	Stock          *int      `json:"stock"`
	AlertQuantity  *int      `json:"alert_quantity"`
	IsActive       *bool     `json:"is_active"`
}

func (r *Router) updateProduct(c *fiber.Ctx) error {
	var body productUpdatePayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Images != nil && len(*body.Images) > 10 {
		return badRequest(c, "a product can hold at most 10 images")
	}
	product, err := r.Catalog.UpdateProduct(c.Params("slug"), services.ProductUpdate{
		Name:           body.Name,
		Description:    body.Description,
		SKU:            body.SKU,
		CategoryID:     body.CategoryID,
		SubCategoryID:  body.SubCategoryID,
		BrandID:        body.BrandID,
		Images:         body.Images,
		Tags:           body.Tags,
		VariantType:    body.VariantType,
		RetailPrice:    body.RetailPrice,
		WholesalePrice: body.WholesalePrice,
		Stock:          body.Stock,
		AlertQuantity:  body.AlertQuantity,
		IsActive:       body.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}
	if body.Stock != nil {
		r.maybeAlert(product.ID)
	}
	return c.JSON(product)
}

func (r *Router) deleteProduct(c *fiber.Ctx) error {
	if err := r.Catalog.DeleteProduct(c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "product deleted successfully"})
}

type variantPayload struct {
	ProductID      uint     `json:"product_id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Color          string   `json:"color"`
	Size           string   `json:"size"`
	Images         []string `json:"images" validate:"max=10"`
	RetailPrice    float64  `json:"retail_price" validate:"gte=0"`
	WholesalePrice float64  `json:"wholesale_price" validate:"gte=0"`
	Stock          int      `json:"stock" validate:"gte=0"`
	AlertStock     int      `json:"alert_stock" validate:"gte=0"`
}

func (r *Router) createVariant(c *fiber.Ctx) error {
	var body variantPayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := r.validate.Struct(body); err != nil {
		return badRequest(c, err.Error())
	}
	variant, err := r.Catalog.CreateVariant(services.VariantInput{
		ProductID:      body.ProductID,
		Name:           body.Name,
		Color:          body.Color,
		Size:           body.Size,
		Images:         body.Images,
		RetailPrice:    body.RetailPrice,
		WholesalePrice: body.WholesalePrice,
		Stock:          body.Stock,
		AlertStock:     body.AlertStock,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(variant)
}

func (r *Router) getVariant(c *fiber.Ctx) error {
	variant, err := r.Catalog.GetVariantBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(variant)
}

type variantUpdatePayload struct {
	Name           *string   `json:"name"`
	Color          *string   `json:"color"`
	Size           *string   `json:"size"`
	Images         *[]string `json:"images"`
	RetailPrice    *float64  `json:"retail_price"`
	WholesalePrice *float64  `json:"wholesale_price"`
	Stock          *int      `json:"stock"`
	AlertStock     *int      `json:"alert_stock"`
	IsActive       *bool     `json:"is_active"`
}

func (r *Router) updateVariant(c *fiber.Ctx) error {
	var body variantUpdatePayload
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Images != nil && len(*body.Images) > 10 {
		return badRequest(c, "a variant can hold at most 10 images")
	}
	variant, err := r.Catalog.UpdateVariant(c.Params("slug"), services.VariantUpdate{
		Name:           body.Name,
		Color:          body.Color,
		Size:           body.Size,
		Images:         body.Images,
		RetailPrice:    body.RetailPrice,
		WholesalePrice: body.WholesalePrice,
		Stock:          body.Stock,
		AlertStock:     body.AlertStock,
		IsActive:       body.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(variant)
}

func (r *Router) deleteVariant(c *fiber.Ctx) error {
	if err := r.Catalog.DeleteVariant(c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "variant deleted successfully"})
}
