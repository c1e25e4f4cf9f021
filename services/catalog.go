package services

import (
	"errors"
	"log"

	"meghmart/models"
	"meghmart/storage"

	"gorm.io/gorm"
)

// Catalog maintains the category → sub-category → brand → product → variant
// tree. Every child row carries a parent id and every parent mirrors the link
// in an id-set column; the create/update/delete methods here keep the two
// sides consistent.
type Catalog struct {
	db    *gorm.DB
	blobs storage.Store
}

func NewCatalog(gdb *gorm.DB, blobs storage.Store) *Catalog {
	return &Catalog{db: gdb, blobs: blobs}
}

// deleteBlobs is best-effort: a failed image delete during an entity delete
// is logged, never fatal.
func (s *Catalog) deleteBlobs(urls ...string) {
	if s.blobs == nil || len(urls) == 0 {
		return
	}
	if err := s.blobs.Delete(urls...); err != nil {
		log.Printf("failed to delete blobs %v: %v", urls, err)
	}
}

func nameTaken(gdb *gorm.DB, model interface{}, name string, excludeID uint) (bool, error) {
	var n int64
	err := gdb.Model(model).Where("name = ? AND id <> ?", name, excludeID).Count(&n).Error
	return n > 0, err
}

// ---- Category ----

type CategoryInput struct {
	Name        string
	Image       string
	Description string
}

type CategoryUpdate struct {
	Name        *string
	Image       *string
	Description *string
	IsActive    *bool
}

func (s *Catalog) CreateCategory(in CategoryInput) (*models.Category, error) {
	taken, err := nameTaken(s.db, &models.Category{}, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errf(KindDuplicate, "category with this name already exists")
	}

	slug, err := assignSlug(s.db, "categories", in.Name, 0)
	if err != nil {
		return nil, err
	}
	cat := &models.Category{
		Name:        in.Name,
		Slug:        slug,
		Image:       in.Image,
		Description: in.Description,
		IsActive:    true,
	}
	if err := s.db.Create(cat).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Catalog) GetCategoryBySlug(slug string) (*models.Category, error) {
	var cat models.Category
	if err := s.db.Where("slug = ?", slug).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "category not found")
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Catalog) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *Catalog) UpdateCategory(slug string, in CategoryUpdate) (*models.Category, error) {
	cat, err := s.GetCategoryBySlug(slug)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != cat.Name {
		taken, err := nameTaken(s.db, &models.Category{}, *in.Name, cat.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errf(KindDuplicate, "another category with this name already exists")
		}
		newSlug, err := assignSlug(s.db, "categories", *in.Name, cat.ID)
		if err != nil {
			return nil, err
		}
		cat.Name = *in.Name
		cat.Slug = newSlug
	}
	if in.Image != nil {
		if cat.Image != "" && *in.Image != cat.Image {
			s.deleteBlobs(cat.Image)
		}
		cat.Image = *in.Image
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}

	if err := s.db.Save(cat).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Catalog) DeleteCategory(slug string) error {
	cat, err := s.GetCategoryBySlug(slug)
	if err != nil {
		return err
	}
	if len(cat.SubCategories) > 0 {
		return errf(KindHasDependents, "cannot delete category with associated sub-categories")
	}
	if len(cat.Discounts) > 0 {
		if err := s.db.Delete(&models.Discount{}, []uint(cat.Discounts)).Error; err != nil {
			return err
		}
	}
	if cat.Image != "" {
		s.deleteBlobs(cat.Image)
	}
	return s.db.Delete(cat).Error
}

// ---- SubCategory ----

type SubCategoryInput struct {
	Name        string
	Image       string
	Description string
	CategoryID  uint
}

type SubCategoryUpdate struct {
	Name        *string
	Image       *string
	Description *string
	CategoryID  *uint
	IsActive    *bool
}

func (s *Catalog) CreateSubCategory(in SubCategoryInput) (*models.SubCategory, error) {
	parent, err := findCategory(s.db, in.CategoryID)
	if err != nil {
		return nil, err
	}

	taken, err := nameTaken(s.db, &models.SubCategory{}, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errf(KindDuplicate, "sub-category with this name already exists")
	}

	slug, err := assignSlug(s.db, "sub_categories", in.Name, 0)
	if err != nil {
		return nil, err
	}
	sub := &models.SubCategory{
		Name:        in.Name,
		Slug:        slug,
		Image:       in.Image,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		IsActive:    true,
	}
	if err := s.db.Create(sub).Error; err != nil {
		return nil, err
	}
	if err := writeSet(s.db, &models.Category{}, parent.ID, "sub_categories",
		parent.SubCategories.Add(sub.ID)); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Catalog) GetSubCategoryBySlug(slug string) (*models.SubCategory, error) {
	var sub models.SubCategory
	if err := s.db.Where("slug = ?", slug).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "sub-category not found")
		}
		return nil, err
	}
	return &sub, nil
}

func (s *Catalog) ListSubCategories() ([]models.SubCategory, error) {
	var subs []models.SubCategory
	if err := s.db.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *Catalog) UpdateSubCategory(slug string, in SubCategoryUpdate) (*models.SubCategory, error) {
	sub, err := s.GetSubCategoryBySlug(slug)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != sub.Name {
		taken, err := nameTaken(s.db, &models.SubCategory{}, *in.Name, sub.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errf(KindDuplicate, "another sub-category with this name already exists")
		}
		newSlug, err := assignSlug(s.db, "sub_categories", *in.Name, sub.ID)
		if err != nil {
			return nil, err
		}
		sub.Name = *in.Name
		sub.Slug = newSlug
	}

	// Re-parent only when the category actually changes.
	if in.CategoryID != nil && *in.CategoryID != sub.CategoryID {
		newParent, err := findCategory(s.db, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if oldParent, err := findCategory(s.db, sub.CategoryID); err == nil {
			if err := writeSet(s.db, &models.Category{}, oldParent.ID, "sub_categories",
				oldParent.SubCategories.Remove(sub.ID)); err != nil {
				return nil, err
			}
		}
		if err := writeSet(s.db, &models.Category{}, newParent.ID, "sub_categories",
			newParent.SubCategories.Add(sub.ID)); err != nil {
			return nil, err
		}
		sub.CategoryID = *in.CategoryID
	}

	if in.Image != nil {
		if sub.Image != "" && *in.Image != sub.Image {
			s.deleteBlobs(sub.Image)
		}
		sub.Image = *in.Image
	}
	if in.Description != nil {
		sub.Description = *in.Description
	}
	if in.IsActive != nil {
		sub.IsActive = *in.IsActive
	}

	if err := s.db.Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Catalog) DeleteSubCategory(slug string) error {
	sub, err := s.GetSubCategoryBySlug(slug)
	if err != nil {
		return err
	}
	if len(sub.Brands) > 0 {
		return errf(KindHasDependents, "cannot delete sub-category with associated brands")
	}
	if len(sub.Discounts) > 0 {
		if err := s.db.Delete(&models.Discount{}, []uint(sub.Discounts)).Error; err != nil {
			return err
		}
	}
	if parent, err := findCategory(s.db, sub.CategoryID); err == nil {
		if err := writeSet(s.db, &models.Category{}, parent.ID, "sub_categories",
			parent.SubCategories.Remove(sub.ID)); err != nil {
			return err
		}
	}
	if sub.Image != "" {
		s.deleteBlobs(sub.Image)
	}
	return s.db.Delete(sub).Error
}

// ---- Brand ----

type BrandInput struct {
	Name          string
	Image         string
	Description   string
	SubCategoryID uint
	Since         int
}

type BrandUpdate struct {
	Name          *string
	Image         *string
	Description   *string
	SubCategoryID *uint
	Since         *int
	IsActive      *bool
}

func (s *Catalog) CreateBrand(in BrandInput) (*models.Brand, error) {
	parent, err := findSubCategory(s.db, in.SubCategoryID)
	if err != nil {
		return nil, err
	}

	taken, err := nameTaken(s.db, &models.Brand{}, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errf(KindDuplicate, "brand with this name already exists")
	}

	slug, err := assignSlug(s.db, "brands", in.Name, 0)
	if err != nil {
		return nil, err
	}
	brand := &models.Brand{
		Name:          in.Name,
		Slug:          slug,
		Image:         in.Image,
		Description:   in.Description,
		SubCategoryID: in.SubCategoryID,
		Since:         in.Since,
		IsActive:      true,
	}
	if err := s.db.Create(brand).Error; err != nil {
		return nil, err
	}
	if err := writeSet(s.db, &models.SubCategory{}, parent.ID, "brands",
		parent.Brands.Add(brand.ID)); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *Catalog) GetBrandBySlug(slug string) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.Where("slug = ?", slug).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "brand not found")
		}
		return nil, err
	}
	return &brand, nil
}

func (s *Catalog) ListBrands() ([]models.Brand, error) {
	var brands []models.Brand
	if err := s.db.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (s *Catalog) UpdateBrand(slug string, in BrandUpdate) (*models.Brand, error) {
	brand, err := s.GetBrandBySlug(slug)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != brand.Name {
		taken, err := nameTaken(s.db, &models.Brand{}, *in.Name, brand.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errf(KindDuplicate, "another brand with this name already exists")
		}
		newSlug, err := assignSlug(s.db, "brands", *in.Name, brand.ID)
		if err != nil {
			return nil, err
		}
		brand.Name = *in.Name
		brand.Slug = newSlug
	}

	if in.SubCategoryID != nil && *in.SubCategoryID != brand.SubCategoryID {
		newParent, err := findSubCategory(s.db, *in.SubCategoryID)
		if err != nil {
			return nil, err
		}
		if oldParent, err := findSubCategory(s.db, brand.SubCategoryID); err == nil {
			if err := writeSet(s.db, &models.SubCategory{}, oldParent.ID, "brands",
				oldParent.Brands.Remove(brand.ID)); err != nil {
				return nil, err
			}
		}
		if err := writeSet(s.db, &models.SubCategory{}, newParent.ID, "brands",
			newParent.Brands.Add(brand.ID)); err != nil {
			return nil, err
		}
		brand.SubCategoryID = *in.SubCategoryID
	}

	if in.Image != nil {
		if brand.Image != "" && *in.Image != brand.Image {
			s.deleteBlobs(brand.Image)
		}
		brand.Image = *in.Image
	}
	if in.Description != nil {
		brand.Description = *in.Description
	}
	if in.Since != nil {
		brand.Since = *in.Since
	}
	if in.IsActive != nil {
		brand.IsActive = *in.IsActive
	}

	if err := s.db.Save(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *Catalog) DeleteBrand(slug string) error {
	brand, err := s.GetBrandBySlug(slug)
	if err != nil {
		return err
	}
	if len(brand.Products) > 0 {
		return errf(KindHasDependents, "cannot delete brand with associated products")
	}
	if len(brand.Discounts) > 0 {
		if err := s.db.Delete(&models.Discount{}, []uint(brand.Discounts)).Error; err != nil {
			return err
		}
	}
	if parent, err := findSubCategory(s.db, brand.SubCategoryID); err == nil {
		if err := writeSet(s.db, &models.SubCategory{}, parent.ID, "brands",
			parent.Brands.Remove(brand.ID)); err != nil {
			return err
		}
	}
	if brand.Image != "" {
		s.deleteBlobs(brand.Image)
	}
	return s.db.Delete(brand).Error
}

// ---- Product ----

type ProductInput struct {
	Name           string
	Description    string
	SKU            string
	CategoryID     uint
	SubCategoryID  uint
	BrandID        uint
	Images         []string
	Tags           []string
	VariantType    string
	RetailPrice    float64
	WholesalePrice float64
	Stock          int
	AlertQuantity  int
}

type ProductUpdate struct {
	Name           *string
	Description    *string
	SKU            *string
	CategoryID     *uint
	SubCategoryID  *uint
	BrandID        *uint
	Images         *[]string
	Tags           *[]string
	VariantType    *string
	RetailPrice    *float64
	WholesalePrice *float64
	Stock          *int
	AlertQuantity  *int
	IsActive       *bool
}

const maxProductImages = 10

func (s *Catalog) CreateProduct(in ProductInput) (*models.Product, error) {
	if len(in.Images) > maxProductImages {
		return nil, errf(KindInvalid, "a product can hold at most %d images", maxProductImages)
	}
	category, err := findCategory(s.db, in.CategoryID)
	if err != nil {
		return nil, err
	}
	subCategory, err := findSubCategory(s.db, in.SubCategoryID)
	if err != nil {
		return nil, err
	}
	brand, err := findBrand(s.db, in.BrandID)
	if err != nil {
		return nil, err
	}

	taken, err := nameTaken(s.db, &models.Product{}, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errf(KindDuplicate, "product with this name already exists")
	}
	var n int64
	if err := s.db.Model(&models.Product{}).Where("sku = ?", in.SKU).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, errf(KindDuplicate, "product with this SKU already exists")
	}

	slug, err := assignSlug(s.db, "products", in.Name, 0)
	if err != nil {
		return nil, err
	}
	variantType := in.VariantType
	if variantType == "" {
		variantType = models.VariantTypeSingle
	}
	product := &models.Product{
		Name:           in.Name,
		Slug:           slug,
		Description:    in.Description,
		SKU:            in.SKU,
		CategoryID:     in.CategoryID,
		SubCategoryID:  in.SubCategoryID,
		BrandID:        in.BrandID,
		Images:         in.Images,
		Tags:           in.Tags,
		VariantType:    variantType,
		RetailPrice:    in.RetailPrice,
		WholesalePrice: in.WholesalePrice,
		Stock:          in.Stock,
		AlertQuantity:  in.AlertQuantity,
		IsActive:       true,
	}
	if err := s.db.Create(product).Error; err != nil {
		return nil, err
	}

	if err := writeSet(s.db, &models.Category{}, category.ID, "products",
		category.Products.Add(product.ID)); err != nil {
		return nil, err
	}
	if err := writeSet(s.db, &models.SubCategory{}, subCategory.ID, "products",
		subCategory.Products.Add(product.ID)); err != nil {
		return nil, err
	}
	if err := writeSet(s.db, &models.Brand{}, brand.ID, "products",
		brand.Products.Add(product.ID)); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Catalog) GetProduct(id uint) (*models.Product, error) {
	return findProduct(s.db, id)
}

func (s *Catalog) GetProductBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "product not found")
		}
		return nil, err
	}
	return &product, nil
}

func (s *Catalog) ListProducts(skip, limit int) ([]models.Product, int64, error) {
	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query := s.db.Model(&models.Product{})
	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *Catalog) UpdateProduct(slug string, in ProductUpdate) (*models.Product, error) {
	product, err := s.GetProductBySlug(slug)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != product.Name {
		taken, err := nameTaken(s.db, &models.Product{}, *in.Name, product.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errf(KindDuplicate, "another product with this name already exists")
		}
		newSlug, err := assignSlug(s.db, "products", *in.Name, product.ID)
		if err != nil {
			return nil, err
		}
		product.Name = *in.Name
		product.Slug = newSlug
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		var n int64
		if err := s.db.Model(&models.Product{}).
			Where("sku = ? AND id <> ?", *in.SKU, product.ID).Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, errf(KindDuplicate, "another product with this SKU already exists")
		}
		product.SKU = *in.SKU
	}

	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		newParent, err := findCategory(s.db, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if oldParent, err := findCategory(s.db, product.CategoryID); err == nil {
			if err := writeSet(s.db, &models.Category{}, oldParent.ID, "products",
				oldParent.Products.Remove(product.ID)); err != nil {
				return nil, err
			}
		}
		if err := writeSet(s.db, &models.Category{}, newParent.ID, "products",
			newParent.Products.Add(product.ID)); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	if in.SubCategoryID != nil && *in.SubCategoryID != product.SubCategoryID {
		newParent, err := findSubCategory(s.db, *in.SubCategoryID)
		if err != nil {
			return nil, err
		}
		if oldParent, err := findSubCategory(s.db, product.SubCategoryID); err == nil {
			if err := writeSet(s.db, &models.SubCategory{}, oldParent.ID, "products",
				oldParent.Products.Remove(product.ID)); err != nil {
				return nil, err
			}
		}
		if err := writeSet(s.db, &models.SubCategory{}, newParent.ID, "products",
			newParent.Products.Add(product.ID)); err != nil {
			return nil, err
		}
		product.SubCategoryID = *in.SubCategoryID
	}
	if in.BrandID != nil && *in.BrandID != product.BrandID {
		newParent, err := findBrand(s.db, *in.BrandID)
		if err != nil {
			return nil, err
		}
		if oldParent, err := findBrand(s.db, product.BrandID); err == nil {
			if err := writeSet(s.db, &models.Brand{}, oldParent.ID, "products",
				oldParent.Products.Remove(product.ID)); err != nil {
				return nil, err
			}
		}
		if err := writeSet(s.db, &models.Brand{}, newParent.ID, "products",
			newParent.Products.Add(product.ID)); err != nil {
			return nil, err
		}
		product.BrandID = *in.BrandID
	}

	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Images != nil {
		if len(*in.Images) > maxProductImages {
			return nil, errf(KindInvalid, "a product can hold at most %d images", maxProductImages)
		}
		product.Images = *in.Images
	}
	if in.Tags != nil {
		product.Tags = *in.Tags
	}
	if in.VariantType != nil {
		product.VariantType = *in.VariantType
	}
	if in.RetailPrice != nil {
		product.RetailPrice = *in.RetailPrice
	}
	if in.WholesalePrice != nil {
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, errf(KindInvalid, "stock cannot be negative")
		}
		product.Stock = *in.Stock
	}
	if in.AlertQuantity != nil {
		product.AlertQuantity = *in.AlertQuantity
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}

	if err := s.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct cascades: variants and their images go first, then discounts
// targeting the product, then the product's own images, then the parent
// back-references, then the row. A failure mid-way leaves only references
// whose re-removal is idempotent.
func (s *Catalog) DeleteProduct(slug string) error {
	product, err := s.GetProductBySlug(slug)
	if err != nil {
		return err
	}

	var variants []models.Variant
	if err := s.db.Where("product_id = ?", product.ID).Find(&variants).Error; err != nil {
		return err
	}
	for _, v := range variants {
		if len(v.Images) > 0 {
			s.deleteBlobs(v.Images...)
		}
	}
	if err := s.db.Where("product_id = ?", product.ID).Delete(&models.Variant{}).Error; err != nil {
		return err
	}

	if err := s.db.Where("target_product_id = ?", product.ID).Delete(&models.Discount{}).Error; err != nil {
		return err
	}

	if len(product.Images) > 0 {
		s.deleteBlobs(product.Images...)
	}

	if parent, err := findCategory(s.db, product.CategoryID); err == nil {
		if err := writeSet(s.db, &models.Category{}, parent.ID, "products",
			parent.Products.Remove(product.ID)); err != nil {
			return err
		}
	}
	if parent, err := findSubCategory(s.db, product.SubCategoryID); err == nil {
		if err := writeSet(s.db, &models.SubCategory{}, parent.ID, "products",
			parent.Products.Remove(product.ID)); err != nil {
			return err
		}
	}
	if parent, err := findBrand(s.db, product.BrandID); err == nil {
		if err := writeSet(s.db, &models.Brand{}, parent.ID, "products",
			parent.Products.Remove(product.ID)); err != nil {
			return err
		}
	}

	return s.db.Delete(product).Error
}

// ---- Variant ----

type VariantInput struct {
	ProductID      uint
	Name           string
	Color          string
	Size           string
	Images         []string
	RetailPrice    float64
	WholesalePrice float64
	Stock          int
	AlertStock     int
}

type VariantUpdate struct {
	Name           *string
	Color          *string
	Size           *string
	Images         *[]string
	RetailPrice    *float64
	WholesalePrice *float64
	Stock          *int
	AlertStock     *int
	IsActive       *bool
}

func (s *Catalog) CreateVariant(in VariantInput) (*models.Variant, error) {
	product, err := findProduct(s.db, in.ProductID)
	if err != nil {
		return nil, err
	}

	slug, err := assignSlug(s.db, "variants", in.Name, 0)
	if err != nil {
		return nil, err
	}
	variant := &models.Variant{
		ProductID:      in.ProductID,
		Name:           in.Name,
		Slug:           slug,
		Color:          in.Color,
		Size:           in.Size,
		Images:         in.Images,
		RetailPrice:    in.RetailPrice,
		WholesalePrice: in.WholesalePrice,
		Stock:          in.Stock,
		AlertStock:     in.AlertStock,
		IsActive:       true,
	}
	if err := s.db.Create(variant).Error; err != nil {
		return nil, err
	}
	if err := writeSet(s.db, &models.Product{}, product.ID, "variants",
		product.Variants.Add(variant.ID)); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *Catalog) GetVariantBySlug(slug string) (*models.Variant, error) {
	var variant models.Variant
	if err := s.db.Where("slug = ?", slug).First(&variant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "variant not found")
		}
		return nil, err
	}
	return &variant, nil
}

func (s *Catalog) UpdateVariant(slug string, in VariantUpdate) (*models.Variant, error) {
	variant, err := s.GetVariantBySlug(slug)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != variant.Name {
		newSlug, err := assignSlug(s.db, "variants", *in.Name, variant.ID)
		if err != nil {
			return nil, err
		}
		variant.Name = *in.Name
		variant.Slug = newSlug
	}
	if in.Color != nil {
		variant.Color = *in.Color
	}
	if in.Size != nil {
		variant.Size = *in.Size
	}
	if in.Images != nil {
		variant.Images = *in.Images
	}
	if in.RetailPrice != nil {
		variant.RetailPrice = *in.RetailPrice
	}
	if in.WholesalePrice != nil {
		variant.WholesalePrice = *in.WholesalePrice
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, errf(KindInvalid, "stock cannot be negative")
		}
		variant.Stock = *in.Stock
	}
	if in.AlertStock != nil {
		variant.AlertStock = *in.AlertStock
	}
	if in.IsActive != nil {
		variant.IsActive = *in.IsActive
	}

	if err := s.db.Save(variant).Error; err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *Catalog) DeleteVariant(slug string) error {
	variant, err := s.GetVariantBySlug(slug)
	if err != nil {
		return err
	}
	if len(variant.Images) > 0 {
		s.deleteBlobs(variant.Images...)
	}
	if parent, err := findProduct(s.db, variant.ProductID); err == nil {
		if err := writeSet(s.db, &models.Product{}, parent.ID, "variants",
			parent.Variants.Remove(variant.ID)); err != nil {
			return err
		}
	}
	return s.db.Delete(variant).Error
}
