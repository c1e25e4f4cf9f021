package services

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"meghmart/db"
	"meghmart/models"
	"meghmart/storage"
)

// newTestDB opens a fresh in-memory database named after the test so
// parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

// nopStore satisfies storage.Store without touching the filesystem.
type nopStore struct{}

func (nopStore) Save(name string, _ io.Reader) (string, error) { return "/uploads/" + name, nil }

func (nopStore) SaveAll(files []storage.File) ([]string, error) {
	urls := make([]string, len(files))
	for i, f := range files {
		urls[i] = "/uploads/" + f.Name
	}
	return urls, nil
}

func (nopStore) Delete(...string) error { return nil }

type fixture struct {
	db        *gorm.DB
	catalog   *Catalog
	discounts *Discounts
	coupons   *Coupons
	carts     *Carts
	wishlists *Wishlists
	reviews   *Reviews
	users     *Users
}

func newFixture(t *testing.T) *fixture {
	gdb := newTestDB(t)
	carts := NewCarts(gdb)
	return &fixture{
		db:        gdb,
		catalog:   NewCatalog(gdb, nopStore{}),
		discounts: NewDiscounts(gdb),
		coupons:   NewCoupons(gdb),
		carts:     carts,
		wishlists: NewWishlists(gdb, carts),
		reviews:   NewReviews(gdb, nopStore{}),
		users:     NewUsers(gdb, "test-secret", time.Hour),
	}
}

func (f *fixture) seedUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{FirstName: "Test", Email: email, Password: "irrelevant"}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) seedHierarchy(t *testing.T) (*models.Category, *models.SubCategory, *models.Brand) {
	t.Helper()
	cat, err := f.catalog.CreateCategory(CategoryInput{Name: "Electronics"})
	require.NoError(t, err)
	sub, err := f.catalog.CreateSubCategory(SubCategoryInput{Name: "Phones", CategoryID: cat.ID})
	require.NoError(t, err)
	brand, err := f.catalog.CreateBrand(BrandInput{Name: "Acme", SubCategoryID: sub.ID, Since: 1998})
	require.NoError(t, err)
	return cat, sub, brand
}

func (f *fixture) seedProduct(t *testing.T, cat *models.Category, sub *models.SubCategory, brand *models.Brand, name, sku string, price float64, stock int) *models.Product {
	t.Helper()
	product, err := f.catalog.CreateProduct(ProductInput{
		Name:          name,
		SKU:           sku,
		CategoryID:    cat.ID,
		SubCategoryID: sub.ID,
		BrandID:       brand.ID,
		RetailPrice:   price,
		Stock:         stock,
	})
	require.NoError(t, err)
	return product
}

func timeNowMinusDays(days int) time.Time { return time.Now().AddDate(0, 0, -days) }

func timeNowPlusDays(days int) time.Time { return time.Now().AddDate(0, 0, days) }

func (f *fixture) productStock(t *testing.T, id uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, f.db.First(&product, id).Error)
	return product.Stock
}
