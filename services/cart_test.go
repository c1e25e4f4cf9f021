package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartTakesOneFromStock(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	cart, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 4, f.productStock(t, product.ID))
}

func TestCartDrainsStockToZero(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err = f.carts.AddQuantity(user.ID, product.ID)
		require.NoError(t, err)
	}

	cart, err := f.carts.GetCart(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 0, f.productStock(t, product.ID))

	_, err = f.carts.AddQuantity(user.ID, product.ID)
	require.Error(t, err)
	assert.Equal(t, KindOutOfStock, KindOf(err))
}

func TestAddToCartOutOfStock(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 0)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.Error(t, err)
	assert.Equal(t, KindOutOfStock, KindOf(err))
}

func TestSubtractQuantityFloor(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	_, err = f.carts.SubtractQuantity(user.ID, product.ID)
	require.Error(t, err)
	assert.Equal(t, KindQuantityBounds, KindOf(err))
	assert.Equal(t, 4, f.productStock(t, product.ID))
}

func TestSubtractQuantityReturnsStock(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)
	_, err = f.carts.AddQuantity(user.ID, product.ID)
	require.NoError(t, err)

	cart, err := f.carts.SubtractQuantity(user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 4, f.productStock(t, product.ID))
}

func TestSetQuantityConservesStock(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 10)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	cart, err := f.carts.SetQuantity(user.ID, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, f.productStock(t, product.ID))

	cart, err = f.carts.SetQuantity(user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 8, f.productStock(t, product.ID))
}

func TestSetQuantityBounds(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 10)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	_, err = f.carts.SetQuantity(user.ID, product.ID, 0)
	assert.Equal(t, KindInvalid, KindOf(err))

	_, err = f.carts.SetQuantity(user.ID, product.ID, 101)
	assert.Equal(t, KindInvalid, KindOf(err))
}

func TestSetQuantityInsufficientStock(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 3)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	// cart holds 1, stock holds 2, so 4 is unreachable
	_, err = f.carts.SetQuantity(user.ID, product.ID, 4)
	require.Error(t, err)
	assert.Equal(t, KindInsufficientStock, KindOf(err))
	assert.Equal(t, 2, f.productStock(t, product.ID))
}

func TestRemoveSelectedRestoresStockAndDeletesEmptyCart(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)
	_, err = f.carts.AddQuantity(user.ID, product.ID)
	require.NoError(t, err)
	require.Equal(t, 3, f.productStock(t, product.ID))

	cart, err := f.carts.RemoveSelected(user.ID, []uint{product.ID})
	require.NoError(t, err)
	assert.Nil(t, cart)
	assert.Equal(t, 5, f.productStock(t, product.ID))

	cart, err = f.carts.GetCart(user.ID)
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestCountItemsAndTotalPrice(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	phone := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 500, 5)
	caseP := f.seedProduct(t, cat, sub, brand, "Phone Case", "PC-1", 25, 5)

	_, err := f.carts.AddToCart(user.ID, phone.ID)
	require.NoError(t, err)
	_, err = f.carts.AddQuantity(user.ID, phone.ID)
	require.NoError(t, err)
	_, err = f.carts.AddToCart(user.ID, caseP.ID)
	require.NoError(t, err)

	count, err := f.carts.CountItems(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	total, err := f.carts.TotalPrice(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1025.0, total)
}

func TestCountItemsWithoutCart(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")

	count, err := f.carts.CountItems(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	total, err := f.carts.TotalPrice(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestApplyAndRemoveCoupon(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 250, 5)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	coupon, err := f.coupons.Create(CouponInput{
		Code:              "SAVE100",
		DiscountType:      "fixed",
		DiscountValue:     100,
		MinPurchaseAmount: 200,
		ExpireAt:          timeNowPlusDays(7),
	})
	require.NoError(t, err)

	result, err := f.carts.ApplyCoupon(user.ID, "save100", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 250.0, result.CartTotal)
	assert.Equal(t, 100.0, result.DiscountAmount)
	assert.Equal(t, 150.0, result.FinalAmount)

	reloaded, err := f.coupons.GetByCode(coupon.Code)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.UsedCount)

	cart, err := f.carts.RemoveCoupon(user.ID)
	require.NoError(t, err)
	assert.Nil(t, cart.CouponID)
	assert.Equal(t, 0.0, cart.DiscountAmount)

	reloaded, err = f.coupons.GetByCode(coupon.Code)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.UsedCount)

	_, err = f.carts.RemoveCoupon(user.ID)
	require.Error(t, err)
	assert.Equal(t, KindCouponInvalid, KindOf(err))
}

func TestApplyCouponBelowMinimum(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone Case", "PC-1", 25, 5)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	_, err = f.coupons.Create(CouponInput{
		Code:              "SAVE100",
		DiscountType:      "fixed",
		DiscountValue:     100,
		MinPurchaseAmount: 200,
		ExpireAt:          timeNowPlusDays(7),
	})
	require.NoError(t, err)

	_, err = f.carts.ApplyCoupon(user.ID, "SAVE100", time.Now())
	require.Error(t, err)
	assert.Equal(t, KindCouponInvalid, KindOf(err))
}

func TestApplyUnknownCoupon(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "cart@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 250, 5)

	_, err := f.carts.AddToCart(user.ID, product.ID)
	require.NoError(t, err)

	_, err = f.carts.ApplyCoupon(user.ID, "NOPE", time.Now())
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
