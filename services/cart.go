package services

import (
	"errors"
	"math"
	"time"

	"meghmart/models"

	"gorm.io/gorm"
)

const (
	minCartQuantity = 1
	maxCartQuantity = 100
)

// Carts owns per-user cart state. Every unit of cart quantity is backed by a
// unit taken from product stock, so stock + cart quantity is conserved across
// all operations. A cart that loses its last line item is deleted.
type Carts struct {
	db *gorm.DB
}

func NewCarts(gdb *gorm.DB) *Carts {
	return &Carts{db: gdb}
}

func (s *Carts) findCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "cart not found or cart is empty")
		}
		return nil, err
	}
	return &cart, nil
}

// saveOrDelete enforces the emptiness invariant: an empty cart is removed,
// not persisted.
func (s *Carts) saveOrDelete(cart *models.Cart) error {
	if len(cart.Items) == 0 {
		return s.db.Delete(cart).Error
	}
	return s.db.Save(cart).Error
}

// adjustStock moves product stock by delta as a single atomic column update.
func (s *Carts) adjustStock(productID uint, delta int) error {
	return s.db.Model(&models.Product{}).Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta)).Error
}

// AddToCart puts one unit of the product into the user's cart, creating the
// cart or incrementing an existing line, and takes that unit from stock.
func (s *Carts) AddToCart(userID, productID uint) (*models.Cart, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	product, err := findProduct(s.db, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < 1 {
		return nil, errf(KindOutOfStock, "product is out of stock")
	}

	var cart models.Cart
	err = s.db.Where("user_id = ?", userID).First(&cart).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cart = models.Cart{
			UserID: userID,
			Items:  []models.CartItem{{ProductID: productID, Quantity: 1, AddedAt: time.Now()}},
		}
		if err := s.db.Create(&cart).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if item := cart.Item(productID); item != nil {
			item.Quantity++
		} else {
			cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: 1, AddedAt: time.Now()})
		}
		if err := s.db.Save(&cart).Error; err != nil {
			return nil, err
		}
	}

	if err := s.adjustStock(productID, -1); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddQuantity bumps an existing cart line by one, taking one unit of stock.
func (s *Carts) AddQuantity(userID, productID uint) (*models.Cart, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}
	item := cart.Item(productID)
	if item == nil {
		return nil, errf(KindNotFound, "product not found in cart")
	}
	product, err := findProduct(s.db, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < 1 {
		return nil, errf(KindOutOfStock, "product is out of stock")
	}
	if item.Quantity >= maxCartQuantity {
		return nil, errf(KindQuantityBounds, "maximum quantity limit reached for this product")
	}

	item.Quantity++
	if err := s.db.Save(cart).Error; err != nil {
		return nil, err
	}
	if err := s.adjustStock(productID, -1); err != nil {
		return nil, err
	}
	return cart, nil
}

// SubtractQuantity lowers an existing cart line by one, returning one unit to
// stock.
func (s *Carts) SubtractQuantity(userID, productID uint) (*models.Cart, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}
	item := cart.Item(productID)
	if item == nil {
		return nil, errf(KindNotFound, "product not found in cart")
	}
	if _, err := findProduct(s.db, productID); err != nil {
		return nil, err
	}
	if item.Quantity <= minCartQuantity {
		return nil, errf(KindQuantityBounds, "minimum quantity limit reached for this product")
	}

	item.Quantity--
	if err := s.db.Save(cart).Error; err != nil {
		return nil, err
	}
	if err := s.adjustStock(productID, 1); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity sets a cart line to an absolute quantity, moving the stock
// delta in the opposite direction.
func (s *Carts) SetQuantity(userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity < minCartQuantity || quantity > maxCartQuantity {
		return nil, errf(KindInvalid, "quantity must be between %d and %d", minCartQuantity, maxCartQuantity)
	}
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}
	item := cart.Item(productID)
	if item == nil {
		return nil, errf(KindNotFound, "product not found in cart")
	}
	product, err := findProduct(s.db, productID)
	if err != nil {
		return nil, err
	}

	delta := quantity - item.Quantity
	if delta > 0 && product.Stock < delta {
		return nil, errf(KindInsufficientStock, "insufficient stock available")
	}

	item.Quantity = quantity
	if err := s.db.Save(cart).Error; err != nil {
		return nil, err
	}
	if err := s.adjustStock(productID, -delta); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveSelected pulls the given products from the cart and restores their
// quantities to stock. Removing the last line deletes the cart.
func (s *Carts) RemoveSelected(userID uint, productIDs []uint) (*models.Cart, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}

	requested := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		requested[id] = true
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if requested[item.ProductID] {
			if err := s.adjustStock(item.ProductID, item.Quantity); err != nil {
				return nil, err
			}
			continue
		}
		kept = append(kept, item)
	}
	cart.Items = kept

	if err := s.saveOrDelete(cart); err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, nil
	}
	return cart, nil
}

// GetCart returns the user's cart, or nil when none exists.
func (s *Carts) GetCart(userID uint) (*models.Cart, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	cart, err := s.findCart(userID)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, nil
		}
		return nil, err
	}
	return cart, nil
}

// CountItems sums the quantities across the cart; an absent cart counts 0.
func (s *Carts) CountItems(userID uint) (int, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return 0, err
	}
	if cart == nil {
		return 0, nil
	}
	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count, nil
}

// cartTotal resolves every line against its product row. A product that no
// longer exists contributes 0.
func (s *Carts) cartTotal(cart *models.Cart) (float64, []uint, error) {
	total := 0.0
	ids := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
		var product models.Product
		if err := s.db.First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return 0, nil, err
		}
		total += product.RetailPrice * float64(item.Quantity)
	}
	return total, ids, nil
}

// TotalPrice returns the cart's undiscounted total; an absent cart totals 0.
func (s *Carts) TotalPrice(userID uint) (float64, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return 0, err
	}
	if cart == nil {
		return 0, nil
	}
	total, _, err := s.cartTotal(cart)
	return total, err
}

// CouponResult reports the arithmetic of a successful coupon application,
// rounded to whole currency units.
type CouponResult struct {
	Cart           *models.Cart `json:"cart"`
	CartTotal      float64      `json:"cart_total"`
	DiscountAmount float64      `json:"discount_amount"`
	FinalAmount    float64      `json:"final_amount"`
}

// ApplyCoupon validates the coupon against the cart's current total, stores
// the discount on the cart and bumps the coupon's usage counter.
func (s *Carts) ApplyCoupon(userID uint, code string, now time.Time) (*CouponResult, error) {
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}
	total, productIDs, err := s.cartTotal(cart)
	if err != nil {
		return nil, err
	}

	var coupon models.Coupon
	if err := s.db.Where("code = ?", normalizeCouponCode(code)).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "invalid coupon code")
		}
		return nil, err
	}

	discount, err := EvaluateCoupon(&coupon, total, productIDs, now)
	if err != nil {
		return nil, err
	}
	discountAmount := math.Round(discount)
	finalAmount := math.Max(0, math.Round(total)-discountAmount)

	cart.CouponID = &coupon.ID
	cart.DiscountAmount = discountAmount
	cart.DiscountType = coupon.DiscountType
	if err := s.db.Save(cart).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Coupon{}).Where("id = ?", coupon.ID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
		return nil, err
	}

	return &CouponResult{
		Cart:           cart,
		CartTotal:      math.Round(total),
		DiscountAmount: discountAmount,
		FinalAmount:    finalAmount,
	}, nil
}

// RemoveCoupon detaches the applied coupon, handing back one usage.
func (s *Carts) RemoveCoupon(userID uint) (*models.Cart, error) {
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}
	if cart.CouponID == nil {
		return nil, errf(KindCouponInvalid, "no coupon applied to this cart")
	}

	// floor at zero: never drive used_count negative
	if err := s.db.Model(&models.Coupon{}).
		Where("id = ? AND used_count > 0", *cart.CouponID).
		UpdateColumn("used_count", gorm.Expr("used_count - 1")).Error; err != nil {
		return nil, err
	}

	cart.CouponID = nil
	cart.DiscountAmount = 0
	cart.DiscountType = ""
	if err := s.db.Save(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}
