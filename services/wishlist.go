package services

import (
	"errors"
	"time"

	"meghmart/models"

	"gorm.io/gorm"
)

// Wishlists owns per-user wishlist state. Wishlist entries hold no stock;
// stock only moves when entries transfer into the cart.
type Wishlists struct {
	db    *gorm.DB
	carts *Carts
}

func NewWishlists(gdb *gorm.DB, carts *Carts) *Wishlists {
	return &Wishlists{db: gdb, carts: carts}
}

func (s *Wishlists) findWishlist(userID uint) (*models.Wishlist, error) {
	var wl models.Wishlist
	if err := s.db.Where("user_id = ?", userID).First(&wl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "wishlist not found or wishlist is empty")
		}
		return nil, err
	}
	return &wl, nil
}

func (s *Wishlists) saveOrDelete(wl *models.Wishlist) error {
	if len(wl.Items) == 0 {
		return s.db.Delete(wl).Error
	}
	return s.db.Save(wl).Error
}

func (s *Wishlists) Add(userID, productID uint) (*models.Wishlist, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	if _, err := findProduct(s.db, productID); err != nil {
		return nil, err
	}

	var wl models.Wishlist
	err := s.db.Where("user_id = ?", userID).First(&wl).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		wl = models.Wishlist{
			UserID: userID,
			Items:  []models.WishlistItem{{ProductID: productID, AddedAt: time.Now()}},
		}
		if err := s.db.Create(&wl).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if wl.Has(productID) {
			return nil, errf(KindAlreadyExists, "product already in wishlist")
		}
		wl.Items = append(wl.Items, models.WishlistItem{ProductID: productID, AddedAt: time.Now()})
		if err := s.db.Save(&wl).Error; err != nil {
			return nil, err
		}
	}
	return &wl, nil
}

// Get returns the user's wishlist, or nil when none exists.
func (s *Wishlists) Get(userID uint) (*models.Wishlist, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	wl, err := s.findWishlist(userID)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, nil
		}
		return nil, err
	}
	return wl, nil
}

func (s *Wishlists) Count(userID uint) (int, error) {
	wl, err := s.Get(userID)
	if err != nil {
		return 0, err
	}
	if wl == nil {
		return 0, nil
	}
	return len(wl.Items), nil
}

// RemoveSelected pulls the given products; the empty wishlist is deleted.
func (s *Wishlists) RemoveSelected(userID uint, productIDs []uint) (*models.Wishlist, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	wl, err := s.findWishlist(userID)
	if err != nil {
		return nil, err
	}

	requested := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		requested[id] = true
	}
	kept := wl.Items[:0]
	for _, item := range wl.Items {
		if !requested[item.ProductID] {
			kept = append(kept, item)
		}
	}
	wl.Items = kept

	if err := s.saveOrDelete(wl); err != nil {
		return nil, err
	}
	if len(wl.Items) == 0 {
		return nil, nil
	}
	return wl, nil
}

// MoveToCart transfers the requested wishlist entries into the cart. Every
// requested entry must resolve to an existing product with stock before any
// stock moves; one failing item aborts the whole batch. Returns the moved
// product ids.
func (s *Wishlists) MoveToCart(userID uint, productIDs []uint) ([]uint, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	wl, err := s.findWishlist(userID)
	if err != nil {
		return nil, err
	}

	requested := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		requested[id] = true
	}
	var toMove []uint
	for _, item := range wl.Items {
		if requested[item.ProductID] {
			toMove = append(toMove, item.ProductID)
		}
	}
	if len(toMove) == 0 {
		return nil, errf(KindNotFound, "selected products not found in wishlist")
	}

	// pre-flight: no stock moves until every item checks out
	for _, id := range toMove {
		product, err := findProduct(s.db, id)
		if err != nil {
			return nil, err
		}
		if product.Stock < 1 {
			return nil, errf(KindOutOfStock, "product is out of stock")
		}
	}

	for _, id := range toMove {
		if _, err := s.carts.AddToCart(userID, id); err != nil {
			return nil, err
		}
	}

	moved := make(map[uint]bool, len(toMove))
	for _, id := range toMove {
		moved[id] = true
	}
	kept := wl.Items[:0]
	for _, item := range wl.Items {
		if !moved[item.ProductID] {
			kept = append(kept, item)
		}
	}
	wl.Items = kept
	if err := s.saveOrDelete(wl); err != nil {
		return nil, err
	}

	return toMove, nil
}
